// Package auth tracks the signed-in user and runs the session-exchange flow.
package auth

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/logging"
)

// IdentityDelay is how long an identity check waits for a fresh session
// cookie to settle before asking the backend.
const IdentityDelay = 150 * time.Millisecond

// Backend is the subset of the API client the store needs.
type Backend interface {
	Me(ctx context.Context) (*api.User, error)
	CreateSession(ctx context.Context, sessionID string) (*api.SessionResponse, error)
	Logout(ctx context.Context) error
}

// Marker records that a session exchange just succeeded. The config-backed
// implementation lets the flag survive from `neuroad login` into the next run.
type Marker interface {
	Mark()
	// Take reports whether the marker was set and clears it.
	Take() bool
}

// MemoryMarker is a process-local Marker.
type MemoryMarker struct {
	mu  sync.Mutex
	set bool
}

func (m *MemoryMarker) Mark() {
	m.mu.Lock()
	m.set = true
	m.mu.Unlock()
}

func (m *MemoryMarker) Take() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	was := m.set
	m.set = false
	return was
}

// Route is where the UI goes after the callback is processed.
type Route int

const (
	RouteHome Route = iota
	RouteProjects
)

func (r Route) String() string {
	if r == RouteProjects {
		return "projects"
	}
	return "home"
}

// Store holds the current user.
type Store struct {
	backend Backend
	marker  Marker
	delay   time.Duration
	logger  *slog.Logger

	mu        sync.RWMutex
	user      *api.User
	checking  bool
	listeners []func(*api.User)
}

// Option configures a Store.
type Option func(*Store)

// WithMarker replaces the in-memory just-authenticated marker.
func WithMarker(m Marker) Option {
	return func(s *Store) { s.marker = m }
}

// WithDelay overrides IdentityDelay.
func WithDelay(d time.Duration) Option {
	return func(s *Store) { s.delay = d }
}

// WithUser seeds the store with a cached identity.
func WithUser(u *api.User) Option {
	return func(s *Store) { s.user = u }
}

func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		marker:  &MemoryMarker{},
		delay:   IdentityDelay,
		logger:  logging.WithComponent("auth"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// User returns the current identity, or nil when signed out.
func (s *Store) User() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Checking reports whether an identity check is in flight.
func (s *Store) Checking() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checking
}

// OnChange registers fn to run whenever the identity changes.
func (s *Store) OnChange(fn func(*api.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) setUser(u *api.User) {
	s.mu.Lock()
	s.user = u
	listeners := append([]func(*api.User){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(u)
	}
}

// CheckIdentity asks the backend who is signed in. It waits IdentityDelay
// first unless a session exchange just happened, in which case the marker is
// consumed and the wait skipped. Any failure signs the user out silently.
func (s *Store) CheckIdentity(ctx context.Context) *api.User {
	s.mu.Lock()
	s.checking = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.checking = false
		s.mu.Unlock()
	}()

	if !s.marker.Take() && s.delay > 0 {
		t := time.NewTimer(s.delay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			s.setUser(nil)
			return nil
		}
	}

	user, err := s.backend.Me(ctx)
	if err != nil {
		s.logger.Debug("identity check failed", "error", err)
		s.setUser(nil)
		return nil
	}
	s.setUser(user)
	return user
}

// Exchange trades a session id for a session. On success the user is set
// and the just-authenticated marker raised.
func (s *Store) Exchange(ctx context.Context, sessionID string) bool {
	resp, err := s.backend.CreateSession(ctx, sessionID)
	if err != nil {
		s.logger.Warn("session exchange failed", "error", err)
		return false
	}
	if !resp.Success {
		return false
	}
	s.setUser(resp.User)
	s.marker.Mark()
	return true
}

// HandleCallback processes the return URL (or just its fragment) and
// reports where to go next.
func (s *Store) HandleCallback(ctx context.Context, returned string) Route {
	id, ok := ExtractSessionID(returned)
	if !ok {
		return RouteHome
	}
	if s.Exchange(ctx, id) {
		return RouteProjects
	}
	return RouteHome
}

// Logout ends the session on the backend and clears the local identity
// whether or not the call succeeded.
func (s *Store) Logout(ctx context.Context) error {
	err := s.backend.Logout(ctx)
	if err != nil {
		s.logger.Warn("logout call failed", "error", err)
	}
	s.setUser(nil)
	return err
}

var sessionIDPattern = regexp.MustCompile(`session_id=([^&]+)`)

// ExtractSessionID finds session_id in a URL fragment. Full URLs are accepted;
// only the part after '#' is searched when one is present.
func ExtractSessionID(s string) (string, bool) {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[i+1:]
	}
	m := sessionIDPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// LoginURL builds the identity-provider redirect carrying returnURL.
func LoginURL(provider, returnURL string) string {
	sep := "?"
	if strings.Contains(provider, "?") {
		sep = "&"
	}
	// Match encodeURIComponent: spaces as %20.
	escaped := strings.ReplaceAll(url.QueryEscape(returnURL), "+", "%20")
	return provider + sep + "redirect=" + escaped
}
