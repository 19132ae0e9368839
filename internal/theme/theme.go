// Package theme holds the light/dark preference and the lipgloss styles
// derived from it.
package theme

import (
	"fmt"
	"strings"
	"sync"
)

// Mode is a color scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light, "":
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
}

// Other returns the mode a toggle switches to.
func (m Mode) Other() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Store holds the current mode and notifies listeners on change.
type Store struct {
	mu        sync.RWMutex
	mode      Mode
	listeners []func(Mode)
}

func NewStore(mode Mode) *Store {
	if mode != Dark {
		mode = Light
	}
	return &Store{mode: mode}
}

func (s *Store) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Set changes the mode and notifies listeners when it differs.
func (s *Store) Set(mode Mode) {
	s.mu.Lock()
	if s.mode == mode {
		s.mu.Unlock()
		return
	}
	s.mode = mode
	listeners := append([]func(Mode){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(mode)
	}
}

// Toggle switches between light and dark and returns the new mode.
func (s *Store) Toggle() Mode {
	next := s.Mode().Other()
	s.Set(next)
	return next
}

func (s *Store) OnChange(fn func(Mode)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
