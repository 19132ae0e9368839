// Package api is a client for the NeuroAd backend HTTP contract.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/neuroad/neuroad-cli/internal/logging"
)

const (
	// SessionCookie is the cookie the backend sets on session exchange.
	SessionCookie = "session_token"

	// BasePath prefixes every endpoint.
	BasePath = "/api"

	DefaultTimeout = 30 * time.Second
)

// Client talks to the backend. It is safe for concurrent use.
type Client struct {
	origin string

	httpClient *http.Client
	// Generation calls block until the backend finishes, so they get no deadline.
	longClient *http.Client

	limiter *rate.Limiter
	logger  *slog.Logger

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the client used for regular calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit bounds outgoing requests per second. A non-positive rps disables the limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithSessionToken restores a session saved by a previous run.
func WithSessionToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for the backend at origin (scheme://host[:port]).
func NewClient(origin string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(origin, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL %q: %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid backend URL %q: scheme must be http or https", origin)
	}

	c := &Client{
		origin:     u.Scheme + "://" + u.Host + strings.TrimSuffix(u.Path, BasePath),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		longClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(10), 5),
		logger:     logging.WithComponent("api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Origin returns the backend origin assets are resolved against.
func (c *Client) Origin() string {
	return c.origin
}

// SessionToken returns the current session credential, if any.
func (c *Client) SessionToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetSessionToken replaces the session credential. Empty clears it.
func (c *Client) SetSessionToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// AssetURL resolves a backend-relative asset path against the origin.
// Absolute URLs are returned unchanged.
func (c *Client) AssetURL(ref string) string {
	return ResolveAsset(c.origin, ref)
}

// ResolveAsset joins origin and ref unless ref is already absolute.
func ResolveAsset(origin, ref string) string {
	if ref == "" {
		return ""
	}
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return strings.TrimRight(origin, "/") + ref
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, string, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.origin+BasePath+path, body)
	if err != nil {
		return nil, "", err
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	if token := c.SessionToken(); token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, requestID, nil
}

// doJSON sends body as JSON and decodes the response into result.
func (c *Client) doJSON(ctx context.Context, hc *http.Client, method, path string, body, result any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, requestID, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(hc, req, requestID, result)
}

func (c *Client) send(hc *http.Client, req *http.Request, requestID string, result any) (*http.Response, error) {
	log := logging.WithRequest(c.logger, requestID, req.Method, req.URL.Path)

	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		log.Warn("request failed", "error", err)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	log.Debug("response", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Method:     req.Method,
			Path:       strings.TrimPrefix(req.URL.Path, BasePath),
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		apiErr.Detail = decodeDetail(raw)
		return resp, apiErr
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil && err != io.EOF {
			return resp, fmt.Errorf("failed to decode %s response: %w", req.URL.Path, err)
		}
	}
	return resp, nil
}

// decodeDetail extracts FastAPI's "detail", which is a string or a list of
// validation errors.
func decodeDetail(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return strings.TrimSpace(string(raw))
	}
	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}
	return string(body.Detail)
}

// uploadFile posts r as a multipart "file" field.
func (c *Client) uploadFile(ctx context.Context, path, filename string, r io.Reader, result any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, requestID, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	_, err = c.send(c.httpClient, req, requestID, result)
	return err
}
