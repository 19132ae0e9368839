package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Strategies calls GET /strategies.
func (c *Client) Strategies(ctx context.Context) ([]Strategy, error) {
	var out []Strategy
	if _, err := c.doJSON(ctx, c.httpClient, http.MethodGet, "/strategies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Platforms calls GET /platforms.
func (c *Client) Platforms(ctx context.Context) ([]Platform, error) {
	var out []Platform
	if _, err := c.doJSON(ctx, c.httpClient, http.MethodGet, "/platforms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarketingTips calls GET /marketing-tips.
func (c *Client) MarketingTips(ctx context.Context) ([]MarketingTip, error) {
	var out []MarketingTip
	if _, err := c.doJSON(ctx, c.httpClient, http.MethodGet, "/marketing-tips", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Scrape calls POST /scrape. Scraping can be slow, so it runs without a deadline.
func (c *Client) Scrape(ctx context.Context, websiteURL string) (*ScrapedData, error) {
	var out ScrapedData
	body := map[string]string{"url": websiteURL}
	if _, err := c.doJSON(ctx, c.longClient, http.MethodPost, "/scrape", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload calls POST /upload with r as the multipart "file" field.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (*UploadResponse, error) {
	var out UploadResponse
	if err := c.uploadFile(ctx, "/upload", filename, r, &out); err != nil {
		return nil, err
	}
	if out.URL == "" {
		return nil, fmt.Errorf("upload of %s returned no url", filename)
	}
	return &out, nil
}

// CreateProject calls POST /projects.
func (c *Client) CreateProject(ctx context.Context, req *CreateProjectRequest) (*Project, error) {
	var out Project
	if _, err := c.doJSON(ctx, c.httpClient, http.MethodPost, "/projects", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProjects calls GET /projects.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	if _, err := c.doJSON(ctx, c.httpClient, http.MethodGet, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProject calls GET /projects/{id}.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var out Project
	if _, err := c.doJSON(ctx, c.httpClient, http.MethodGet, "/projects/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject calls DELETE /projects/{id}.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, c.httpClient, http.MethodDelete, "/projects/"+url.PathEscape(id), nil, nil)
	return err
}

// GenerateContent calls POST /generate-content and blocks until the backend responds.
func (c *Client) GenerateContent(ctx context.Context, req *GenerateContentRequest) (*GenerateResponse, error) {
	var out GenerateResponse
	if _, err := c.doJSON(ctx, c.longClient, http.MethodPost, "/generate-content", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateVideo calls POST /generate-video and blocks until the backend responds.
func (c *Client) GenerateVideo(ctx context.Context, req *GenerateVideoRequest) (*GenerateResponse, error) {
	var out GenerateResponse
	if _, err := c.doJSON(ctx, c.longClient, http.MethodPost, "/generate-video", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me calls GET /auth/me. A missing or expired session yields ErrUnauthenticated
// and drops the held credential.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if _, err := c.doJSON(ctx, c.httpClient, http.MethodGet, "/auth/me", nil, &out); err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			c.SetSessionToken("")
		}
		return nil, err
	}
	return &out, nil
}

// CreateSession calls POST /auth/session and keeps the session cookie the
// backend sets as this client's credential.
func (c *Client) CreateSession(ctx context.Context, sessionID string) (*SessionResponse, error) {
	var out SessionResponse
	body := map[string]string{"session_id": sessionID}
	resp, err := c.doJSON(ctx, c.httpClient, http.MethodPost, "/auth/session", body, &out)
	if err != nil {
		return nil, err
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == SessionCookie && ck.Value != "" {
			c.SetSessionToken(ck.Value)
		}
	}
	return &out, nil
}

// Logout calls POST /auth/logout. The local credential is dropped even when
// the call fails.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.doJSON(ctx, c.httpClient, http.MethodPost, "/auth/logout", struct{}{}, nil)
	c.SetSessionToken("")
	return err
}
