package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/mockapi"
)

func newTestClient(t *testing.T) (*api.Client, *mockapi.Server) {
	t.Helper()
	backend := mockapi.New()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL, api.WithRateLimit(0, 0))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, backend
}

func TestNewClientRejectsBadScheme(t *testing.T) {
	if _, err := api.NewClient("ftp://example.com"); err == nil {
		t.Error("Expected error for ftp scheme")
	}
}

func TestNewClientStripsAPIPath(t *testing.T) {
	c, err := api.NewClient("https://neuroad.example.com/api/")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if c.Origin() != "https://neuroad.example.com" {
		t.Errorf("Expected origin without /api, got %q", c.Origin())
	}
}

func TestResolveAsset(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"/api/uploads/a.png", "http://localhost:8001/api/uploads/a.png"},
		{"api/generated/b.png", "http://localhost:8001/api/generated/b.png"},
		{"https://cdn.example.com/c.png", "https://cdn.example.com/c.png"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := api.ResolveAsset("http://localhost:8001/", tt.ref); got != tt.want {
			t.Errorf("ResolveAsset(%q): expected %q, got %q", tt.ref, tt.want, got)
		}
	}
}

func TestCatalogEndpoints(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	strategies, err := client.Strategies(ctx)
	if err != nil {
		t.Fatalf("Strategies failed: %v", err)
	}
	if len(strategies) != 15 {
		t.Errorf("Expected 15 strategies, got %d", len(strategies))
	}

	platforms, err := client.Platforms(ctx)
	if err != nil {
		t.Fatalf("Platforms failed: %v", err)
	}
	if p := api.FindPlatform(platforms, "fb_feed"); p == nil || p.Aspect != "1.91:1" {
		t.Errorf("Expected fb_feed with aspect 1.91:1, got %+v", p)
	}

	tips, err := client.MarketingTips(ctx)
	if err != nil {
		t.Fatalf("MarketingTips failed: %v", err)
	}
	if len(tips) != 8 {
		t.Errorf("Expected 8 tips, got %d", len(tips))
	}
}

func TestProjectLifecycle(t *testing.T) {
	client, backend := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateProject(ctx, &api.CreateProjectRequest{
		ContentType:             api.ContentStore,
		CompanyName:             "Acme",
		CompanyDescription:      "We sell widgets",
		Strengths:               []string{"Fast"},
		Images:                  []string{},
		DesignGoal:              api.GoalDirectSale,
		Platform:                "post_square",
		PsychologicalStrategyID: "scarcity",
		BrandColors:             api.BrandColors{Primary: "#000000", Secondary: "#FFFFFF", Accent: "#3B82F6"},
		Language:                "en",
	})
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected a project id")
	}

	list, err := client.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(list) != 1 || list[0].CompanyName != "Acme" {
		t.Errorf("Expected one project named Acme, got %+v", list)
	}

	resp, err := client.GenerateContent(ctx, &api.GenerateContentRequest{ProjectID: created.ID, VariationCount: 3})
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}
	if !resp.Success || len(resp.Images) != 3 {
		t.Errorf("Expected 3 generated images, got %+v", resp)
	}
	if got := backend.LastGenerate(); got == nil || got.CustomInstructions != nil {
		t.Errorf("Expected null custom_instructions, got %+v", got)
	}

	full, err := client.GetProject(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}
	if full.Status != api.StatusCompleted {
		t.Errorf("Expected status completed, got %s", full.Status)
	}
	if len(full.GeneratedCaptions) != 1 {
		t.Errorf("Expected one caption, got %d", len(full.GeneratedCaptions))
	}

	if err := client.DeleteProject(ctx, created.ID); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}

	_, err = client.GetProject(ctx, created.ID)
	if !errors.Is(err, api.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestUploadSendsMultipartFile(t *testing.T) {
	client, backend := newTestClient(t)

	resp, err := client.Upload(context.Background(), "shoe.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if !strings.HasPrefix(resp.URL, "/api/uploads/") || !strings.HasSuffix(resp.URL, ".png") {
		t.Errorf("Expected relative upload URL, got %q", resp.URL)
	}

	data, ok := backend.Upload(resp.URL)
	if !ok || string(data) != "png-bytes" {
		t.Errorf("Expected stored bytes, got %q (ok=%v)", data, ok)
	}
}

func TestAPIErrorCarriesDetail(t *testing.T) {
	client, backend := newTestClient(t)
	backend.Fail("POST /scrape", http.StatusBadRequest)

	_, err := client.Scrape(context.Background(), "https://example.com")

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "injected failure" {
		t.Errorf("Expected detail from body, got %q", apiErr.Detail)
	}
	if api.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("Expected StatusCode helper to return 400, got %d", api.StatusCode(err))
	}
}

func TestSessionCookieBecomesCredential(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Me(ctx); !errors.Is(err, api.ErrUnauthenticated) {
		t.Fatalf("Expected ErrUnauthenticated before login, got %v", err)
	}

	resp, err := client.CreateSession(ctx, "sess-abc")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if !resp.Success || resp.User == nil {
		t.Fatalf("Expected success with user, got %+v", resp)
	}
	if client.SessionToken() == "" {
		t.Fatal("Expected session token captured from cookie")
	}

	me, err := client.Me(ctx)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if me.UserID != mockapi.DemoUser.UserID {
		t.Errorf("Expected %s, got %s", mockapi.DemoUser.UserID, me.UserID)
	}

	if err := client.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if client.SessionToken() != "" {
		t.Error("Expected token cleared after logout")
	}
}

func TestRequestsCarryRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client, err := api.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, err := client.Strategies(context.Background()); err != nil {
		t.Fatalf("Strategies failed: %v", err)
	}
	if len(got) != 36 {
		t.Errorf("Expected a uuid request id, got %q", got)
	}
}

func TestValidationDetailList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","url"],"msg":"field required"}]}`))
	}))
	defer srv.Close()

	client, _ := api.NewClient(srv.URL)
	_, err := client.Scrape(context.Background(), "")

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %v", err)
	}
	if !strings.Contains(apiErr.Detail, "field required") {
		t.Errorf("Expected raw validation detail, got %q", apiErr.Detail)
	}
}

func TestExpiredSessionDropsCredential(t *testing.T) {
	backend := mockapi.New()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL, api.WithRateLimit(0, 0), api.WithSessionToken("stale"))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, err := client.Me(context.Background()); !errors.Is(err, api.ErrUnauthenticated) {
		t.Fatalf("Expected ErrUnauthenticated, got %v", err)
	}
	if client.SessionToken() != "" {
		t.Error("Expected stale token dropped after 401")
	}
}

func TestNetworkFailureKeepsCredential(t *testing.T) {
	backend := mockapi.New()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	backend.Fail("GET /auth/me", http.StatusBadGateway)

	client, err := api.NewClient(srv.URL, api.WithRateLimit(0, 0), api.WithSessionToken("kept"))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, err := client.Me(context.Background()); err == nil {
		t.Fatal("Expected error from failing backend")
	}
	if client.SessionToken() != "kept" {
		t.Errorf("Expected token kept, got %q", client.SessionToken())
	}
}
