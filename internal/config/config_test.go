package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func useTempDir(t *testing.T) {
	t.Helper()
	prev := GetConfigDir()
	SetDir(t.TempDir())
	t.Cleanup(func() { SetDir(prev) })
}

func TestLoadCreatesDefault(t *testing.T) {
	useTempDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BackendURL != DefaultBackendURL {
		t.Errorf("Expected backend URL %q, got %q", DefaultBackendURL, cfg.BackendURL)
	}
	if cfg.Language != "ar" {
		t.Errorf("Expected default language ar, got %q", cfg.Language)
	}
	if cfg.Theme != "light" {
		t.Errorf("Expected default theme light, got %q", cfg.Theme)
	}

	info, err := os.Stat(GetConfigPath())
	if err != nil {
		t.Fatalf("Expected config file to be written: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %v", info.Mode().Perm())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempDir(t)

	cfg := Default()
	cfg.BackendURL = "https://api.example.com/"
	cfg.SessionToken = "tok-123"
	cfg.Language = "en"
	cfg.JustAuthenticated = true
	cfg.User = &UserConfig{ID: "user_1", Email: "a@example.com", Name: "Ada"}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.BackendURL != "https://api.example.com" {
		t.Errorf("Expected trailing slash trimmed, got %q", got.BackendURL)
	}
	if got.SessionToken != "tok-123" {
		t.Errorf("Expected session token tok-123, got %q", got.SessionToken)
	}
	if !got.JustAuthenticated {
		t.Error("Expected just_authenticated to survive a round trip")
	}
	if got.User == nil || got.User.Email != "a@example.com" {
		t.Errorf("Expected user email a@example.com, got %+v", got.User)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	useTempDir(t)
	t.Setenv("NEUROAD_BACKEND_URL", "http://127.0.0.1:9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BackendURL != "http://127.0.0.1:9999" {
		t.Errorf("Expected env override, got %q", cfg.BackendURL)
	}
}

func TestUpdateAndClearSession(t *testing.T) {
	useTempDir(t)

	_, err := Update(func(c *Config) {
		c.SessionToken = "tok"
		c.User = &UserConfig{ID: "u"}
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	cfg, err := Update(func(c *Config) { c.ClearSession() })
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if cfg.SessionToken != "" || cfg.User != nil {
		t.Errorf("Expected cleared session, got token=%q user=%+v", cfg.SessionToken, cfg.User)
	}
}

func TestWatchReportsChanges(t *testing.T) {
	useTempDir(t)

	if _, err := Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes := make(chan *Config, 4)
	go Watch(ctx, func(c *Config) { changes <- c })

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)

	if _, err := Update(func(c *Config) { c.Language = "en" }); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	for {
		select {
		case c := <-changes:
			if c.Language == "en" {
				return
			}
		case <-ctx.Done():
			t.Fatal("Expected a reload after the config file changed")
		}
	}
}
