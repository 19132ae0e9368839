package api_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neuroad/neuroad-cli/internal/api"
)

type countingSource struct {
	strategies int
	fail       bool
}

func (c *countingSource) Strategies(ctx context.Context) ([]api.Strategy, error) {
	c.strategies++
	if c.fail {
		return nil, errors.New("boom")
	}
	return []api.Strategy{{ID: "scarcity", Icon: "clock"}, {ID: "custom", Icon: "rocket"}}, nil
}

func (c *countingSource) Platforms(ctx context.Context) ([]api.Platform, error) {
	return []api.Platform{{ID: "post_square"}}, nil
}

func (c *countingSource) MarketingTips(ctx context.Context) ([]api.MarketingTip, error) {
	return nil, nil
}

func TestCatalogCachesHits(t *testing.T) {
	src := &countingSource{}
	cat := api.NewCatalog(src, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := cat.Strategies(ctx); err != nil {
			t.Fatalf("Strategies failed: %v", err)
		}
	}
	if src.strategies != 1 {
		t.Errorf("Expected one fetch, got %d", src.strategies)
	}

	cat.Invalidate()
	if _, err := cat.Strategies(ctx); err != nil {
		t.Fatalf("Strategies failed: %v", err)
	}
	if src.strategies != 2 {
		t.Errorf("Expected refetch after invalidate, got %d fetches", src.strategies)
	}
}

func TestCatalogDoesNotCacheErrors(t *testing.T) {
	src := &countingSource{fail: true}
	cat := api.NewCatalog(src, time.Minute)
	ctx := context.Background()

	if _, err := cat.Strategies(ctx); err == nil {
		t.Fatal("Expected error")
	}
	src.fail = false
	if _, err := cat.Strategies(ctx); err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if src.strategies != 2 {
		t.Errorf("Expected 2 fetches, got %d", src.strategies)
	}
}

func TestCatalogLookupAndGlyph(t *testing.T) {
	cat := api.NewCatalog(&countingSource{}, time.Minute)
	ctx := context.Background()

	s, err := cat.Strategy(ctx, "scarcity")
	if err != nil || s == nil {
		t.Fatalf("Expected scarcity, got %v (%v)", s, err)
	}
	if s.Glyph() != "⏰" {
		t.Errorf("Expected clock glyph, got %q", s.Glyph())
	}

	custom, _ := cat.Strategy(ctx, "custom")
	if custom.Glyph() != "🎯" {
		t.Errorf("Expected fallback glyph, got %q", custom.Glyph())
	}

	missing, _ := cat.Platform(ctx, "nope")
	if missing != nil {
		t.Errorf("Expected nil for unknown platform, got %+v", missing)
	}
}

func TestParseTimestamp(t *testing.T) {
	for _, s := range []string{
		"2025-01-02T03:04:05.123456+00:00",
		"2025-01-02T03:04:05Z",
		"2025-01-02T03:04:05.123456",
	} {
		ts, ok := api.ParseTimestamp(s)
		if !ok {
			t.Errorf("Expected %q to parse", s)
			continue
		}
		if ts.Year() != 2025 || ts.Day() != 2 {
			t.Errorf("Unexpected parse of %q: %v", s, ts)
		}
	}
	if _, ok := api.ParseTimestamp("yesterday"); ok {
		t.Error("Expected garbage to fail")
	}
}
