package api

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CatalogSource fetches the immutable reference data.
type CatalogSource interface {
	Strategies(ctx context.Context) ([]Strategy, error)
	Platforms(ctx context.Context) ([]Platform, error)
	MarketingTips(ctx context.Context) ([]MarketingTip, error)
}

const (
	DefaultCatalogTTL = 10 * time.Minute

	keyStrategies = "strategies"
	keyPlatforms  = "platforms"
	keyTips       = "marketing-tips"
)

// Catalog caches strategies, platforms and tips. It satisfies CatalogSource
// so views can use it in place of the client.
type Catalog struct {
	src   CatalogSource
	cache *cache.Cache
}

// NewCatalog wraps src with a cache that holds entries for ttl.
func NewCatalog(src CatalogSource, ttl time.Duration) *Catalog {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &Catalog{
		src:   src,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Catalog) Strategies(ctx context.Context) ([]Strategy, error) {
	return cached(c, keyStrategies, func() ([]Strategy, error) { return c.src.Strategies(ctx) })
}

func (c *Catalog) Platforms(ctx context.Context) ([]Platform, error) {
	return cached(c, keyPlatforms, func() ([]Platform, error) { return c.src.Platforms(ctx) })
}

func (c *Catalog) MarketingTips(ctx context.Context) ([]MarketingTip, error) {
	return cached(c, keyTips, func() ([]MarketingTip, error) { return c.src.MarketingTips(ctx) })
}

// Strategy looks up a strategy by id.
func (c *Catalog) Strategy(ctx context.Context, id string) (*Strategy, error) {
	all, err := c.Strategies(ctx)
	if err != nil {
		return nil, err
	}
	return FindStrategy(all, id), nil
}

// Platform looks up a platform by id.
func (c *Catalog) Platform(ctx context.Context, id string) (*Platform, error) {
	all, err := c.Platforms(ctx)
	if err != nil {
		return nil, err
	}
	return FindPlatform(all, id), nil
}

// Invalidate drops every cached entry.
func (c *Catalog) Invalidate() {
	c.cache.Flush()
}

// Errors are not cached; the next call retries.
func cached[T any](c *Catalog, key string, fetch func() ([]T, error)) ([]T, error) {
	if v, ok := c.cache.Get(key); ok {
		return v.([]T), nil
	}
	out, err := fetch()
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, out, cache.DefaultExpiration)
	return out, nil
}

// FindStrategy returns the strategy with id, or nil.
func FindStrategy(all []Strategy, id string) *Strategy {
	for i := range all {
		if all[i].ID == id {
			return &all[i]
		}
	}
	return nil
}

// FindPlatform returns the platform with id, or nil.
func FindPlatform(all []Platform, id string) *Platform {
	for i := range all {
		if all[i].ID == id {
			return &all[i]
		}
	}
	return nil
}
