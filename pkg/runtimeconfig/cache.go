package runtimeconfig

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrymomot/i18nlayers/pkg/cache"
	"github.com/dmitrymomot/i18nlayers/pkg/layer"
)

// ConfigResolver resolves the runtime config of a single layer.
type ConfigResolver interface {
	Resolve(ctx context.Context, cfg layer.I18nConfig, buildDir, rootDir string) (Info, error)
}

// CachedResolver memoizes successful resolutions of another ConfigResolver.
// Concurrent calls for the same layer share one underlying resolution.
// Errors are never cached. Callers get their own copy of every Info.
type CachedResolver struct {
	next  ConfigResolver
	store cache.Cache[Info]
}

// NewCachedResolver wraps next with store. A nil store gets an unbounded
// in-memory cache.
func NewCachedResolver(next ConfigResolver, store cache.Cache[Info]) *CachedResolver {
	if store == nil {
		store = cache.NewMemory[Info]()
	}
	return &CachedResolver{next: next, store: store}
}

// Resolve returns the cached Info for the layer or resolves it through the wrapped resolver.
func (c *CachedResolver) Resolve(ctx context.Context, cfg layer.I18nConfig, buildDir, rootDir string) (Info, error) {
	info, err := cache.GetOrSet(ctx, c.store, cacheKey(cfg, buildDir, rootDir),
		func(ctx context.Context) (Info, time.Duration, error) {
			info, err := c.next.Resolve(ctx, cfg, buildDir, rootDir)
			return info, -1, err
		})
	if err != nil {
		return Info{}, err
	}
	return info.Clone(), nil
}

// Forget drops the cached Info of one layer.
func (c *CachedResolver) Forget(ctx context.Context, cfg layer.I18nConfig, buildDir, rootDir string) error {
	return c.store.Delete(ctx, cacheKey(cfg, buildDir, rootDir))
}

// Invalidate drops every cached entry.
func (c *CachedResolver) Invalidate(ctx context.Context) error {
	return c.store.Clear(ctx)
}

// Close releases the underlying cache.
func (c *CachedResolver) Close() error {
	return c.store.Close()
}

func cacheKey(cfg layer.I18nConfig, buildDir, rootDir string) string {
	name := cfg.VueI18n
	if name == "" {
		name = DefaultFileName
	}
	return strings.Join([]string{buildDir, rootDir, name}, "\x00")
}
