package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a key-value store with per-entry expiration.
//
// A positive ttl passed to Set expires the entry after that duration, zero
// uses the cache default and a negative ttl keeps the entry until it is
// deleted or the cache is cleared.
type Cache[V any] interface {
	// Get returns ErrNotFound for missing or expired keys.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
	Close() error
}

var flights singleflight.Group

type loaded[V any] struct {
	val V
	ttl time.Duration
}

// GetOrSet returns the cached value for key, computing and storing it with fn
// on a miss. Concurrent misses for the same key on the same cache share one
// call to fn. Errors from fn are returned and never cached.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, fn func(ctx context.Context) (V, time.Duration, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	var zero V
	r, err, _ := flights.Do(fmt.Sprintf("%p\x00%s", c, key), func() (any, error) {
		val, ttl, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return loaded[V]{val: val, ttl: ttl}, nil
	})
	if err != nil {
		return zero, err
	}

	res := r.(loaded[V])
	_ = c.Set(ctx, key, res.val, res.ttl)
	return res.val, nil
}
