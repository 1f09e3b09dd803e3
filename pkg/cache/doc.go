// Package cache provides a generic in-process cache with expiration, LRU
// bounding and stampede-free loading.
//
//	c := cache.NewMemory[Info](cache.WithMaxEntries(256))
//	defer c.Close()
//
//	info, err := cache.GetOrSet(ctx, c, key, func(ctx context.Context) (Info, time.Duration, error) {
//	    info, err := resolve(ctx)
//	    return info, -1, err // keep until cleared
//	})
//
// Get reports misses with [ErrNotFound]; writes to a closed cache fail with
// [ErrClosed].
package cache
