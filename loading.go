package cache

import (
	"context"
	"time"

	"github.com/andreycpu/personacache/types"
)

/*
ReadThrough couples a Cache with a backing store.

Reads go through the cache first; on a miss the loader is asked for the
value and the result is cached. Because the miss path rides on
GetOrCompute, concurrent readers of the same cold key trigger exactly one
Load. Writes are write-through: the backing store is updated first, and
the cache only after that succeeds, so the cache never holds a value the
store refused.

This is the seam the domain layers (persona analysis, trait memoization,
conversation context) plug their stores into. They still own their key
construction and their TTL choices.
*/
type ReadThrough struct {
	cache  *Cache
	loader types.Loader
	ttl    time.Duration
}

// NewReadThrough wraps cache with loader. ttl applies to every entry the
// wrapper writes; 0 falls back to the cache's DefaultTTL.
func NewReadThrough(c *Cache, loader types.Loader, ttl time.Duration) *ReadThrough {
	return &ReadThrough{cache: c, loader: loader, ttl: ttl}
}

// Get returns the cached value for key, loading it from the backing
// store on a miss. A loader error propagates and caches nothing; a
// loader returning (nil, nil) is cached as a nil value like any other.
func (r *ReadThrough) Get(ctx context.Context, key string) (any, error) {
	return r.cache.GetOrCompute(ctx, key, func(ctx context.Context) (any, error) {
		return r.loader.Load(ctx, key)
	}, r.ttl)
}

// Put writes through to the backing store, then refreshes the cache.
func (r *ReadThrough) Put(ctx context.Context, key string, value any) error {
	if err := r.loader.Put(ctx, key, value); err != nil {
		return err
	}
	if r.ttl == 0 {
		r.cache.Put(key, value)
	} else {
		r.cache.PutWithTTL(key, value, r.ttl)
	}
	return nil
}

// Invalidate drops the cached copy only, leaving the backing store alone.
// The next Get will reload.
func (r *ReadThrough) Invalidate(key string) bool {
	return r.cache.Delete(key)
}
