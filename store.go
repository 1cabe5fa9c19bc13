package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/andreycpu/personacache/api"
	"github.com/andreycpu/personacache/eviction"
	"github.com/andreycpu/personacache/types"
)

/*
Cache is the in-memory cache engine: a key -> entry map plus whatever
ordering structure the configured eviction policy keeps, all guarded by
one mutex. Every public operation takes that mutex for its whole duration,
including the ones the background reaper invokes, so entries, policy
bookkeeping, and statistics can never be observed out of step with each
other.

No I/O and no user callback ever runs while the lock is held. The one
potentially slow piece of work, GetOrCompute's compute function, runs
outside the lock under a per-key singleflight gate.
*/
type Cache struct {
	cfg Config

	mu      sync.Mutex
	entries map[string]*types.CacheEntry
	policy  eviction.Policy

	hits        uint64
	misses      uint64
	evictions   uint64
	expirations uint64

	metrics types.Metrics

	// sf collapses concurrent GetOrCompute calls for the same missing
	// key into a single execution of the compute function.
	sf singleflight.Group

	reaper *reaper
}

var _ api.Cache = (*Cache)(nil)

/*
New builds a cache from the given configuration and, if a cleanup interval
is set, starts its background reaper. The caller owns the instance and is
responsible for Close; there is no process-wide shared cache.

Configuration errors (non-positive bounded MaxSize, negative intervals,
unknown policy) are reported here, eagerly.
*/
func New(cfg Config) (*Cache, error) {
	cfg = cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Cache{
		cfg:     cfg,
		entries: make(map[string]*types.CacheEntry),
		policy:  eviction.NewEvictionPolicy(cfg.Policy),
		metrics: cfg.Metrics,
	}

	if cfg.CleanupInterval > 0 {
		c.reaper = startReaper(c, cfg.CleanupInterval)
	}

	return c, nil
}

/*
Get retrieves the value for a key.

BEHAVIOR:
---------
- Key absent: count a miss, return (nil, false). Never an error.
- Key present but expired: remove it, count one expiration AND one miss,
  return (nil, false).
- Otherwise: bump the entry's access count, tell the eviction policy the
  key was touched, count a hit, return the value.
*/
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		c.misses++
		c.metrics.Miss()
		return nil, false
	}

	if ent.IsExpired(time.Now()) {
		c.removeLocked(key)
		c.expirations++
		c.misses++
		c.metrics.Expire()
		c.metrics.Miss()
		return nil, false
	}

	ent.Touch()
	c.policy.OnGet(key)
	c.hits++
	c.metrics.Hit()
	return ent.Value, true
}

// Put stores a value under key with the cache's default TTL.
func (c *Cache) Put(key string, value any) {
	c.PutWithTTL(key, value, c.cfg.DefaultTTL)
}

/*
PutWithTTL stores a value with an explicit time-to-live. A ttl of 0 pins
the entry so it never expires.

The entry for key is created or fully replaced: CreatedAt is reset to now
and the access count starts over at zero. The written key counts as most
recently touched.

If the insertion pushes the cache over capacity, the eviction policy is
asked for victims, synchronously and inside the same critical section,
until the size bound holds again. The key just written is exempt: Put
never evicts the entry it inserted.
*/
func (c *Cache) PutWithTTL(key string, value any, ttl time.Duration) {
	now := time.Now()
	ent := &types.CacheEntry{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		TTL:       ttl,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = ent
	c.policy.OnPut(key, ent)

	if c.cfg.MaxSize == Unbounded {
		return
	}
	for len(c.entries) > c.cfg.MaxSize {
		victim := c.policy.Evict(key, now)
		if victim == "" {
			// A bounded policy always has a candidate; this guards
			// against spinning if bookkeeping ever went inconsistent.
			break
		}
		delete(c.entries, victim)
		c.evictions++
		c.metrics.Eviction()
	}
}

// Delete removes key if present and reports whether it existed.
// No eviction or expiration counter is touched.
func (c *Cache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return false
	}
	c.removeLocked(key)
	return true
}

// Clear empties the cache. The cumulative counters survive: they describe
// lifetime activity, not current contents.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*types.CacheEntry)
	c.policy = eviction.NewEvictionPolicy(c.cfg.Policy)
}

/*
Contains reports whether a live entry exists for key. Unlike Get it
touches no hit/miss or access bookkeeping.

An expired entry found here is removed straight away and counted as one
expiration. Tests rely on that accounting.
*/
func (c *Cache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		return false
	}
	if ent.IsExpired(time.Now()) {
		c.removeLocked(key)
		c.expirations++
		c.metrics.Expire()
		return false
	}
	return true
}

// Size returns the current entry count. Entries that have expired but not
// yet been reclaimed still count until something removes them.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Cleanup removes every expired entry and returns how many were removed.
// This is what the background reaper calls on each tick, but it is safe
// to call from anywhere at any time.
func (c *Cache) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, ent := range c.entries {
		if ent.IsExpired(now) {
			c.removeLocked(key)
			c.expirations++
			c.metrics.Expire()
			removed++
		}
	}
	return removed
}

// InvalidatePattern removes every key matching a shell-style glob and
// returns the count removed. A full linear scan: correct and fast enough
// at the hundreds-to-low-thousands of entries this cache is built for.
func (c *Cache) InvalidatePattern(pattern string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if matchGlob(pattern, key) {
			c.removeLocked(key)
			removed++
		}
	}
	return removed
}

/*
GetOrCompute returns the cached value for key if one is live, and
otherwise runs compute, caches its result, and returns it. A ttl of 0
applies the cache's DefaultTTL.

CONCURRENCY CONTRACT (single-flight):
-------------------------------------
The compute function runs outside the cache lock, gated per key by a
singleflight group. When several goroutines race on the same absent key,
exactly one executes compute; the others block until it finishes and
share its result. Compute therefore runs at most once per cache-miss
episode.

A compute error propagates to the caller unchanged and caches NOTHING:
a failed computation never poisons the cache.
*/
func (c *Cache) GetOrCompute(ctx context.Context, key string, compute api.ComputeFunc, ttl time.Duration) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	if ttl == 0 {
		ttl = c.cfg.DefaultTTL
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		// A caller that lost the race to an earlier flight re-checks
		// here; the winner may have populated the key already. The
		// peek keeps this internal re-check out of the hit/miss
		// counters, which only describe the caller-visible lookups.
		if v, ok := c.peek(key); ok {
			return v, nil
		}

		v, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		c.PutWithTTL(key, v, ttl)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Stats returns a snapshot of the lifetime counters plus current
// occupancy. Taken under the lock, so Hits+Misses always equals the
// number of Get calls completed so far.
func (c *Cache) Stats() api.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := api.Stats{
		Hits:        c.hits,
		Misses:      c.misses,
		Evictions:   c.evictions,
		Expirations: c.expirations,
		Size:        len(c.entries),
		MaxSize:     c.cfg.MaxSize,
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total)
	}
	return s
}

// Close stops the background reaper, if one is running, and waits for it
// to exit. After Close returns no tick fires again. Idempotent; the cache
// itself remains usable (Close tears down background work, not data).
func (c *Cache) Close() {
	if c.reaper != nil {
		c.reaper.close()
	}
}

// peek is a stat-free, bookkeeping-free lookup used when GetOrCompute
// re-checks a key inside its flight. Expired entries read as absent but
// are left for the regular paths to reclaim.
func (c *Cache) peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok || ent.IsExpired(time.Now()) {
		return nil, false
	}
	return ent.Value, true
}

// removeLocked drops an entry and its policy bookkeeping.
// Callers hold the lock and do their own counter accounting.
func (c *Cache) removeLocked(key string) {
	delete(c.entries, key)
	c.policy.Remove(key)
}
