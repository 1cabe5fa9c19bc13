package api

import (
	"context"
	"time"
)

/*
This package defines the PUBLIC contract of the cache system, without
exposing internals. Higher layers (persona analysis caches, trait
memoization, conversation-context caches) should depend on these
interfaces rather than on the concrete engine, so alternative backends
can be swapped in underneath them.
*/

// ComputeFunc produces a value for a key the cache does not have.
// It runs outside the cache lock and may be slow (DB call, analysis pass).
type ComputeFunc func(ctx context.Context) (any, error)

/*
Backend is the minimal four-operation surface a cache backend must provide.
Anything implementing Backend can stand in for the in-memory engine.
*/
type Backend interface {

	// Get retrieves the value for key. The second result reports whether
	// a live (non-expired) entry was found. A miss is not an error.
	Get(key string) (any, bool)

	// Put stores or fully replaces a value under key, using the
	// backend's default TTL.
	Put(key string, value any)

	// Delete removes key if present and reports whether it existed.
	Delete(key string) bool

	// Clear empties the backend. Lifetime statistics, if any, survive.
	Clear()
}

/*
Cache is the full engine surface: Backend plus TTL control, expiry
reclamation, pattern invalidation, memoization, and statistics.
*/
type Cache interface {
	Backend

	// PutWithTTL stores a value with an explicit time-to-live.
	// A ttl of 0 pins the entry: it never expires.
	PutWithTTL(key string, value any, ttl time.Duration)

	// Contains reports whether a live entry exists for key, without
	// touching hit/miss or access bookkeeping.
	Contains(key string) bool

	// Size returns the current live entry count. Expired entries that
	// have not been reclaimed yet still count.
	Size() int

	// Cleanup removes every expired entry and returns how many were
	// removed. Safe to call at any time.
	Cleanup() int

	// InvalidatePattern removes every key matching a shell-style glob
	// ('*' matches any run of characters, '?' exactly one) and returns
	// the count removed.
	InvalidatePattern(pattern string) int

	// GetOrCompute returns the cached value for key, or runs compute,
	// caches its result with the given ttl (0 applies the backend's
	// default TTL), and returns it. A compute error propagates
	// unchanged and caches nothing.
	GetOrCompute(ctx context.Context, key string, compute ComputeFunc, ttl time.Duration) (any, error)

	// Stats returns a snapshot of lifetime counters.
	Stats() Stats

	// Close stops background work. After Close returns, no reaper tick
	// will fire again. Idempotent.
	Close()
}

// Stats is a consistent snapshot of the cache's lifetime counters plus its
// current occupancy. Hits+Misses equals the number of completed Get calls
// at the instant the snapshot was taken.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
	Size        int
	MaxSize     int // Unbounded (-1) when capacity is not limited
	HitRate     float64
}
