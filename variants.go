package cache

import (
	"time"

	"github.com/andreycpu/personacache/eviction"
)

/*
This file provides the three stock cache flavors. They are just canned
configurations of New; anything they can build, Config can build too.
*/

// NewLRU builds a bounded cache with least-recently-used eviction and no
// TTL: entries leave only under capacity pressure or by explicit removal.
func NewLRU(maxSize int) (*Cache, error) {
	return New(Config{
		MaxSize: maxSize,
		Policy:  eviction.LRU,
	})
}

// NewTTL builds an unbounded, TTL-only cache. Every Put uses defaultTTL
// and a background reaper sweeps expired entries every cleanupInterval.
// Pass a cleanupInterval of 0 to rely on lazy expiry alone.
func NewTTL(defaultTTL, cleanupInterval time.Duration) (*Cache, error) {
	return New(Config{
		MaxSize:         Unbounded,
		DefaultTTL:      defaultTTL,
		CleanupInterval: cleanupInterval,
		Policy:          eviction.None,
	})
}

// NewWeighted builds a bounded cache whose victims are chosen by the
// frequency/age score rather than pure recency.
func NewWeighted(maxSize int) (*Cache, error) {
	return New(Config{
		MaxSize: maxSize,
		Policy:  eviction.Weighted,
	})
}
