package eviction

/*
This file defines how the cache decides what to remove when it runs out of space.
*/

import (
	"time"

	"github.com/andreycpu/personacache/types"
)

/*
Policy is the interface that all eviction strategies must follow.

The cache does NOT care how a strategy works internally. It only reports
key activity through these hooks and, when it is over capacity, asks for
a victim. All calls happen under the store's lock, so implementations
need no locking of their own.
*/
type Policy interface {

	// OnGet is called whenever a key is successfully read from the cache.
	//
	// Recency-based strategies use this to re-order keys. Strategies
	// that only look at entry metadata (like Weighted) can ignore it,
	// because the store bumps the entry's access count itself.
	OnGet(key string)

	// OnPut is called whenever a key is written, both for new keys and
	// for replacements. The entry is the one the store just installed;
	// strategies that score entries may hold on to the pointer (it stays
	// valid until Remove or Evict drops the key).
	//
	// A replaced key counts as freshly touched.
	OnPut(key string, ent *types.CacheEntry)

	// Remove is called when a key leaves the cache for any reason other
	// than eviction: explicit delete, expiry, pattern invalidation.
	// The policy must forget its bookkeeping for that key.
	Remove(key string)

	// Evict is called when the cache is over capacity. The policy picks
	// a victim, drops its own bookkeeping for it, and returns the key;
	// the store then removes the entry itself.
	//
	// The exempt key is the one the triggering Put just wrote. It must
	// never be chosen, so a burst of insertions cannot self-evict.
	// Unbounded policies return "".
	Evict(exempt string, now time.Time) string
}

// PolicyType is a simple identifier for supported eviction strategies.
type PolicyType string

const (
	// LRU (Least Recently Used) evicts the key that has NOT been touched
	// for the longest time. This is the default.
	LRU PolicyType = "LRU"

	// None disables capacity eviction entirely. The cache is unbounded;
	// entries leave only via delete, clear, or TTL expiry.
	None PolicyType = "NONE"

	// Weighted scores every entry as (accessCount+1)/(ageSeconds+1) and
	// evicts the minimum. A rarely-touched old entry goes before a hot
	// one, and a brand-new entry is never penalized for having had no
	// time to accumulate accesses.
	Weighted PolicyType = "WEIGHTED"

	// LFU (Least Frequently Used) evicts the key read the fewest times.
	LFU PolicyType = "LFU"

	// FIFO (First In First Out) evicts the oldest inserted key,
	// regardless of access.
	FIFO PolicyType = "FIFO"
)

// Bounded reports whether the policy type enforces a capacity bound.
func (t PolicyType) Bounded() bool {
	return t != None
}

// Valid reports whether t names a known eviction strategy.
func (t PolicyType) Valid() bool {
	switch t {
	case LRU, None, Weighted, LFU, FIFO:
		return true
	}
	return false
}

// NewEvictionPolicy is a small factory function.
// Given a PolicyType, it creates the correct eviction policy.
func NewEvictionPolicy(t PolicyType) Policy {
	switch t {
	case LRU:
		return newLRU()
	case None:
		return noEviction{}
	case Weighted:
		return newWeighted()
	case LFU:
		return newLFU()
	case FIFO:
		return newFIFO()
	default:
		panic("unknown eviction policy: " + string(t))
	}
}
