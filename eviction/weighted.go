// This file implements weighted (frequency/age) eviction.

package eviction

import (
	"time"

	"github.com/andreycpu/personacache/types"
)

/*
weighted scores every entry and evicts the one with the LOWEST score:

	weight = (accessCount + 1) / (ageSeconds + 1)

A low score means "old and rarely read". A frequently-touched entry keeps a
high score even as it ages, and a brand-new entry starts near 1.0, so it is
not punished just for having had no time to accumulate accesses.

The policy holds the store's own entry pointers, handed over in OnPut.
The store mutates AccessCount in place under the same lock that calls
Evict, so the scores here are always current.
*/
type weighted struct {
	entries map[string]*types.CacheEntry
}

func newWeighted() *weighted {
	return &weighted{entries: make(map[string]*types.CacheEntry)}
}

// OnGet does nothing: the access count lives on the entry itself and the
// store already bumped it.
func (w *weighted) OnGet(string) {}

// OnPut tracks the entry written for a key. A replacement hands over a
// fresh entry, which resets the key's score.
func (w *weighted) OnPut(k string, ent *types.CacheEntry) {
	w.entries[k] = ent
}

func (w *weighted) Remove(k string) {
	delete(w.entries, k)
}

/*
Evict scans all tracked entries except the exempt one and returns the key
with the minimum weight. Map iteration order is random, so ties are broken
deterministically by earliest CreatedAt instead of by whichever key the
range happened to visit first.
*/
func (w *weighted) Evict(exempt string, now time.Time) string {
	var victim *types.CacheEntry
	for k, ent := range w.entries {
		if k == exempt {
			continue
		}
		if victim == nil || less(ent, victim, now) {
			victim = ent
		}
	}
	if victim == nil {
		return ""
	}
	delete(w.entries, victim.Key)
	return victim.Key
}

// less reports whether a should be evicted before b.
func less(a, b *types.CacheEntry, now time.Time) bool {
	wa, wb := weightOf(a, now), weightOf(b, now)
	if wa != wb {
		return wa < wb
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

func weightOf(ent *types.CacheEntry, now time.Time) float64 {
	age := ent.Age(now).Seconds()
	return float64(ent.AccessCount+1) / (age + 1)
}
