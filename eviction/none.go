package eviction

import (
	"time"

	"github.com/andreycpu/personacache/types"
)

/*
noEviction is the TTL-only strategy: the cache is unbounded, so there is
never a victim to choose. Entries leave only via explicit delete, clear,
lazy expiry on read, or the background reaper.

It keeps no bookkeeping at all, which also makes the unbounded cache's
write path as cheap as possible.
*/
type noEviction struct{}

func (noEviction) OnGet(string)                    {}
func (noEviction) OnPut(string, *types.CacheEntry) {}
func (noEviction) Remove(string)                   {}
func (noEviction) Evict(string, time.Time) string  { return "" }
