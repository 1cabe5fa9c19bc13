// This file implements FIFO eviction.

package eviction

import (
	"time"

	"github.com/andreycpu/personacache/types"
)

type fifo struct {
	// queue keeps keys in insertion order. The front (index 0) is the
	// oldest key.
	queue []string

	// set tracks which keys are currently in the queue.
	set map[string]struct{}
}

func newFIFO() *fifo {
	return &fifo{
		queue: make([]string, 0),
		set:   make(map[string]struct{}),
	}
}

// OnGet does nothing. FIFO ignores reads completely.
func (f *fifo) OnGet(string) {}

// OnPut appends new keys to the queue. A replacement keeps the key's
// original position: FIFO only cares about the first insertion.
func (f *fifo) OnPut(k string, _ *types.CacheEntry) {
	if _, ok := f.set[k]; ok {
		return
	}
	f.queue = append(f.queue, k)
	f.set[k] = struct{}{}
}

// Evict removes and returns the oldest inserted key, skipping the
// exempt one.
func (f *fifo) Evict(exempt string, _ time.Time) string {
	for i, k := range f.queue {
		if k == exempt {
			continue
		}
		f.queue = append(f.queue[:i], f.queue[i+1:]...)
		delete(f.set, k)
		return k
	}
	return ""
}

// Remove is called when a key leaves the cache without being evicted.
func (f *fifo) Remove(k string) {
	if _, ok := f.set[k]; !ok {
		return
	}

	delete(f.set, k)

	// Remove from the queue while preserving order.
	for i, v := range f.queue {
		if v == k {
			f.queue = append(f.queue[:i], f.queue[i+1:]...)
			break
		}
	}
}
