// This file implements LFU eviction.

package eviction

import (
	"time"

	"github.com/andreycpu/personacache/types"
)

// lfuNode represents one key tracked by LFU.
type lfuNode struct {
	key  string
	freq int // how many times this key was touched
}

type lfu struct {
	// nodes lets us quickly find the node for a key.
	nodes map[string]*lfuNode

	// freqMap groups keys by how many times they were touched.
	freqMap map[int]map[string]*lfuNode

	// minFreq tracks the smallest frequency currently present,
	// so eviction does not scan every bucket.
	minFreq int
}

func newLFU() *lfu {
	return &lfu{
		nodes:   make(map[string]*lfuNode),
		freqMap: make(map[int]map[string]*lfuNode),
	}
}

// OnGet moves the key to the next frequency bucket.
func (l *lfu) OnGet(k string) {
	n, ok := l.nodes[k]
	if !ok {
		return
	}

	old := n.freq
	n.freq++

	delete(l.freqMap[old], k)
	if len(l.freqMap[old]) == 0 {
		delete(l.freqMap, old)
		if l.minFreq == old {
			l.minFreq++
		}
	}

	if l.freqMap[n.freq] == nil {
		l.freqMap[n.freq] = make(map[string]*lfuNode)
	}
	l.freqMap[n.freq][k] = n
}

// OnPut starts new keys at frequency 1. A replacement is treated as a
// touch rather than a reset, which keeps hot keys hot across updates.
func (l *lfu) OnPut(k string, _ *types.CacheEntry) {
	if _, ok := l.nodes[k]; ok {
		l.OnGet(k)
		return
	}

	n := &lfuNode{key: k, freq: 1}
	l.nodes[k] = n

	if l.freqMap[1] == nil {
		l.freqMap[1] = make(map[string]*lfuNode)
	}
	l.freqMap[1][k] = n

	// A new key with freq=1 exists, so minFreq must be 1.
	l.minFreq = 1
}

// Evict removes any key from the lowest non-empty frequency bucket,
// skipping the exempt key. Keys sharing a frequency are evicted in
// arbitrary order.
func (l *lfu) Evict(exempt string, _ time.Time) string {
	best := l.pickBucket(exempt)
	if best == -1 {
		return ""
	}

	for k := range l.freqMap[best] {
		if k == exempt {
			continue
		}
		delete(l.freqMap[best], k)
		if len(l.freqMap[best]) == 0 {
			delete(l.freqMap, best)
		}
		delete(l.nodes, k)
		return k
	}
	return ""
}

// pickBucket finds the lowest frequency bucket holding a non-exempt key.
// The minFreq hint covers the common case; buckets left sparse by removals
// force the full scan.
func (l *lfu) pickBucket(exempt string) int {
	if bucket, ok := l.freqMap[l.minFreq]; ok {
		for k := range bucket {
			if k != exempt {
				return l.minFreq
			}
		}
	}

	best := -1
	for f, bucket := range l.freqMap {
		if best != -1 && f >= best {
			continue
		}
		for k := range bucket {
			if k != exempt {
				best = f
				break
			}
		}
	}
	return best
}

// Remove is called when a key leaves the cache without being evicted.
func (l *lfu) Remove(k string) {
	n, ok := l.nodes[k]
	if !ok {
		return
	}

	delete(l.freqMap[n.freq], k)
	if len(l.freqMap[n.freq]) == 0 {
		delete(l.freqMap, n.freq)
	}
	delete(l.nodes, k)
}
