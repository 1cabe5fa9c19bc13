// This file implements LRU eviction.

package eviction

import (
	"time"

	"github.com/andreycpu/personacache/types"
)

// lruNode represents ONE key inside the LRU structure. We use a doubly-linked
// list to track usage order.
type lruNode struct {
	key  string
	prev *lruNode
	next *lruNode
}

// lru is the concrete implementation of the LRU eviction policy.
type lru struct {
	// nodes maps cache keys to their list nodes, so touching a key is O(1).
	nodes map[string]*lruNode

	// head points to the MOST recently touched key.
	head *lruNode

	// tail points to the LEAST recently touched key.
	tail *lruNode
}

func newLRU() *lru {
	return &lru{nodes: make(map[string]*lruNode)}
}

// OnGet marks a key as most recently touched.
func (l *lru) OnGet(k string) {
	if n, ok := l.nodes[k]; ok {
		l.moveToFront(n)
	}
}

// OnPut marks a written key as most recently touched. A replacement counts
// the same as a fresh insert: either way the key moves to the front.
func (l *lru) OnPut(k string, _ *types.CacheEntry) {
	if n, ok := l.nodes[k]; ok {
		l.moveToFront(n)
		return
	}
	n := &lruNode{key: k}
	l.nodes[k] = n
	l.addFront(n)
}

// Evict removes and returns the least recently touched key, skipping the
// exempt one. The exempt key was just written, so it sits at the front and
// in practice is never the tail; the skip is for the single-entry edge.
func (l *lru) Evict(exempt string, _ time.Time) string {
	n := l.tail
	for n != nil && n.key == exempt {
		n = n.prev
	}
	if n == nil {
		return ""
	}

	k := n.key
	l.remove(n)
	delete(l.nodes, k)
	return k
}

// Remove is called when a key leaves the cache without being evicted.
// This keeps LRU's internal state consistent.
func (l *lru) Remove(k string) {
	if n, ok := l.nodes[k]; ok {
		l.remove(n)
		delete(l.nodes, k)
	}
}

// addFront adds a node to the front of the linked list, marking it as
// most recently touched.
func (l *lru) addFront(n *lruNode) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n

	// If the list was empty, head and tail are the same.
	if l.tail == nil {
		l.tail = n
	}
}

// remove unlinks a node, updating head and tail if needed.
func (l *lru) remove(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
}

func (l *lru) moveToFront(n *lruNode) {
	l.remove(n)
	l.addFront(n)
}
