package types

import "time"

// CacheEntry is the value holder for one cached key.
// It is mutated in place under the owning store's lock,
// so no field here needs its own synchronization.
type CacheEntry struct {
	Key         string
	Value       any
	CreatedAt   time.Time
	TTL         time.Duration // 0 => never expires
	AccessCount int
}

// IsExpired reports whether the entry's TTL has elapsed at the given time.
// An entry with no TTL never expires.
func (e *CacheEntry) IsExpired(now time.Time) bool {
	return e.TTL > 0 && now.Sub(e.CreatedAt) > e.TTL
}

// Touch records one successful read.
func (e *CacheEntry) Touch() {
	e.AccessCount++
}

// Age returns how long the entry has lived.
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.CreatedAt)
}
