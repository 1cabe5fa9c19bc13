package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an observer for cache lifecycle events. The store keeps its own
counters for Stats(); this interface exists so callers can additionally
export those events wherever they like (Prometheus, logs, test probes)
without the store knowing or caring.

Every method is called while the store holds its lock, so implementations
must be fast and must never call back into the cache.
*/
type Metrics interface {

	// Hit is called when a Get finds a live entry.
	Hit()

	// Miss is called when a Get finds nothing usable.
	Miss()

	// Eviction is called when a live entry is removed to satisfy
	// the capacity bound.
	Eviction()

	// Expire is called when an entry is removed because its TTL elapsed.
	Expire()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

We don't want to force every user of the cache to wire up metrics,
and we don't want `if metrics != nil` checks scattered through the
hot paths, so the store falls back to this when none is configured.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Expire()   {}
