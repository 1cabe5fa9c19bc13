// Package metrics exports cache events to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/andreycpu/personacache/types"
)

var _ types.Metrics = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements types.Metrics on Prometheus counters, so a
// cache instance can be watched with the rest of an application's metrics.
// All methods are called under the cache lock; counter increments are
// cheap enough for that.
type PrometheusMetrics struct {
	Hits        prometheus.Counter
	Misses      prometheus.Counter
	Evictions   prometheus.Counter
	Expirations prometheus.Counter
}

// NewPrometheusMetrics registers the cache counters under the given
// namespace against reg. Pass nil to use the default registerer. Each
// cache instance needs its own namespace: Prometheus rejects duplicate
// registration.
func NewPrometheusMetrics(namespace string, reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of cache reads that found a live entry",
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of cache reads that found nothing usable",
		}),
		Evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_evictions_total",
			Help:      "Total number of entries removed by capacity pressure",
		}),
		Expirations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_expirations_total",
			Help:      "Total number of entries removed because their TTL elapsed",
		}),
	}
}

func (m *PrometheusMetrics) Hit()      { m.Hits.Inc() }
func (m *PrometheusMetrics) Miss()     { m.Misses.Inc() }
func (m *PrometheusMetrics) Eviction() { m.Evictions.Inc() }
func (m *PrometheusMetrics) Expire()   { m.Expirations.Inc() }
