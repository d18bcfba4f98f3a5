// Package observability bundles the Prometheus metrics for the resolution
// pipeline: upstream traffic per provider and cache effectiveness per
// namespace.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the pipeline counters. A nil *Metrics is valid and records
// nothing, so services can be wired without observability in tests.
type Metrics struct {
	gatherer prometheus.Gatherer

	UpstreamRequests *prometheus.CounterVec
	UpstreamFailures *prometheus.CounterVec
	CacheHits        *prometheus.CounterVec
	CacheMisses      *prometheus.CounterVec
}

// New registers the pipeline metrics against reg, defaulting to the global
// Prometheus registry when nil.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	m := &Metrics{
		gatherer: gatherer,
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haulplan_upstream_requests_total",
			Help: "Upstream requests issued, labeled by provider and operation.",
		}, []string{"provider", "operation"}),
		UpstreamFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haulplan_upstream_failures_total",
			Help: "Upstream requests that failed, labeled by provider and operation.",
		}, []string{"provider", "operation"}),
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haulplan_cache_hits_total",
			Help: "Cache hits, labeled by namespace.",
		}, []string{"namespace"}),
		CacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haulplan_cache_misses_total",
			Help: "Cache misses, labeled by namespace.",
		}, []string{"namespace"}),
	}

	for _, c := range []prometheus.Collector{
		m.UpstreamRequests, m.UpstreamFailures, m.CacheHits, m.CacheMisses,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler returns the scrape endpoint for the registry behind this collector.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// RecordUpstream counts one upstream call and, when err is non-nil, one
// failure.
func (m *Metrics) RecordUpstream(provider, operation string, err error) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(provider, operation).Inc()
	if err != nil {
		m.UpstreamFailures.WithLabelValues(provider, operation).Inc()
	}
}

// RecordCache counts one cache lookup outcome for a namespace.
func (m *Metrics) RecordCache(namespace string, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.WithLabelValues(namespace).Inc()
		return
	}
	m.CacheMisses.WithLabelValues(namespace).Inc()
}
