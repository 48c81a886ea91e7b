// Package metrics exports Prometheus metrics for repel runs, cache
// activity and the HTTP API.
//
// A Registry implements the observability hook interfaces, so wiring it up
// is a matter of registering it at startup:
//
//	reg := metrics.NewRegistry()
//	observability.SetRepelHooks(reg)
//	observability.SetCacheHooks(reg)
//	observability.SetHTTPHooks(reg)
//	http.Handle("/metrics", reg.Handler())
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the application.
type Registry struct {
	// Repel Metrics
	RunsTotal      *prometheus.CounterVec
	RunIterations  prometheus.Histogram
	RunDuration    prometheus.Histogram
	RunBoxes       prometheus.Histogram
	RunsInProgress prometheus.Gauge

	// Cache Metrics
	CacheEventsTotal *prometheus.CounterVec
	CacheWriteBytes  prometheus.Counter

	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with all metrics initialized on a private
// Prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initRepelMetrics()
	r.initCacheMetrics()
	r.initHTTPMetrics()

	return r
}

// Prometheus returns the underlying Prometheus registry.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
