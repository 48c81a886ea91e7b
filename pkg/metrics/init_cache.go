package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCacheMetrics() {
	r.CacheEventsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "labelrepel_cache_events_total",
			Help: "Cache lookups and writes by event and key type",
		},
		[]string{"event", "key_type"},
	)

	r.CacheWriteBytes = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "labelrepel_cache_write_bytes_total",
			Help: "Bytes written to the cache",
		},
	)
}
