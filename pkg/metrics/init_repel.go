package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRepelMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "labelrepel_runs_total",
			Help: "Total number of repel runs by final state",
		},
		[]string{"state"},
	)

	r.RunIterations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "labelrepel_run_iterations",
			Help:    "Iterations executed per repel run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "labelrepel_run_duration_seconds",
			Help:    "Repel run latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.RunBoxes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "labelrepel_run_boxes",
			Help:    "Number of boxes per repel run",
			Buckets: []float64{1, 10, 50, 100, 500, 1000},
		},
	)

	r.RunsInProgress = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "labelrepel_runs_in_progress",
			Help: "Current number of repel runs being executed",
		},
	)
}
