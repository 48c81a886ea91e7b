package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/matzehuels/labelrepel/pkg/observability"
)

var (
	_ observability.RepelHooks = (*Registry)(nil)
	_ observability.CacheHooks = (*Registry)(nil)
	_ observability.HTTPHooks  = (*Registry)(nil)
)

// stateError labels runs that returned an error instead of a final state.
const stateError = "error"

// OnRepelStart implements observability.RepelHooks.
func (r *Registry) OnRepelStart(_ context.Context, n int) {
	r.RunsInProgress.Inc()
	r.RunBoxes.Observe(float64(n))
}

// OnRepelComplete implements observability.RepelHooks.
func (r *Registry) OnRepelComplete(_ context.Context, _ int, iterations int, state string, duration time.Duration, err error) {
	r.RunsInProgress.Dec()
	if err != nil {
		state = stateError
	}
	r.RunsTotal.WithLabelValues(state).Inc()
	r.RunDuration.Observe(duration.Seconds())
	if err == nil {
		r.RunIterations.Observe(float64(iterations))
	}
}

// OnCacheHit implements observability.CacheHooks.
func (r *Registry) OnCacheHit(_ context.Context, keyType string) {
	r.CacheEventsTotal.WithLabelValues("hit", keyType).Inc()
}

// OnCacheMiss implements observability.CacheHooks.
func (r *Registry) OnCacheMiss(_ context.Context, keyType string) {
	r.CacheEventsTotal.WithLabelValues("miss", keyType).Inc()
}

// OnCacheSet implements observability.CacheHooks.
func (r *Registry) OnCacheSet(_ context.Context, keyType string, size int) {
	r.CacheEventsTotal.WithLabelValues("set", keyType).Inc()
	r.CacheWriteBytes.Add(float64(size))
}

// OnRequest implements observability.HTTPHooks.
func (r *Registry) OnRequest(_ context.Context, method, route string, status int, duration time.Duration) {
	s := strconv.Itoa(status)
	r.HTTPRequestsTotal.WithLabelValues(method, route, s).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route, s).Observe(duration.Seconds())
}
