// Package metrics records coaching and HTTP metrics in Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the application's metric vectors.
type Recorder struct {
	generationsTotal *prometheus.CounterVec
	externalDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// NewRecorder registers all metrics on reg. Registering twice on the same
// registerer panics.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		generationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coaching_generations_total",
				Help: "Coaching messages produced, by kind, text source and outcome",
			},
			[]string{"kind", "source", "outcome"},
		),
		externalDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coaching_external_duration_seconds",
				Help:    "Duration of external text generation calls",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 30},
			},
			[]string{"provider"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP requests by method, route pattern and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by route pattern",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveGeneration counts one produced coaching message.
func (r *Recorder) ObserveGeneration(kind, source, outcome string) {
	r.generationsTotal.WithLabelValues(kind, source, outcome).Inc()
}

// ObserveExternalDuration records the latency of one external generation call.
func (r *Recorder) ObserveExternalDuration(provider string, d time.Duration) {
	r.externalDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// ObserveHTTPRequest records one served request. route is the mux pattern,
// never the raw path, to keep label cardinality bounded.
func (r *Recorder) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
