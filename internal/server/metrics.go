package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the collectors exposed on /metrics. Each handler owns its own
// registry so tests can build handlers independently.
type metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	outcomes  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	cacheHits prometheus.Counter
	throttled prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "production_optimizer",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "production_optimizer",
			Name:      "optimizations_total",
			Help:      "Completed optimizations by policy and result status.",
		}, []string{"policy", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "production_optimizer",
			Name:      "optimization_duration_seconds",
			Help:      "Time spent in the optimizer by policy.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"policy"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "production_optimizer",
			Name:      "cache_hits_total",
			Help:      "Optimization responses served from the result cache.",
		}),
		throttled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "production_optimizer",
			Name:      "throttled_requests_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}
	m.registry.MustRegister(m.requests, m.outcomes, m.duration, m.cacheHits, m.throttled)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
