package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records per-endpoint request counters and latencies.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewHTTPMetrics registers the request metrics on the provided registerer.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "request_count",
		Help: "Total number of requests.",
	}, []string{"method", "endpoint"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "request_latency_seconds",
		Help:    "Request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "request_success",
		Help: "Number of successful requests.",
	}, []string{"method", "endpoint", "status"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "request_failure",
		Help: "Number of failed requests.",
	}, []string{"method", "endpoint", "status"})
	reg.MustRegister(requests, latency, success, failure)
	return &HTTPMetrics{
		requests: requests,
		latency:  latency,
		success:  success,
		failure:  failure,
	}
}

// Observe records one completed request.
func (m *HTTPMetrics) Observe(method, endpoint string, status int, duration time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	method = normalizeLabel(method)
	endpoint = normalizeLabel(endpoint)
	m.requests.WithLabelValues(method, endpoint).Inc()
	m.latency.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	code := strconv.Itoa(status)
	if status >= 200 && status < 300 {
		m.success.WithLabelValues(method, endpoint, code).Inc()
	} else {
		m.failure.WithLabelValues(method, endpoint, code).Inc()
	}
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
