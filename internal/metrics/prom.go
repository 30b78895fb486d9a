package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Provider call outcomes.
const (
	OutcomeOK            = "ok"
	OutcomeRateLimited   = "rate_limited"
	OutcomeConfiguration = "configuration"
	OutcomeError         = "error"
)

// Metrics holds the relay collectors. A nil *Metrics records nothing.
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	providerRequests *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on r.
func New(r prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "santijr_http_requests_total",
				Help: "HTTP requests handled, by route, method and status code",
			},
			[]string{"route", "method", "code"},
		),
		providerRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "santijr_provider_requests_total",
				Help: "Calls to the generative-language provider, by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		providerDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "santijr_provider_duration_seconds",
				Help:    "Latency of generative-language provider calls",
				Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
			},
			[]string{"operation"},
		),
	}
	r.MustRegister(m.httpRequests, m.providerRequests, m.providerDuration)
	return m
}

// ObserveHTTP counts a finished HTTP request.
func (m *Metrics) ObserveHTTP(route, method string, code int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
}

// ObserveProvider records one provider call.
func (m *Metrics) ObserveProvider(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.providerRequests.WithLabelValues(operation, outcome).Inc()
	m.providerDuration.WithLabelValues(operation).Observe(d.Seconds())
}
