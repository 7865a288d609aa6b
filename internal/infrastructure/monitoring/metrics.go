package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the HTTP surface and the
// ingest pipeline.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	EventsIngested      *prometheus.CounterVec
	RateLimitHits       *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on reg. Tests pass their
// own registry so collectors never collide across cases.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rfid_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rfid_http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		EventsIngested: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rfid_events_ingested_total",
				Help: "Total number of access events recorded.",
			},
			[]string{"event_type", "authorized"},
		),
		RateLimitHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rfid_rate_limit_hits_total",
				Help: "Total number of requests rejected by the rate limiter.",
			},
			[]string{"path"},
		),
	}
}

// RecordIngest counts one stored access event.
func (m *Metrics) RecordIngest(eventType string, authorized bool) {
	label := "false"
	if authorized {
		label = "true"
	}
	m.EventsIngested.WithLabelValues(eventType, label).Inc()
}
