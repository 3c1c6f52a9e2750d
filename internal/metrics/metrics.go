package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "scheduler"

// Booking outcomes.
const (
	OutcomeBooked     = "booked"
	OutcomeReplayed   = "replayed"
	OutcomeRejected   = "rejected"
	OutcomeGateway    = "gateway_error"
	OutcomeStoreError = "store_error"
	OutcomePartial    = "partial"
)

// Metrics holds the Prometheus collectors for the scheduler. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	// HTTPRequests counts handled requests by method, route and status.
	HTTPRequests *prometheus.CounterVec

	HTTPDuration *prometheus.HistogramVec

	// Bookings counts book-meeting attempts by outcome.
	Bookings *prometheus.CounterVec

	// GatewayErrors counts failed calendar calls by operation.
	GatewayErrors *prometheus.CounterVec

	// PartialBookings counts remote events left without a local record.
	PartialBookings prometheus.Counter
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),

		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 2, 5},
			},
			[]string{"method", "route"},
		),

		Bookings: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_total",
				Help:      "Total number of booking attempts by outcome",
			},
			[]string{"outcome"},
		),

		GatewayErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calendar_errors_total",
				Help:      "Total number of failed calendar calls",
			},
			[]string{"operation"},
		),

		PartialBookings: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "partial_bookings_total",
				Help:      "Calendar events created without a matching local record",
			},
		),
	}
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) IncBooking(outcome string) {
	if m == nil {
		return
	}
	m.Bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncGatewayError(operation string) {
	if m == nil {
		return
	}
	m.GatewayErrors.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncPartialBooking() {
	if m == nil {
		return
	}
	m.PartialBookings.Inc()
}
