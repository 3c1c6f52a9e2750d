package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncBooking(OutcomeBooked)
	m.IncBooking(OutcomeBooked)
	m.IncBooking(OutcomePartial)
	m.IncGatewayError("create")
	m.IncPartialBooking()
	m.ObserveRequest("GET", "/api/free-slots", "200", 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Bookings.WithLabelValues(OutcomeBooked)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Bookings.WithLabelValues(OutcomePartial)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GatewayErrors.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PartialBookings))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/free-slots", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncBooking(OutcomeBooked)
		m.IncGatewayError("list")
		m.IncPartialBooking()
		m.ObserveRequest("GET", "/", "200", 0)
	})
}

func TestNewOnSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
