package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "beauty-booking")

	m.IncBookingCreated()
	m.IncBookingCreated()
	m.IncSlotConflict()
	m.IncStatusTransition("confirmed", "completed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreatedTotal.WithLabelValues("beauty-booking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotConflictsTotal.WithLabelValues("beauty-booking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatusTransitionsTotal.WithLabelValues("beauty-booking", "confirmed", "completed")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingCreated()
		m.IncSlotConflict()
		m.IncStatusTransition("confirmed", "cancelled")
		m.IncNotification("booking.confirmed", "delivered")
	})
	assert.Equal(t, "", m.ServiceName())
}
