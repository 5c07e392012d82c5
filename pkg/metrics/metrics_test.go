package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveBooking(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveBooking(OutcomeCommitted)
	m.ObserveBooking(OutcomeConflict)
	m.ObserveBooking(OutcomeConflict)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingOutcomes.WithLabelValues(OutcomeCommitted)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingOutcomes.WithLabelValues(OutcomeConflict)))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveBooking(OutcomeBackend)
		m.ObserveRetry("serializable")
	})
}
