package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveProviderCall(t *testing.T) {
	m := New()

	m.ObserveProviderCall("current", "success", 10*time.Millisecond)
	m.ObserveProviderCall("current", "success", 20*time.Millisecond)
	m.ObserveProviderCall("forecast", "error", time.Second)

	assert.InDelta(t, 2, testutil.ToFloat64(m.providerRequests.WithLabelValues("current", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.providerRequests.WithLabelValues("forecast", "error")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.providerDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveProviderCall("current", "success", time.Millisecond)
	})
}
