package metrics_test

import (
	"testing"

	"github.com/UnknownOlympus/asclepius/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	appMetrics := metrics.NewMetrics(reg)

	require.NotNil(t, appMetrics)
	assert.Equal(t, 2, testutil.CollectAndCount(appMetrics.Renders))
}

func TestNewMetrics_DoubleRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = metrics.NewMetrics(reg)

	assert.Panics(t, func() {
		_ = metrics.NewMetrics(reg)
	})
}

func TestRosterRecordsGauge(t *testing.T) {
	t.Parallel()

	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	appMetrics.RosterRecords.WithLabelValues("doctor").Set(4)

	assert.InDelta(t, 4.0, testutil.ToFloat64(appMetrics.RosterRecords.WithLabelValues("doctor")), 0.001)
}
