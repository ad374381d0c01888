package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UnknownOlympus/asclepius/internal/lib/logger/sl"
	"github.com/UnknownOlympus/asclepius/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMiddleware_PanicIsCounted(t *testing.T) {
	t.Parallel()

	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) {
		panic("template exploded")
	})
	handler := withMiddleware(sl.Discard(), appMetrics, mux)

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.InDelta(t, 1.0,
		testutil.ToFloat64(appMetrics.Requests.WithLabelValues("GET /boom", "500")), 0.001)
	assert.Equal(t, 1, testutil.CollectAndCount(appMetrics.RequestDuration))
}
