package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the dashboard.
// It includes counters for HTTP requests, dashboard renders and UI state
// transitions, a histogram for request and roster load duration,
// and a gauge with the roster headcount per role.
type Metrics struct {
	Requests         *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	Renders          *prometheus.CounterVec
	StateTransitions *prometheus.CounterVec
	RosterLoad       *prometheus.HistogramVec
	RosterRecords    *prometheus.GaugeVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "asclepius_http_requests_total",
			Help: "Total HTTP requests served, by route pattern and status code.",
		}, []string{"route", "status"}),
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "asclepius_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		Renders: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "asclepius_dashboard_renders_total",
			Help: "Total dashboard views built, by surface (web, tui, export) and interaction mode.",
		}, []string{"surface", "mode"}),
		StateTransitions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "asclepius_state_transitions_total",
			Help: "Total UI state transitions applied, by event kind.",
		}, []string{"event"}),
		RosterLoad: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "asclepius_roster_load_duration_seconds",
			Help:    "Duration of roster loads.",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}), // source: 'fixture', 'file'
		RosterRecords: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "asclepius_roster_records",
			Help: "Number of staff records in the last loaded roster, by role.",
		}, []string{"role"}),
	}

	metrics.Renders.WithLabelValues("web", "popup")
	metrics.Renders.WithLabelValues("web", "inline")

	return metrics
}
