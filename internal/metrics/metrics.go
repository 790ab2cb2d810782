package metrics

import (
	"sync"

	"github.com/go-authgate/authsync/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ensure Metrics implements core.Recorder interface at compile time
var _ core.Recorder = (*Metrics)(nil)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// Authentication Metrics
	AuthAttemptsTotal       *prometheus.CounterVec
	AuthLoginDuration       *prometheus.HistogramVec
	AuthExternalAPIDuration *prometheus.HistogramVec

	// Identity Sync Metrics
	IdentitiesCreatedTotal *prometheus.CounterVec
	SyncConflictsTotal     *prometheus.CounterVec
	SyncDuration           prometheus.Histogram
	IdentitiesStored       *prometheus.GaugeVec

	// HTTP Request Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Database Query Metrics
	DatabaseQueryErrorsTotal *prometheus.CounterVec
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Init initializes metrics based on enabled flag
// If enabled=true, returns Prometheus-based Metrics
// If enabled=false, returns NoopMetrics (zero overhead)
// Uses sync.Once to ensure Prometheus metrics are only registered once
func Init(enabled bool) core.Recorder {
	if !enabled {
		return NewNoopMetrics()
	}

	once.Do(func() {
		defaultMetrics = initMetrics()
	})
	return defaultMetrics
}

// initMetrics creates and registers all Prometheus metrics
func initMetrics() *Metrics {
	m := &Metrics{
		// Authentication Metrics
		AuthAttemptsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_attempts_total",
				Help: "Total number of authentication attempts",
			},
			[]string{"backend", "result"}, // backend: file, http_api; result: success, failure
		),
		AuthLoginDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auth_login_duration_seconds",
				Help:    "Time taken to complete an authentication attempt",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"backend"},
		),
		AuthExternalAPIDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auth_external_api_duration_seconds",
				Help:    "Time taken for backend login calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"backend"},
		),

		// Identity Sync Metrics
		IdentitiesCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "identity_sync_created_total",
				Help: "Total number of identity records created by synchronization",
			},
			[]string{"kind"}, // user, role, grant
		),
		SyncConflictsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "identity_sync_conflicts_total",
				Help: "Total number of concurrent create conflicts resolved by re-query",
			},
			[]string{"kind"}, // user, role, grant
		),
		SyncDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "identity_sync_duration_seconds",
				Help:    "Time taken to synchronize a user and its roles",
				Buckets: prometheus.DefBuckets,
			},
		),
		IdentitiesStored: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "identity_records",
				Help: "Current number of stored identity records",
			},
			[]string{"kind"}, // user, role, grant
		),

		// HTTP Request Metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request latency in seconds",
				Buckets: []float64{
					0.001,
					0.005,
					0.010,
					0.025,
					0.050,
					0.100,
					0.250,
					0.500,
					1.0,
					2.5,
					5.0,
					10.0,
				},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Current number of HTTP requests being served",
			},
		),

		// Database Query Metrics
		DatabaseQueryErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "database_query_errors_total",
				Help: "Total number of database query errors during metric collection",
			},
			[]string{"operation"}, // count_users, count_roles, count_grants
		),
	}

	return m
}

// String formats the metrics for logging
func (m *Metrics) String() string {
	return "Metrics{Auth: enabled, Sync: enabled, HTTP: enabled}"
}
