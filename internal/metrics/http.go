package metrics

import (
	"strconv"
	"time"

	"github.com/go-authgate/authsync/internal/core"

	"github.com/gin-gonic/gin"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// HTTPMetricsMiddleware creates a Gin middleware that records HTTP metrics
func HTTPMetricsMiddleware(m core.Recorder) gin.HandlerFunc {
	// Type assert to concrete Metrics for Prometheus access
	metrics, ok := m.(*Metrics)
	if !ok {
		// NoopMetrics or unknown implementation
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		// Skip metrics endpoint to avoid self-recording
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		method := c.Request.Method
		path := normalizePath(c.FullPath()) // Use route pattern, not actual path
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
	}
}

// normalizePath converts the actual request path to route pattern
// Returns the route pattern (e.g., "/users/:login") or "unknown" if no route matched
func normalizePath(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return fullPath
}

// RecordAuthAttempt records an authentication attempt
func (m *Metrics) RecordAuthAttempt(backend string, success bool, duration time.Duration) {
	result := resultSuccess
	if !success {
		result = resultFailure
	}
	m.AuthAttemptsTotal.WithLabelValues(backend, result).Inc()
	m.AuthLoginDuration.WithLabelValues(backend).Observe(duration.Seconds())
}

// RecordExternalAPICall records backend login call duration
func (m *Metrics) RecordExternalAPICall(backend string, duration time.Duration) {
	m.AuthExternalAPIDuration.WithLabelValues(backend).Observe(duration.Seconds())
}

// RecordIdentityCreated records a user, role or grant created during sync
func (m *Metrics) RecordIdentityCreated(kind string) {
	m.IdentitiesCreatedTotal.WithLabelValues(kind).Inc()
}

// RecordSyncConflict records a duplicate create that was reconciled by re-query
func (m *Metrics) RecordSyncConflict(kind string) {
	m.SyncConflictsTotal.WithLabelValues(kind).Inc()
}

// RecordSyncDuration records the time spent synchronizing one login
func (m *Metrics) RecordSyncDuration(duration time.Duration) {
	m.SyncDuration.Observe(duration.Seconds())
}

// SetIdentityCount sets the stored record count for a kind (for periodic updates)
func (m *Metrics) SetIdentityCount(kind string, count int64) {
	m.IdentitiesStored.WithLabelValues(kind).Set(float64(count))
}

// RecordDatabaseQueryError records a database query error during metric collection
func (m *Metrics) RecordDatabaseQueryError(operation string) {
	m.DatabaseQueryErrorsTotal.WithLabelValues(operation).Inc()
}
