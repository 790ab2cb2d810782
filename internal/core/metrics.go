package core

import "time"

// Recorder defines the interface for recording application metrics.
// Implementations include Metrics (Prometheus-based) and NoopMetrics (no-op).
type Recorder interface {
	// Authentication
	RecordAuthAttempt(backend string, success bool, duration time.Duration)
	RecordExternalAPICall(backend string, duration time.Duration)

	// Identity synchronization
	RecordIdentityCreated(kind string)
	RecordSyncConflict(kind string)
	RecordSyncDuration(duration time.Duration)

	// Gauges
	SetIdentityCount(kind string, count int64)
	RecordDatabaseQueryError(operation string)
}
