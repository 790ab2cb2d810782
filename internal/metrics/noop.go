package metrics

import (
	"time"

	"github.com/go-authgate/authsync/internal/core"
)

// NoopMetrics is a no-operation implementation of core.Recorder
// All methods are empty and do nothing, providing zero overhead when metrics are disabled
type NoopMetrics struct{}

// Ensure NoopMetrics implements core.Recorder interface at compile time
var _ core.Recorder = (*NoopMetrics)(nil)

// NewNoopMetrics creates a new no-operation metrics recorder
func NewNoopMetrics() core.Recorder {
	return &NoopMetrics{}
}

// Authentication - noop implementations
func (n *NoopMetrics) RecordAuthAttempt(backend string, success bool, duration time.Duration) {}
func (n *NoopMetrics) RecordExternalAPICall(backend string, duration time.Duration)           {}

// Identity synchronization - noop implementations
func (n *NoopMetrics) RecordIdentityCreated(kind string)         {}
func (n *NoopMetrics) RecordSyncConflict(kind string)            {}
func (n *NoopMetrics) RecordSyncDuration(duration time.Duration) {}

// Gauges - noop implementations
func (n *NoopMetrics) SetIdentityCount(kind string, count int64) {}
func (n *NoopMetrics) RecordDatabaseQueryError(operation string) {}
