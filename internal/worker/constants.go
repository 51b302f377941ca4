package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Session Purge
// ============================================================================

// Log messages for session purge job runs
const (
	LogMsgSessionPurgeCompleted = "Expired sessions purged"
	LogMsgSessionPurgeFailed    = "Session purge failed"
)

// Test constants
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100
)
