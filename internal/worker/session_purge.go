package worker

import (
	"context"

	"github.com/osse101/Stockroom_Go/internal/auth"
	"github.com/osse101/Stockroom_Go/internal/logger"
)

// SessionPurgeJob deletes expired session rows. Expired sessions are already
// rejected at login time; the purge only keeps the table from growing.
type SessionPurgeJob struct {
	authService auth.Service
}

// NewSessionPurgeJob creates a SessionPurgeJob backed by the auth service.
func NewSessionPurgeJob(authService auth.Service) *SessionPurgeJob {
	return &SessionPurgeJob{authService: authService}
}

// Process implements Job.
func (j *SessionPurgeJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if err := j.authService.PurgeExpiredSessions(ctx); err != nil {
		log.Error(LogMsgSessionPurgeFailed, "error", err)
		return err
	}
	log.Debug(LogMsgSessionPurgeCompleted)
	return nil
}
