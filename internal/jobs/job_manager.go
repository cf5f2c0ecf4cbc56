package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	consistencyAuditJob *ConsistencyAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	reconcileAllHandler commands.ReconcileAllProductsCommandHandler,
	auditSchedule string,
	logger *slog.Logger,
	registry *metrics.Registry,
) *JobManager {
	return &JobManager{
		consistencyAuditJob: NewConsistencyAuditJob(reconcileAllHandler, auditSchedule, logger, registry),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.consistencyAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start consistency audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.consistencyAuditJob.Stop()
}
