package jobs

import (
	"fmt"
	"log/slog"

	"boxoffice/internal/core/application/usecases/commands"
	"boxoffice/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	holdExpirationJob *HoldExpirationJob
	abandonedOrderJob *AbandonedOrderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the hold store and the sweep handler as dependencies to wire up the
// job execution.
func NewJobManager(
	holds ports.SeatHoldStore,
	cancelAbandonedHandler commands.CancelAbandonedOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		holdExpirationJob: NewHoldExpirationJob(holds, logger),
		abandonedOrderJob: NewAbandonedOrderJob(cancelAbandonedHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.holdExpirationJob.Start(); err != nil {
		return fmt.Errorf("failed to start hold expiration job: %w", err)
	}

	if err := jm.abandonedOrderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.holdExpirationJob.Stop()
		return fmt.Errorf("failed to start abandoned order job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.abandonedOrderJob.Stop()
	jm.holdExpirationJob.Stop()
}
