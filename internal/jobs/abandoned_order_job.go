package jobs

import (
	"context"
	"log/slog"

	"boxoffice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AbandonedOrderJob manages the scheduled cancellation of orders that were
// submitted but never resolved. Runs every minute to sweep sessions whose
// current order has been stuck in the pipeline past the configured age.
type AbandonedOrderJob struct {
	handler commands.CancelAbandonedOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAbandonedOrderJob creates a new job for cancelling abandoned orders.
// Uses CancelAbandonedOrdersCommandHandler to run the sweep every minute.
func NewAbandonedOrderJob(handler commands.CancelAbandonedOrdersCommandHandler, logger *slog.Logger) *AbandonedOrderJob {
	return &AbandonedOrderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "abandoned_order_job"),
	}
}

// Start begins the abandoned order job to run every minute.
func (j *AbandonedOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCancelAbandonedOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Abandoned order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned order job started (running every minute)")
	return nil
}

// Stop stops the abandoned order job.
func (j *AbandonedOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Abandoned order job stopped")
}
