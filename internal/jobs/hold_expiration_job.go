package jobs

import (
	"context"
	"log/slog"

	"boxoffice/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// HoldExpirationJob periodically purges seat holds whose TTL has elapsed.
// Runs every 30 seconds so seats abandoned mid-selection return to the pool
// without waiting for the holder to come back.
type HoldExpirationJob struct {
	holds  ports.SeatHoldStore
	cron   *cron.Cron
	logger *slog.Logger
}

// NewHoldExpirationJob creates a new job for purging expired seat holds.
func NewHoldExpirationJob(holds ports.SeatHoldStore, logger *slog.Logger) *HoldExpirationJob {
	return &HoldExpirationJob{
		holds:  holds,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "hold_expiration_job"),
	}
}

// Start begins the hold expiration job.
func (j *HoldExpirationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		purged, err := j.holds.PurgeExpired(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Hold expiration sweep failed", "error", err)
			return
		}
		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged expired seat holds", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Hold expiration job started (running every 30 seconds)")
	return nil
}

// Stop stops the hold expiration job.
func (j *HoldExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Hold expiration job stopped")
}
