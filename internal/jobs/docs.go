// Package jobs provides scheduled background tasks for the box office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping required by the ticket sales flow.
//
// # Available Jobs
//
// 1. HoldExpirationJob - Runs every 30 seconds to purge seat holds whose TTL elapsed
// 2. AbandonedOrderJob - Runs every minute to cancel orders stuck mid-pipeline past the configured age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(holdStore, cancelAbandonedHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and keep their schedule; a failed sweep is retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
