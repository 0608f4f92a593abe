// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. OverdueMovesJob - Runs every minute to surface moves still open past
// their scheduled date so a dispatcher can chase or cancel them
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueMovesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The overdue sweep uses the cron expression "0 * * * * *", once a minute.
// Scheduled dates are day-granular, so a tighter cadence buys nothing.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - An empty sweep is the normal case and logs nothing
// - Failed job starts will stop any already running jobs
package jobs
