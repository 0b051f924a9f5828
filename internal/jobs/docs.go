// Package jobs provides scheduled background tasks for the parcel tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. OverdueWatchJob - Runs every minute to detect parcels whose delivery
// deadline has passed while they are still in flight
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueHandler, logger)
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
// The overdue watch uses the cron expression "* * * * *", once per minute.
// Detection is read-only: the job logs what it finds and leaves parcel
// state untouched, so a missed tick loses nothing.
//
// # Error Handling
//
// Scan failures are logged and the job keeps running; the next tick
// retries with a fresh cutoff.
package jobs
