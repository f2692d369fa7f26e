// Package jobs provides scheduled background tasks for the delivery workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. TrackingSyncJob - dispatches a syncTracking intent on every tick so the
// tracker follows the time elapsed since hand-off
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(controller, cfg.TrackingTickSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The default spec is "* * * * * *" (every second, seconds field enabled).
//
// # Error Handling
//
// - ErrWorkflowClosed is expected during shutdown and is not logged
// - Any other dispatch error is logged as it indicates a system issue
package jobs
