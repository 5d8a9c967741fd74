// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// StatusReconciliationJob runs ReconcileDeliveryStatusesCommand on a schedule
// to bring deliveries whose status drifted from their order's back in step.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, cfg.ReconcileSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six field cron expressions with a leading seconds field. The
// default, "0 * * * * *", runs once a minute. A pass still in progress when
// the next one is due causes that next pass to be skipped.
//
// # Error Handling
//
// Failed passes are logged and retried on the next tick. A schedule that cannot
// be parsed fails StartAll, which stops any job already started.
package jobs
