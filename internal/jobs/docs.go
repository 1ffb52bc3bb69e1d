// Package jobs provides scheduled background tasks for the order tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// StatusAdvancementJob runs once per day in the business timezone and moves
// every open order forward through the fulfillment pipeline according to the
// elapsed business days since its last update.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(advanceStatusesHandler, "0 7 * * *", loc, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed advancement pass is logged and retried at the next scheduled run;
// per-order failures inside a pass are skipped by the command handler so a
// single bad record never stalls the batch.
package jobs
