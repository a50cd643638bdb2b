// Package jobs provides scheduled background tasks for the order state engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderReconciliationJob - Runs every minute to re-derive totals and
// states for orders whose rows changed recently, repairing drift caused by
// out-of-band data changes.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderRepo, recalculateHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Per-order failures are logged and skipped; one broken order never stops a
// reconciliation pass. Orders deleted between listing and recalculation are
// ignored.
package jobs
