// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the reconciliation engine.
//
// # Available Jobs
//
// 1. ConsistencyAuditJob - Runs on a configurable schedule to audit every
// product's stored state against its ledger in report-only mode
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileAllHandler, schedule, logger, registry)
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
// The audit job uses a six-field cron expression taken from configuration,
// for example "0 */5 * * * *" for a sweep every five minutes. Every
// synchronous command already reconciles its product, so the sweep is a
// drift detector, not a processing loop, and does not need a tight schedule.
//
// # Error Handling
//
// - A failing sweep is logged and retried on the next tick
// - Per-product failures inside a sweep are counted in the sweep result and
// exported as metrics rather than aborting the run
package jobs
