// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderBacklogWatchJob - Periodically reports orders that have not yet
// completed, grouped by status, so operators can spot a stalling kitchen.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getUncompletedOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The backlog watch job logs every failure; a broken report query indicates
// a system issue rather than an expected business scenario.
package jobs
