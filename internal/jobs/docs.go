// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. AllocationJob - Runs daily at 07:00 in the configured timezone to
// allocate pending orders to checked-in agents.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(allocateOrdersHandler, location, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The allocation job catches every handler error so one failed run never
// unschedules the next. A run that finds another allocation already in
// progress is treated as a skip, not a failure.
package jobs
