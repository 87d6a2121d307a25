// Package jobs provides scheduled background tasks for the restaurant service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(jobs.NewAutosaveJob(state, cfg.AutosaveSchedule, logger))
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// AutosaveJob re-saves orders, the completion archive, the menu and the shop
// profile on a schedule. Change-driven saves are fire-and-forget, so this is
// the path by which a failed write eventually lands. Failures are logged as
// warnings and never stop the schedule.
package jobs
