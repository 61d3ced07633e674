// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// OrderProcessingJob takes the oldest pending order on every tick and looks up
// the shortest route from the depot to the customer location. It only runs
// when DISPATCH_SCHEDULE is configured.
//
// # Usage
//
//	job := jobs.NewOrderProcessingJob(processHandler, shortestRouteHandler, depot, "@every 5s", logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An empty queue and an unreachable customer are normal outcomes and are not
// reported as job failures.
package jobs
