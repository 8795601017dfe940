// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// OutboxRelayJob publishes pending order events from the outbox table to the
// message broker. The schedule and batch size come from configuration; the
// default schedule is "*/5 * * * * *".
//
// # Usage
//
//	relay := jobs.NewOutboxRelayJob(relayHandler, cfg.OutboxRelaySchedule, cfg.OutboxRelayBatch, logger)
//	jobManager := jobs.NewJobManager(relay)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failed runs are logged and retried on the next tick. Overlapping runs are
// skipped rather than queued.
package jobs
