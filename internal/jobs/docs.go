// Package jobs provides scheduled background tasks for the back-office service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// OutboxRelayJob drains the outbox table: every tick it runs RelayOutboxCommand,
// which publishes pending domain events to RabbitMQ and marks them published or
// failed. Overlapping ticks are skipped.
//
// # Usage
//
//	relay := jobs.NewOutboxRelayJob(relayHandler, "*/2 * * * * *", 100, logger)
//	jobManager := jobs.NewJobManager(relay)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Storage failures are logged at error level. Events the broker rejected are
// logged as a warning and retried on later ticks until they run out of attempts.
package jobs
