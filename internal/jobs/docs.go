// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order pipeline.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish recorded order events from
// the transactional outbox to the message bus
//
// # Usage
//
// Background workers are managed through JobManager, which also accepts the
// message consumers since they share the same Start/Stop lifecycle:
//
//	jobManager := jobs.NewJobManager(relayJob, orderConsumer, kitchenConsumer, menuConsumer)
//
//	// Start all workers
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all workers when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay job uses the cron expression "* * * * * *", which means it runs
// every second. This keeps the delay between committing an order event and
// publishing it to the bus within roughly one second.
//
// # Error Handling
//
// - The relay job ignores the empty-outbox state (nothing to publish)
// - Publish failures are logged and retried on the next pass
// - Failed worker starts will stop any already running workers
package jobs
