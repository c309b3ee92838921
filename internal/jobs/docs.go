// Package jobs provides scheduled background tasks for the care plan service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the route lifecycle engine.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to drain pending outbox entries to
// the event publisher, marking each entry processed or failed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(relayHandler, batchSize, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Delivery Semantics
//
// The relay publishes an entry before marking it processed, so a crash
// between the two steps leads to redelivery on the next pass. Consumers
// must deduplicate on the entry identifier.
package jobs
