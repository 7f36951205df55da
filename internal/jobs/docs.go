// Package jobs provides the scheduled maintenance tasks of the rental service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds resolution) and
// delegate all work to command handlers.
//
// # Available Jobs
//
//  1. PricingRuleExpiryJob - daily, deactivates ACTIVE time-bounded pricing
//     rules whose effective-to is before today
//  2. LeaseActivationJob - every 15 minutes, activates PENDING leases whose
//     start date has arrived
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireHandler, activateHandler, jobs.Schedules{}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failed passes are logged and retried on the next tick. Both passes are
// idempotent: a lease or rule already moved is skipped. A tick is skipped
// while the previous pass of the same job is still running.
package jobs
