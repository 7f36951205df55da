package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron specs (with seconds) of the jobs. Empty specs fall
// back to the job defaults.
type Schedules struct {
	PricingRuleExpiry string
	LeaseActivation   string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	pricingRuleExpiryJob *PricingRuleExpiryJob
	leaseActivationJob   *LeaseActivationJob
}

func NewJobManager(
	expireRulesHandler pricingRuleExpirer,
	activateLeasesHandler leaseActivator,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pricingRuleExpiryJob: NewPricingRuleExpiryJob(expireRulesHandler, schedules.PricingRuleExpiry, logger),
		leaseActivationJob:   NewLeaseActivationJob(activateLeasesHandler, schedules.LeaseActivation, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pricingRuleExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start pricing rule expiry job: %w", err)
	}

	if err := jm.leaseActivationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pricingRuleExpiryJob.Stop()
		return fmt.Errorf("failed to start lease activation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running passes.
func (jm *JobManager) StopAll() {
	jm.leaseActivationJob.Stop()
	jm.pricingRuleExpiryJob.Stop()
}
