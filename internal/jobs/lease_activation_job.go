package jobs

import (
	"context"
	"log/slog"

	"agrirent/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultLeaseActivationSpec runs at the top of every quarter hour.
const DefaultLeaseActivationSpec = "0 */15 * * * *"

type leaseActivator interface {
	Handle(ctx context.Context, cmd commands.ActivateLeasesCommand) (int, error)
}

// LeaseActivationJob moves PENDING leases whose start date has arrived to ACTIVE.
type LeaseActivationJob struct {
	handler leaseActivator
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewLeaseActivationJob(handler leaseActivator, spec string, logger *slog.Logger) *LeaseActivationJob {
	if spec == "" {
		spec = DefaultLeaseActivationSpec
	}
	return &LeaseActivationJob{
		handler: handler,
		spec:    spec,
		cron:    newCron(),
		logger:  logger.With("component", "lease_activation_job"),
	}
}

// Run performs one activation pass.
func (j *LeaseActivationJob) Run(ctx context.Context) {
	activated, err := j.handler.Handle(ctx, commands.NewActivateLeasesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Lease activation failed", "activated", activated, "error", err)
		return
	}
	if activated > 0 {
		j.logger.InfoContext(ctx, "Leases activated", "count", activated)
	}
}

func (j *LeaseActivationJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Lease activation job started", "schedule", j.spec)
	return nil
}

// Stop waits for a running pass to finish.
func (j *LeaseActivationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Lease activation job stopped")
}

// newCron builds a seconds-resolution scheduler that skips a tick while the
// previous run of the same job is still going.
func newCron() *cron.Cron {
	return cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}
