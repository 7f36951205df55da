package jobs

import (
	"context"
	"log/slog"

	"agrirent/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPricingRuleExpirySpec runs daily at 00:05.
const DefaultPricingRuleExpirySpec = "0 5 0 * * *"

type pricingRuleExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePricingRulesCommand) (int, error)
}

// PricingRuleExpiryJob deactivates time-bounded pricing rules whose window
// ended before today.
type PricingRuleExpiryJob struct {
	handler pricingRuleExpirer
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewPricingRuleExpiryJob(handler pricingRuleExpirer, spec string, logger *slog.Logger) *PricingRuleExpiryJob {
	if spec == "" {
		spec = DefaultPricingRuleExpirySpec
	}
	return &PricingRuleExpiryJob{
		handler: handler,
		spec:    spec,
		cron:    newCron(),
		logger:  logger.With("component", "pricing_rule_expiry_job"),
	}
}

func (j *PricingRuleExpiryJob) Run(ctx context.Context) {
	expired, err := j.handler.Handle(ctx, commands.NewExpirePricingRulesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pricing rule expiry failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Pricing rules expired", "count", expired)
}

func (j *PricingRuleExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pricing rule expiry job started", "schedule", j.spec)
	return nil
}

func (j *PricingRuleExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pricing rule expiry job stopped")
}
