package commands

import (
	"context"

	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/core/ports"
)

type DeactivatePricingRuleCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      ports.Clock
}

func NewDeactivatePricingRuleCommandHandler(uowFactory CatalogUoWFactory, clock ports.Clock) DeactivatePricingRuleCommandHandler {
	return DeactivatePricingRuleCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h DeactivatePricingRuleCommandHandler) Handle(ctx context.Context, cmd DeactivatePricingRuleCommand) (*pricing.Rule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireAdmin(cmd.Actor(), "deactivate pricing rule"); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PricingRuleRepository()
	rule, err := repo.Get(ctx, cmd.RuleID())
	if err != nil {
		return nil, err
	}

	actorID := cmd.Actor().ID()
	if err = rule.Deactivate(&actorID, cmd.Note(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, rule); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rule, nil
}
