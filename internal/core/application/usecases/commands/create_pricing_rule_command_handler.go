package commands

import (
	"context"

	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/core/domain/services"
	"agrirent/internal/core/ports"
	"agrirent/internal/pkg/errs"
)

// CreatePricingRuleCommandHandler adds a rule to a (category, location) scope.
//
// A scope has at most one ACTIVE standing rule, and ACTIVE time-bounded rules
// of a scope never overlap. Violations return *errs.ConflictError carrying the
// ids of the rules in the way.
type CreatePricingRuleCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      ports.Clock
}

func NewCreatePricingRuleCommandHandler(uowFactory CatalogUoWFactory, clock ports.Clock) CreatePricingRuleCommandHandler {
	return CreatePricingRuleCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreatePricingRuleCommandHandler) Handle(ctx context.Context, cmd CreatePricingRuleCommand) (*pricing.Rule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireAdmin(cmd.Actor(), "create pricing rule"); err != nil {
		return nil, err
	}

	actorID := cmd.Actor().ID()
	rule, err := pricing.NewRule(
		cmd.RuleID(),
		cmd.CategoryID(),
		cmd.Location(),
		cmd.Rates(),
		cmd.EffectiveFrom(),
		cmd.EffectiveTo(),
		&actorID,
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PricingRuleRepository()
	resolver, err := services.NewPricingResolver(repo)
	if err != nil {
		return nil, err
	}

	if rule.IsStanding() {
		existing, err := resolver.GetDefaultRule(ctx, rule.CategoryID(), rule.Location())
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errs.NewConflictError("standing pricing rule", existing.ID().String())
		}
	} else {
		conflicts, err := resolver.CheckForConflicts(ctx, rule)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			ids := make([]string, 0, len(conflicts))
			for _, c := range conflicts {
				ids = append(ids, c.ID().String())
			}
			return nil, errs.NewConflictError("overlapping pricing rule", ids...)
		}
	}

	if err = repo.Add(ctx, rule); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rule, nil
}
