package commands

import (
	"context"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/ports"
)

const expiryNote = "effective window ended"

// ExpirePricingRulesCommandHandler deactivates every ACTIVE time-bounded rule
// whose effective-to lies before today, in one transaction. It returns the
// number of rules deactivated.
type ExpirePricingRulesCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      ports.Clock
}

func NewExpirePricingRulesCommandHandler(uowFactory CatalogUoWFactory, clock ports.Clock) ExpirePricingRulesCommandHandler {
	return ExpirePricingRulesCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h ExpirePricingRulesCommandHandler) Handle(ctx context.Context, cmd ExpirePricingRulesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	repo := uow.PricingRuleRepository()
	expired, err := repo.ListExpired(ctx, kernel.DateOf(now))
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	for _, rule := range expired {
		if err = rule.Deactivate(nil, expiryNote, now); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, rule); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(expired), nil
}
