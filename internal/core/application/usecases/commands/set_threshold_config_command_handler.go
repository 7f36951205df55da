package commands

import (
	"context"
	"errors"

	"agrirent/internal/core/domain/model/threshold"
	"agrirent/internal/core/ports"
	"agrirent/internal/pkg/errs"
)

// SetThresholdConfigCommandHandler replaces the ACTIVE threshold config of a
// category: the current one, if any, is deactivated and the new one added in
// the same transaction.
type SetThresholdConfigCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      ports.Clock
}

func NewSetThresholdConfigCommandHandler(uowFactory CatalogUoWFactory, clock ports.Clock) SetThresholdConfigCommandHandler {
	return SetThresholdConfigCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h SetThresholdConfigCommandHandler) Handle(ctx context.Context, cmd SetThresholdConfigCommand) (*threshold.Config, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireAdmin(cmd.Actor(), "set threshold config"); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	actorID := cmd.Actor().ID()
	cfg, err := threshold.NewConfig(
		cmd.ConfigID(),
		cmd.CategoryID(),
		cmd.MaxRentalHours(),
		cmd.MaxRentalArea(),
		cmd.EffectiveFrom(),
		cmd.EffectiveTo(),
		&actorID,
		now,
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

	repo := uow.ThresholdConfigRepository()
	current, err := repo.GetActiveByCategory(ctx, cmd.CategoryID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return nil, err
	default:
		current.Deactivate(now)
		if err = repo.Update(ctx, current); err != nil {
			return nil, err
		}
	}

	if err = repo.Add(ctx, cfg); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cfg, nil
}
