package commands

import (
	"context"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/ports"
)

// ActivateLeasesCommandHandler moves due PENDING leases to ACTIVE. Each lease
// is activated in its own transaction so one conflict does not hold back the
// others. It returns the number of activated leases and the first error.
type ActivateLeasesCommandHandler struct {
	uowFactory LeaseUoWFactory
	clock      ports.Clock
}

func NewActivateLeasesCommandHandler(uowFactory LeaseUoWFactory, clock ports.Clock) ActivateLeasesCommandHandler {
	return ActivateLeasesCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h ActivateLeasesCommandHandler) Handle(ctx context.Context, cmd ActivateLeasesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.clock.Now()
	today := kernel.DateOf(now)

	due, err := h.listDue(ctx, today)
	if err != nil {
		return 0, err
	}

	var firstErr error
	activated := 0
	for _, id := range due {
		if err = h.activate(ctx, id, today); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		activated++
	}
	return activated, firstErr
}

func (h ActivateLeasesCommandHandler) listDue(ctx context.Context, today kernel.Date) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	leases, err := uow.LeaseRepository().ListPendingStartingBy(ctx, today)
	if err != nil {
		return nil, err
	}
	ids := make([]kernel.UUID, 0, len(leases))
	for _, l := range leases {
		ids = append(ids, l.ID())
	}
	return ids, nil
}

func (h ActivateLeasesCommandHandler) activate(ctx context.Context, id kernel.UUID, today kernel.Date) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LeaseRepository()
	l, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = l.Activate(today, h.clock.Now()); err != nil {
		return err
	}
	if err = repo.Update(ctx, l); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
