package commands

import (
	"context"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/core/ports"
)

// CompleteLeaseCommandHandler ends a lease and frees its device.
// Administrators only.
type CompleteLeaseCommandHandler struct {
	uowFactory LeaseUoWFactory
	clock      ports.Clock
}

func NewCompleteLeaseCommandHandler(uowFactory LeaseUoWFactory, clock ports.Clock) CompleteLeaseCommandHandler {
	return CompleteLeaseCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CompleteLeaseCommandHandler) Handle(ctx context.Context, cmd CompleteLeaseCommand) (*lease.Lease, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireAdmin(cmd.Actor(), "complete lease"); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	leaseRepo := uow.LeaseRepository()
	l, err := leaseRepo.Get(ctx, cmd.LeaseID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	end := kernel.DateOf(now)
	if cmd.endDate != nil {
		end = *cmd.endDate
	}
	if err = l.Complete(end, cmd.Actor().ID(), cmd.Note(), now); err != nil {
		return nil, err
	}

	deviceRepo := uow.DeviceRepository()
	d, err := deviceRepo.Get(ctx, l.DeviceID())
	if err != nil {
		return nil, err
	}
	d.DetachLease(l.ID())

	if err = leaseRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	if err = deviceRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
