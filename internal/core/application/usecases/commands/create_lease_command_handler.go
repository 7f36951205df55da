package commands

import (
	"context"
	"fmt"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/core/domain/model/order"
	"agrirent/internal/core/domain/services"
	"agrirent/internal/core/ports"
	"agrirent/internal/pkg/errs"
)

// CreateLeaseFromOrderCommandHandler converts an accepted LEASE order into a
// lease and points the device at it, in one transaction.
//
// Preconditions (PreconditionFailed otherwise):
//   - the order kind is LEASE and its status is ACCEPTED
//   - no lease exists yet for the order
//   - the order carries requested hours or area
//   - the device holds no other current lease
//
// The lease goes to the order's requester, starts on the order's start date
// and is priced with the rule in force on that date.
type CreateLeaseFromOrderCommandHandler struct {
	uowFactory LeaseUoWFactory
	clock      ports.Clock
}

func NewCreateLeaseFromOrderCommandHandler(uowFactory LeaseUoWFactory, clock ports.Clock) CreateLeaseFromOrderCommandHandler {
	return CreateLeaseFromOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreateLeaseFromOrderCommandHandler) Handle(ctx context.Context, cmd CreateLeaseFromOrderCommand) (*lease.Lease, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireAdmin(cmd.Actor(), "create lease"); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if o.Kind() != order.Lease || o.Status() != order.Accepted {
		return nil, errs.NewPreconditionFailedError(fmt.Sprintf(
			"order %s is a %s order in %s, a lease needs an ACCEPTED LEASE order", o.ID(), o.Kind(), o.Status()))
	}

	leaseRepo := uow.LeaseRepository()
	exists, err := leaseRepo.ExistsForOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewPreconditionFailedError(fmt.Sprintf("order %s already has a lease", o.ID()))
	}

	usage := o.Usage()
	commitment, err := lease.CommitmentFromUsage(usage.Hours(), usage.Area())
	if err != nil {
		return nil, errs.NewPreconditionFailedErrorWithCause("order has no commitment", err)
	}

	deviceRepo := uow.DeviceRepository()
	d, err := deviceRepo.Get(ctx, o.DeviceID())
	if err != nil {
		return nil, err
	}

	pricer, err := services.NewPricingResolver(uow.PricingRuleRepository())
	if err != nil {
		return nil, err
	}
	start := o.Period().Start()
	price, err := pricer.EstimatePrice(ctx, d.CategoryID(), d.Location(), start, commitment)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	l, err := lease.NewLease(
		cmd.LeaseID(),
		o.ID(),
		d.ID(),
		o.Requester().ID(),
		commitment,
		price,
		cmd.Deposit(),
		start,
		cmd.Actor().ID(),
		cmd.Notes(),
		kernel.DateOf(now),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = d.AttachLease(l.ID()); err != nil {
		return nil, err
	}

	if err = leaseRepo.Add(ctx, l); err != nil {
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
