package commands

import (
	"context"

	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/core/ports"
)

// LeasePolicy holds the configurable lease rules.
type LeasePolicy struct {
	// EnforceSinglePrimaryOperator rejects a second PRIMARY operator on a
	// lease. When false a second PRIMARY is accepted and the earliest one
	// keeps metrics attribution.
	EnforceSinglePrimaryOperator bool
}

// AssignOperatorCommandHandler appends an operator assignment to a lease.
// Administrators and the lease's intermediary may assign.
//
// Errors:
//   - *errs.ObjectNotFoundError when the lease or the operator is missing
//   - lease.ErrLeaseIsCompleted for a completed lease
//   - lease.ErrPrimaryOperatorTaken when the single PRIMARY policy is on
type AssignOperatorCommandHandler struct {
	uowFactory LeaseUoWFactory
	clock      ports.Clock
	policy     LeasePolicy
}

func NewAssignOperatorCommandHandler(
	uowFactory LeaseUoWFactory,
	clock ports.Clock,
	policy LeasePolicy,
) AssignOperatorCommandHandler {
	return AssignOperatorCommandHandler{uowFactory: uowFactory, clock: clock, policy: policy}
}

func (h AssignOperatorCommandHandler) Handle(ctx context.Context, cmd AssignOperatorCommand) (*lease.Lease, error) {
	if err := cmd.Validate(); err != nil {
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
	if err = authorizeLeaseActor(l, cmd.Actor(), "assign operator"); err != nil {
		return nil, err
	}

	if _, err = uow.OperatorRepository().Get(ctx, cmd.OperatorID()); err != nil {
		return nil, err
	}

	actorID := cmd.Actor().ID()
	if err = l.AssignOperator(cmd.OperatorID(), cmd.Role(), h.policy.EnforceSinglePrimaryOperator, &actorID, h.clock.Now()); err != nil {
		return nil, err
	}

	if err = leaseRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
