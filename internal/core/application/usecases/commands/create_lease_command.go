package commands

import (
	"errors"
	"fmt"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"
	"agrirent/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateLeaseFromOrderCommandIsNotConstructed = errors.New(
	"CreateLeaseFromOrderCommand must be created via NewCreateLeaseFromOrderCommand constructor",
)

// CreateLeaseFromOrderCommand converts an accepted LEASE order into a lease.
type CreateLeaseFromOrderCommand struct { //nolint:recvcheck //using for validation
	leaseID kernel.UUID
	orderID kernel.UUID
	actor   kernel.Actor
	deposit decimal.Decimal
	notes   string

	guard guard.ConstructorGuard
}

func NewCreateLeaseFromOrderCommand(
	leaseID, orderID kernel.UUID,
	actor kernel.Actor,
	deposit decimal.Decimal,
	notes string,
) (CreateLeaseFromOrderCommand, error) {
	var depositErr error
	if deposit.IsNegative() {
		depositErr = errs.NewValueIsInvalidErrorWithCause("deposit", fmt.Errorf("%s is negative", deposit))
	}
	if err := errors.Join(
		leaseID.Validate(),
		requireID("order id", orderID),
		actor.Validate(),
		depositErr,
	); err != nil {
		return CreateLeaseFromOrderCommand{}, err
	}

	return CreateLeaseFromOrderCommand{
		leaseID: leaseID,
		orderID: orderID,
		actor:   actor,
		deposit: deposit,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateLeaseFromOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateLeaseFromOrderCommandIsNotConstructed)
}

func (c CreateLeaseFromOrderCommand) LeaseID() kernel.UUID { return c.leaseID }

func (c CreateLeaseFromOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c CreateLeaseFromOrderCommand) Actor() kernel.Actor { return c.actor }

func (c CreateLeaseFromOrderCommand) Deposit() decimal.Decimal { return c.deposit }

func (c CreateLeaseFromOrderCommand) Notes() string { return c.notes }
