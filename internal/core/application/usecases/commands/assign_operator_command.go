package commands

import (
	"errors"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/pkg/guard"
)

var ErrAssignOperatorCommandIsNotConstructed = errors.New(
	"AssignOperatorCommand must be created via NewAssignOperatorCommand constructor",
)

// AssignOperatorCommand adds an operator to a lease.
type AssignOperatorCommand struct { //nolint:recvcheck //using for validation
	leaseID    kernel.UUID
	operatorID kernel.UUID
	role       lease.OperatorRole
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

func NewAssignOperatorCommand(
	leaseID, operatorID kernel.UUID,
	role lease.OperatorRole,
	actor kernel.Actor,
) (AssignOperatorCommand, error) {
	if err := errors.Join(
		requireID("lease id", leaseID),
		requireID("operator id", operatorID),
		role.Validate(),
		actor.Validate(),
	); err != nil {
		return AssignOperatorCommand{}, err
	}
	return AssignOperatorCommand{
		leaseID:    leaseID,
		operatorID: operatorID,
		role:       role,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignOperatorCommand) Validate() error {
	return c.guard.Validate(ErrAssignOperatorCommandIsNotConstructed)
}

func (c AssignOperatorCommand) LeaseID() kernel.UUID { return c.leaseID }

func (c AssignOperatorCommand) OperatorID() kernel.UUID { return c.operatorID }

func (c AssignOperatorCommand) Role() lease.OperatorRole { return c.role }

func (c AssignOperatorCommand) Actor() kernel.Actor { return c.actor }
