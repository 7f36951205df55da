package commands

import (
	"errors"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/guard"
)

var ErrCompleteLeaseCommandIsNotConstructed = errors.New(
	"CompleteLeaseCommand must be created via NewCompleteLeaseCommand constructor",
)

// CompleteLeaseCommand ends a lease. A nil end date means today.
type CompleteLeaseCommand struct { //nolint:recvcheck //using for validation
	leaseID kernel.UUID
	actor   kernel.Actor
	endDate *kernel.Date
	note    string

	guard guard.ConstructorGuard
}

func NewCompleteLeaseCommand(
	leaseID kernel.UUID,
	actor kernel.Actor,
	endDate *kernel.Date,
	note string,
) (CompleteLeaseCommand, error) {
	if err := errors.Join(requireID("lease id", leaseID), actor.Validate()); err != nil {
		return CompleteLeaseCommand{}, err
	}
	cmd := CompleteLeaseCommand{leaseID: leaseID, actor: actor, note: note, guard: guard.NewConstructorGuard()}
	if endDate != nil {
		d := *endDate
		cmd.endDate = &d
	}
	return cmd, nil
}

func (c CompleteLeaseCommand) Validate() error {
	return c.guard.Validate(ErrCompleteLeaseCommandIsNotConstructed)
}

func (c CompleteLeaseCommand) LeaseID() kernel.UUID { return c.leaseID }

func (c CompleteLeaseCommand) Actor() kernel.Actor { return c.actor }

func (c CompleteLeaseCommand) Note() string { return c.note }
