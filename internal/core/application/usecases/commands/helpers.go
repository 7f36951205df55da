package commands

import (
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/pkg/errs"
)

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func requireAdmin(actor kernel.Actor, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewForbiddenError(action, actor.ID().String())
	}
	return nil
}

// authorizeLeaseActor admits administrators and the lease's intermediary.
func authorizeLeaseActor(l *lease.Lease, actor kernel.Actor, action string) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role() == kernel.RoleIntermediary && actor.ID().IsEqual(l.IntermediaryID()) {
		return nil
	}
	return errs.NewForbiddenError(action, actor.ID().String())
}
