package commands

import (
	"errors"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/guard"
)

var ErrAttachLeaseDocumentCommandIsNotConstructed = errors.New(
	"AttachLeaseDocumentCommand must be created via NewAttachLeaseDocumentCommand constructor",
)

// AttachLeaseDocumentCommand records an uploaded document on a lease.
type AttachLeaseDocumentCommand struct { //nolint:recvcheck //using for validation
	leaseID      kernel.UUID
	actor        kernel.Actor
	documentType string
	url          string

	guard guard.ConstructorGuard
}

func NewAttachLeaseDocumentCommand(
	leaseID kernel.UUID,
	actor kernel.Actor,
	documentType, url string,
) (AttachLeaseDocumentCommand, error) {
	if err := errors.Join(requireID("lease id", leaseID), actor.Validate()); err != nil {
		return AttachLeaseDocumentCommand{}, err
	}
	return AttachLeaseDocumentCommand{
		leaseID:      leaseID,
		actor:        actor,
		documentType: documentType,
		url:          url,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AttachLeaseDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachLeaseDocumentCommandIsNotConstructed)
}
