package commands

import (
	"context"

	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/core/ports"
)

// AttachLeaseDocumentCommandHandler records a signed document on a lease.
type AttachLeaseDocumentCommandHandler struct {
	uowFactory LeaseUoWFactory
	clock      ports.Clock
}

func NewAttachLeaseDocumentCommandHandler(uowFactory LeaseUoWFactory, clock ports.Clock) AttachLeaseDocumentCommandHandler {
	return AttachLeaseDocumentCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h AttachLeaseDocumentCommandHandler) Handle(ctx context.Context, cmd AttachLeaseDocumentCommand) (*lease.Lease, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	attachment, err := lease.NewAttachment(cmd.documentType, cmd.url, now)
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

	leaseRepo := uow.LeaseRepository()
	l, err := leaseRepo.Get(ctx, cmd.leaseID)
	if err != nil {
		return nil, err
	}
	if err = authorizeLeaseActor(l, cmd.actor, "attach lease document"); err != nil {
		return nil, err
	}

	if err = l.AttachDocument(attachment, cmd.actor.ID(), now); err != nil {
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
