package commands

import (
	"context"

	"agrirent/internal/core/domain/model/device"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/services"
	"agrirent/internal/core/ports"
	"agrirent/internal/pkg/errs"
)

// PublishDeviceCommandHandler makes a device visible to requesters once its
// scope has an ACTIVE standing pricing rule. Administrators and the serving
// intermediary may publish.
type PublishDeviceCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      ports.Clock
}

func NewPublishDeviceCommandHandler(uowFactory CatalogUoWFactory, clock ports.Clock) PublishDeviceCommandHandler {
	return PublishDeviceCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h PublishDeviceCommandHandler) Handle(ctx context.Context, cmd PublishDeviceCommand) (*device.Device, error) {
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

	deviceRepo := uow.DeviceRepository()
	d, err := deviceRepo.Get(ctx, cmd.DeviceID())
	if err != nil {
		return nil, err
	}
	if !canPublish(d, cmd.Actor()) {
		return nil, errs.NewForbiddenError("publish device", cmd.Actor().ID().String())
	}

	resolver, err := services.NewPricingResolver(uow.PricingRuleRepository())
	if err != nil {
		return nil, err
	}
	hasDefault, err := resolver.HasActiveDefaultRule(ctx, d.CategoryID(), d.Location())
	if err != nil {
		return nil, err
	}

	if err = d.Publish(hasDefault, cmd.Actor().ID(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = deviceRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

func canPublish(d *device.Device, actor kernel.Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	serving := d.ServingIntermediaryID()
	return actor.Role() == kernel.RoleIntermediary && serving != nil && serving.IsEqual(actor.ID())
}
