package commands

import (
	"context"
	"errors"
	"fmt"

	"agrirent/internal/core/domain/model/order"
	"agrirent/internal/core/domain/services"
	"agrirent/internal/core/ports"
	"agrirent/internal/pkg/errs"
)

// CreateOrderCommandHandler submits an order.
//
// Steps: resolve the device, classify the request with the category
// thresholds, derive the handler from the kind, persist. The order kind and
// handler are fixed at this point and never recomputed.
//
// Errors:
//   - validation error when the device does not exist or is not bookable
//   - validation error for a RENT request on a device without serving intermediary
//   - *errs.ObjectNotFoundError when the category has no threshold config
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	d, err := uow.DeviceRepository().Get(ctx, cmd.DeviceID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewValueIsInvalidErrorWithCause("device", err)
	}
	if err != nil {
		return nil, err
	}
	if !d.IsBookable() {
		return nil, errs.NewValueIsInvalidErrorWithCause("device",
			fmt.Errorf("device %s is %s and cannot be booked", d.ID(), d.Status()))
	}

	resolver, err := services.NewThresholdResolver(uow.ThresholdConfigRepository())
	if err != nil {
		return nil, err
	}
	usage := cmd.Usage()
	kind, err := resolver.DeriveOrderKind(ctx, d.CategoryID(), usage.Hours(), usage.Area())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		kind,
		d.ID(),
		d.ServingIntermediaryID(),
		cmd.Requester(),
		usage,
		cmd.Period(),
		cmd.InitialStatus(),
		cmd.Note(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
