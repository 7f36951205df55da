package commands

import (
	"context"

	"agrirent/internal/core/domain/model/order"
	"agrirent/internal/core/ports"
	"agrirent/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler is the only way an order status changes.
// CancelOrderCommandHandler and RejectOrderCommandHandler authorize the actor
// and then go through the same path.
//
// Errors:
//   - *errs.ObjectNotFoundError for an unknown order
//   - *errs.InvalidTransitionError when the state machine forbids the move;
//     nothing is persisted
//   - *errs.VersionIsInvalidError when the order changed since it was read
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.changeStatus(ctx, cmd.orderChange, cmd.to, nil)
}

// changeStatus loads the order, lets authorize veto the actor and applies the
// transition in one transaction.
func (h UpdateOrderStatusCommandHandler) changeStatus(
	ctx context.Context,
	change orderChange,
	to order.Status,
	authorize func(*order.Order) error,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, change.orderID)
	if err != nil {
		return nil, err
	}

	if authorize != nil {
		if err = authorize(o); err != nil {
			return nil, err
		}
	}

	if err = o.ChangeStatus(to, change.actor, change.note, h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// CancelOrderCommandHandler lets the requester withdraw an order while the
// state machine still allows CANCELLED.
type CancelOrderCommandHandler struct {
	updater UpdateOrderStatusCommandHandler
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{updater: NewUpdateOrderStatusCommandHandler(uowFactory, clock)}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.updater.changeStatus(ctx, cmd.orderChange, order.Cancelled, func(o *order.Order) error {
		if !o.IsRequestedBy(cmd.actor) {
			return errs.NewForbiddenError("cancel order "+o.ID().String(), cmd.actor.ID().String())
		}
		return nil
	})
}

// RejectOrderCommandHandler lets the order's handler decline it: any
// administrator for LEASE orders, the serving intermediary for RENT orders.
type RejectOrderCommandHandler struct {
	updater UpdateOrderStatusCommandHandler
}

func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{updater: NewUpdateOrderStatusCommandHandler(uowFactory, clock)}
}

func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.updater.changeStatus(ctx, cmd.orderChange, order.Rejected, func(o *order.Order) error {
		if !o.Handler().IsHandledBy(cmd.actor) {
			return errs.NewForbiddenError("reject order "+o.ID().String(), cmd.actor.ID().String())
		}
		return nil
	})
}
