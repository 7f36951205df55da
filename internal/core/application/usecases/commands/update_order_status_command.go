package commands

import (
	"errors"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/order"
	"agrirent/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
)

// orderChange is the payload shared by the status commands.
type orderChange struct {
	orderID kernel.UUID
	actor   kernel.Actor
	note    string
}

func newOrderChange(orderID kernel.UUID, actor kernel.Actor, note string) (orderChange, error) {
	if err := errors.Join(requireID("order id", orderID), actor.Validate()); err != nil {
		return orderChange{}, err
	}
	return orderChange{orderID: orderID, actor: actor, note: note}, nil
}

// UpdateOrderStatusCommand requests a move of an order to another status.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderChange
	to order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	to order.Status,
	note string,
) (UpdateOrderStatusCommand, error) {
	change, err := newOrderChange(orderID, actor, note)
	if err = errors.Join(err, to.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	return UpdateOrderStatusCommand{orderChange: change, to: to, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

func (c UpdateOrderStatusCommand) Actor() kernel.Actor { return c.actor }

func (c UpdateOrderStatusCommand) To() order.Status { return c.to }

func (c UpdateOrderStatusCommand) Note() string { return c.note }

// CancelOrderCommand withdraws an order on behalf of its requester.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderChange

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID kernel.UUID, actor kernel.Actor, note string) (CancelOrderCommand, error) {
	change, err := newOrderChange(orderID, actor, note)
	if err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderChange: change, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// RejectOrderCommand declines an order on behalf of its handler.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderChange

	guard guard.ConstructorGuard
}

func NewRejectOrderCommand(orderID kernel.UUID, actor kernel.Actor, note string) (RejectOrderCommand, error) {
	change, err := newOrderChange(orderID, actor, note)
	if err != nil {
		return RejectOrderCommand{}, err
	}
	return RejectOrderCommand{orderChange: change, guard: guard.NewConstructorGuard()}, nil
}

func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}
