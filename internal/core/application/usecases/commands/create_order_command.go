package commands

import (
	"errors"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/order"
	"agrirent/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand asks for a device for a period. Input validation
// (dates present, end not before start, amounts not negative) happens here,
// before anything is loaded or stored.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), deviceID, requester,
//	    &hours, nil, start, end, "need it for sowing", false)
//	if err != nil {
//	    return err // validation error
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	deviceID  kernel.UUID
	requester order.Requester
	usage     order.Usage
	period    order.Period
	note      string
	asDraft   bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand builds the command. asDraft keeps the order in DRAFT
// instead of submitting it.
func NewCreateOrderCommand(
	orderID, deviceID kernel.UUID,
	requester order.Requester,
	hours, area *float64,
	start, end kernel.Date,
	note string,
	asDraft bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		note:    note,
		asDraft: asDraft,
		guard:   guard.NewConstructorGuard(),
	}

	usage, usageErr := order.NewUsage(hours, area)
	period, periodErr := order.NewPeriod(start, end)

	if err := errors.Join(
		orderID.Validate(),
		requireID("device id", deviceID),
		requester.Validate(),
		usageErr,
		periodErr,
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.deviceID = deviceID
	cmd.requester = requester
	cmd.usage = usage
	cmd.period = period
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c CreateOrderCommand) DeviceID() kernel.UUID { return c.deviceID }

func (c CreateOrderCommand) Requester() order.Requester { return c.requester }

func (c CreateOrderCommand) Usage() order.Usage { return c.usage }

func (c CreateOrderCommand) Period() order.Period { return c.period }

func (c CreateOrderCommand) Note() string { return c.note }

// InitialStatus is DRAFT for drafts and INTEREST_RAISED otherwise.
func (c CreateOrderCommand) InitialStatus() order.Status {
	if c.asDraft {
		return order.Draft
	}
	return order.InterestRaised
}
