package order

import (
	"errors"
	"fmt"
	"time"

	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"
)

// EntityType is the audit entity name of orders.
const EntityType = "order"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a request to use a device.
//
// Order follows these invariants:
//   - kind and handler are fixed at construction; later threshold changes do not affect them
//   - the handler is derived from the kind (LEASE -> admin, RENT -> serving intermediary)
//   - status changes only through ChangeStatus, validated by the state machine
//   - version increases by one on every persisted change
type Order struct {
	id        kernel.UUID
	kind      Kind
	status    Status
	deviceID  kernel.UUID
	requester Requester
	handler   Handler
	usage     Usage
	period    Period
	note      string
	createdAt time.Time
	updatedAt time.Time
	version   int64

	events.Recorder

	isConstructed bool
}

// NewOrder creates a submitted (or draft) order.
//
// Parameters:
//   - id: identity of the new order
//   - kind: classification produced by the threshold resolver
//   - deviceID: the requested device
//   - servingIntermediaryID: the device's serving intermediary, required for RENT
//   - requester: who asks, with a contact snapshot
//   - usage, period: what is asked for
//   - initial: Draft or InterestRaised
//   - note: free text
//   - at: creation time
//
// Records an order.created event addressed to the requester and the handler.
func NewOrder(
	id kernel.UUID,
	kind Kind,
	deviceID kernel.UUID,
	servingIntermediaryID *kernel.UUID,
	requester Requester,
	usage Usage,
	period Period,
	initial Status,
	note string,
	at time.Time,
) (*Order, error) {
	if initial != Draft && initial != InterestRaised {
		return nil, errs.NewValueIsInvalidErrorWithCause("initial status",
			fmt.Errorf("%s is not DRAFT or INTEREST_RAISED", initial))
	}

	handler, err := HandlerFor(kind, servingIntermediaryID)
	if err != nil {
		return nil, err
	}

	o := &Order{
		kind:          kind,
		status:        initial,
		handler:       handler,
		usage:         usage,
		note:          note,
		createdAt:     at,
		updatedAt:     at,
		version:       1,
		isConstructed: true,
	}

	if err = errors.Join(
		o.setID(id),
		o.setDeviceID(deviceID),
		o.setRequester(requester),
		o.setPeriod(period),
	); err != nil {
		return nil, err
	}

	o.Record(events.Event{
		Name:       events.OrderCreated,
		EntityType: EntityType,
		EntityID:   o.id,
		Action:     events.ActionCreate,
		ToState:    o.status.String(),
		ActorID:    kernel.UUIDPtr(requester.ID()),
		Note:       note,
		OccurredAt: at,
		Recipients: o.recipients(),
		Attributes: map[string]string{
			"kind":      string(o.kind),
			"device_id": o.deviceID.String(),
		},
	})

	return o, nil
}

// RestoreOrder rehydrates an order from storage without recording events.
func RestoreOrder(
	id kernel.UUID,
	kind Kind,
	status Status,
	deviceID kernel.UUID,
	requester Requester,
	handler Handler,
	usage Usage,
	period Period,
	note string,
	createdAt, updatedAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		handler:       handler,
		usage:         usage,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		kind.Validate(),
		status.Validate(),
		o.setDeviceID(deviceID),
		o.setRequester(requester),
		o.setPeriod(period),
		validateVersion(version),
	); err != nil {
		return nil, err
	}

	o.kind = kind
	o.status = status
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID { return o.id }

func (o *Order) Kind() Kind { return o.kind }

func (o *Order) Status() Status { return o.status }

func (o *Order) DeviceID() kernel.UUID { return o.deviceID }

func (o *Order) Requester() Requester { return o.requester }

func (o *Order) Handler() Handler { return o.handler }

func (o *Order) Usage() Usage { return o.usage }

func (o *Order) Period() Period { return o.period }

func (o *Order) Note() string { return o.note }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Version is the persisted version the order was loaded with.
func (o *Order) Version() int64 { return o.version }

// AdvanceVersion is called by repositories after a successful compare-and-swap write.
func (o *Order) AdvanceVersion() { o.version++ }

// AllowedNextStates lists the statuses the order may move to now.
func (o *Order) AllowedNextStates() []Status {
	return Transitions().AllowedNextStates(o.status)
}

// ChangeStatus moves the order to `to`.
//
// Returns:
//   - *errs.InvalidTransitionError when the state machine forbids the change;
//     the order is left untouched
//   - a validation error for an unknown target status
//
// On success an order.status_changed event is recorded.
func (o *Order) ChangeStatus(to Status, actor kernel.Actor, note string, at time.Time) error {
	if err := errors.Join(o.Validate(), actor.Validate()); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	from := o.status
	if !Transitions().CanTransition(from, to) {
		return errs.NewInvalidTransitionError(from, to)
	}

	o.status = to
	o.updatedAt = at
	o.Record(events.Event{
		Name:       events.OrderStatusChanged,
		EntityType: EntityType,
		EntityID:   o.id,
		Action:     events.ActionUpdate,
		FromState:  from.String(),
		ToState:    to.String(),
		ActorID:    kernel.UUIDPtr(actor.ID()),
		Note:       note,
		OccurredAt: at,
		Recipients: o.recipients(),
		Attributes: map[string]string{"kind": string(o.kind)},
	})
	return nil
}

// IsRequestedBy reports whether actor raised this order.
func (o *Order) IsRequestedBy(actor kernel.Actor) bool {
	return o.requester.ID().IsEqual(actor.ID())
}

func (o *Order) recipients() []events.Recipient {
	return []events.Recipient{
		{UserID: kernel.UUIDPtr(o.requester.ID()), Role: kernel.RoleUser},
		o.handler.recipient(),
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDeviceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("device id", err)
	}
	o.deviceID = id
	return nil
}

func (o *Order) setRequester(r Requester) error {
	if err := r.Validate(); err != nil {
		return err
	}
	o.requester = r
	return nil
}

func (o *Order) setPeriod(p Period) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.period = p
	return nil
}

func validateVersion(v int64) error {
	if v < 1 {
		return errs.NewValueIsOutOfRangeError("version", v, 1, "unbounded")
	}
	return nil
}
