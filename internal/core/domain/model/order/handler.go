package order

import (
	"errors"
	"fmt"

	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"
)

// HandlerKind tells who is responsible for progressing an order.
type HandlerKind string

const (
	HandlerAdmin        HandlerKind = "ADMIN"
	HandlerIntermediary HandlerKind = "INTERMEDIARY"
)

// ErrRentWithoutIntermediary is returned when a RENT order targets a device that
// no intermediary serves.
var ErrRentWithoutIntermediary = errs.NewValueIsRequiredErrorWithCause(
	"serving intermediary",
	errors.New("a RENT order needs the device's serving intermediary as handler"),
)

// Handler is the tagged actor responsible for an order: any administrator for
// LEASE orders, the device's serving intermediary for RENT orders.
type Handler struct {
	kind HandlerKind
	id   *kernel.UUID
}

// HandlerFor derives the handler from the order kind.
func HandlerFor(kind Kind, servingIntermediaryID *kernel.UUID) (Handler, error) {
	switch kind {
	case Lease:
		return Handler{kind: HandlerAdmin}, nil
	case Rent:
		if servingIntermediaryID == nil || servingIntermediaryID.Validate() != nil {
			return Handler{}, ErrRentWithoutIntermediary
		}
		id := *servingIntermediaryID
		return Handler{kind: HandlerIntermediary, id: &id}, nil
	default:
		return Handler{}, kind.Validate()
	}
}

// RestoreHandler rebuilds a handler read from storage.
func RestoreHandler(kind HandlerKind, id *kernel.UUID) (Handler, error) {
	switch kind {
	case HandlerAdmin:
		return Handler{kind: HandlerAdmin}, nil
	case HandlerIntermediary:
		if id == nil {
			return Handler{}, ErrRentWithoutIntermediary
		}
		return Handler{kind: HandlerIntermediary, id: kernel.UUIDPtr(*id)}, nil
	default:
		return Handler{}, errs.NewValueIsInvalidErrorWithCause("handler kind", fmt.Errorf("%q is unknown", kind))
	}
}

func (h Handler) Kind() HandlerKind { return h.kind }

// ID returns the intermediary id, nil for administrator handlers.
func (h Handler) ID() *kernel.UUID {
	if h.id == nil {
		return nil
	}
	return kernel.UUIDPtr(*h.id)
}

// IsHandledBy reports whether actor may act as this order's handler.
func (h Handler) IsHandledBy(actor kernel.Actor) bool {
	switch h.kind {
	case HandlerAdmin:
		return actor.Role() == kernel.RoleAdmin
	case HandlerIntermediary:
		return actor.Role() == kernel.RoleIntermediary && h.id != nil && h.id.IsEqual(actor.ID())
	default:
		return false
	}
}

func (h Handler) recipient() events.Recipient {
	if h.kind == HandlerAdmin {
		return events.Recipient{Role: kernel.RoleAdmin}
	}
	return events.Recipient{UserID: h.ID(), Role: kernel.RoleIntermediary}
}
