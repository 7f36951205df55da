// Package events defines the domain events raised by aggregates.
//
// Aggregates record events while they change; the unit of work collects them
// from every aggregate it saw and publishes them once the transaction
// commits. Audit logging and notifications are subscribers of these events,
// so their failures cannot undo or block a committed state change.
package events

import (
	"time"

	"agrirent/internal/core/domain/model/kernel"
)

// Action is the audit classification of an event.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
)

// Event names.
const (
	OrderCreated           = "order.created"
	OrderStatusChanged     = "order.status_changed"
	LeaseCreated           = "lease.created"
	LeaseActivated         = "lease.activated"
	LeaseOperatorAssigned  = "lease.operator_assigned"
	LeaseDocumentAttached  = "lease.document_attached"
	LeaseCompleted         = "lease.completed"
	PricingRuleCreated     = "pricing_rule.created"
	PricingRuleDeactivated = "pricing_rule.deactivated"
	ThresholdConfigSet     = "threshold_config.set"
	DevicePublished        = "device.published"
)

// Recipient addresses a notification either to one user (UserID set) or to
// everyone holding Role (UserID nil), e.g. all administrators.
type Recipient struct {
	UserID *kernel.UUID
	Role   kernel.Role
}

// Event is an immutable fact about an aggregate.
type Event struct {
	ID         kernel.UUID
	Name       string
	EntityType string
	EntityID   kernel.UUID
	Action     Action
	FromState  string
	ToState    string
	ActorID    *kernel.UUID
	Note       string
	OccurredAt time.Time
	Recipients []Recipient
	Attributes map[string]string
}

// Source is implemented by aggregates that record events.
type Source interface {
	DomainEvents() []Event
	ClearDomainEvents()
}

// Recorder is embedded into aggregates to collect events.
type Recorder struct {
	pending []Event
}

// Record appends e, assigning an id when it has none.
func (r *Recorder) Record(e Event) {
	if e.ID.Validate() != nil {
		e.ID = kernel.NewUUID()
	}
	r.pending = append(r.pending, e)
}

// DomainEvents returns a copy of the recorded events.
func (r *Recorder) DomainEvents() []Event {
	out := make([]Event, len(r.pending))
	copy(out, r.pending)
	return out
}

func (r *Recorder) ClearDomainEvents() {
	r.pending = nil
}
