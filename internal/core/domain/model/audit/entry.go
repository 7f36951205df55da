// Package audit holds the append-only trail of state changes.
package audit

import (
	"errors"
	"strings"
	"time"

	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is one audit record. It has no setters: entries are never updated.
type Entry struct {
	id         kernel.UUID
	entityType string
	entityID   kernel.UUID
	action     events.Action
	fromState  string
	toState    string
	actorID    *kernel.UUID
	note       string
	occurredAt time.Time

	isConstructed bool
}

func NewEntry(
	id kernel.UUID,
	entityType string,
	entityID kernel.UUID,
	action events.Action,
	fromState, toState string,
	actorID *kernel.UUID,
	note string,
	occurredAt time.Time,
) (*Entry, error) {
	var typeErr, actionErr, timeErr error
	if strings.TrimSpace(entityType) == "" {
		typeErr = errs.NewValueIsRequiredError("entity type")
	}
	if action != events.ActionCreate && action != events.ActionUpdate {
		actionErr = errs.NewValueIsInvalidError("audit action")
	}
	if occurredAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("occurred at")
	}
	if err := errors.Join(id.Validate(), typeErr, entityID.Validate(), actionErr, timeErr); err != nil {
		return nil, err
	}

	e := &Entry{
		id:            id,
		entityType:    entityType,
		entityID:      entityID,
		action:        action,
		fromState:     fromState,
		toState:       toState,
		note:          note,
		occurredAt:    occurredAt,
		isConstructed: true,
	}
	if actorID != nil {
		e.actorID = kernel.UUIDPtr(*actorID)
	}
	return e, nil
}

// FromEvent turns a domain event into its audit record. The event id becomes
// the entry id so a redelivered event maps to the same record.
func FromEvent(e events.Event) (*Entry, error) {
	return NewEntry(e.ID, e.EntityType, e.EntityID, e.Action, e.FromState, e.ToState, e.ActorID, e.Note, e.OccurredAt)
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID { return e.id }

func (e *Entry) EntityType() string { return e.entityType }

func (e *Entry) EntityID() kernel.UUID { return e.entityID }

func (e *Entry) Action() events.Action { return e.action }

func (e *Entry) FromState() string { return e.fromState }

func (e *Entry) ToState() string { return e.toState }

func (e *Entry) ActorID() *kernel.UUID {
	if e.actorID == nil {
		return nil
	}
	return kernel.UUIDPtr(*e.actorID)
}

func (e *Entry) Note() string { return e.note }

func (e *Entry) OccurredAt() time.Time { return e.occurredAt }
