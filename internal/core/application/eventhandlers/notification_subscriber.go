package eventhandlers

import (
	"context"
	"errors"
	"fmt"

	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/ports"
)

// NotificationSubscriber sends one notification per event recipient.
type NotificationSubscriber struct {
	notifier ports.Notifier
}

func NewNotificationSubscriber(notifier ports.Notifier) *NotificationSubscriber {
	return &NotificationSubscriber{notifier: notifier}
}

// Handle notifies every recipient even when one delivery fails and reports
// the joined failures.
func (s *NotificationSubscriber) Handle(ctx context.Context, e events.Event) error {
	if len(e.Recipients) == 0 {
		return nil
	}

	title, body := render(e)
	var errs []error
	for _, r := range e.Recipients {
		n := ports.Notification{
			EventID:    e.ID.String(),
			EventName:  e.Name,
			Recipient:  r,
			Title:      title,
			Body:       body,
			EntityType: e.EntityType,
			EntityID:   e.EntityID.String(),
			OccurredAt: e.OccurredAt,
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			errs = append(errs, fmt.Errorf("notify %s: %w", r.Role, err))
		}
	}
	return errors.Join(errs...)
}

func render(e events.Event) (string, string) {
	switch e.Name {
	case events.OrderCreated:
		return "New equipment request",
			fmt.Sprintf("Order %s was raised as %s.", e.EntityID, e.Attributes["kind"])
	case events.OrderStatusChanged:
		return "Order status updated",
			withNote(fmt.Sprintf("Order %s moved from %s to %s.", e.EntityID, e.FromState, e.ToState), e.Note)
	case events.LeaseCreated:
		return "Lease created",
			fmt.Sprintf("Lease %s was created with status %s.", e.EntityID, e.ToState)
	case events.LeaseActivated:
		return "Lease active", fmt.Sprintf("Lease %s is now active.", e.EntityID)
	case events.LeaseOperatorAssigned:
		return "Operator assigned",
			fmt.Sprintf("An operator was assigned to lease %s.", e.EntityID)
	case events.LeaseDocumentAttached:
		return "Lease document added",
			fmt.Sprintf("A document was attached to lease %s.", e.EntityID)
	case events.LeaseCompleted:
		return "Lease completed",
			withNote(fmt.Sprintf("Lease %s was completed.", e.EntityID), e.Note)
	default:
		return e.Name, fmt.Sprintf("%s %s changed.", e.EntityType, e.EntityID)
	}
}

func withNote(body, note string) string {
	if note == "" {
		return body
	}
	return body + " Note: " + note
}
