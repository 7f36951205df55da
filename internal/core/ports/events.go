package ports

import (
	"context"
	"time"

	"agrirent/internal/core/domain/events"
)

// EventPublisher hands committed domain events to their subscribers.
// Publish must not block on subscriber work and never reports subscriber
// failures.
type EventPublisher interface {
	Publish(ctx context.Context, evs ...events.Event)
}

// Notification is a message for one recipient derived from a domain event.
type Notification struct {
	EventID    string
	EventName  string
	Recipient  events.Recipient
	Title      string
	Body       string
	EntityType string
	EntityID   string
	OccurredAt time.Time
}

// Notifier delivers notifications to the delivery channel (push/SMS workers).
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Clock is the source of "now" for use cases and jobs.
type Clock interface {
	Now() time.Time
}
