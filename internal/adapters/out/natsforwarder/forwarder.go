// Package natsforwarder mirrors committed domain events onto NATS subjects
// for downstream consumers such as billing and analytics.
package natsforwarder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agrirent/internal/core/domain/events"
)

const DefaultSubjectPrefix = "agrirent.events"

// Publisher is the subset of *nats.Conn the forwarder needs.
type Publisher interface {
	Publish(subj string, data []byte) error
}

// message is the wire form of an event.
type message struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Action     string            `json:"action"`
	FromState  string            `json:"from_state,omitempty"`
	ToState    string            `json:"to_state,omitempty"`
	ActorID    string            `json:"actor_id,omitempty"`
	Note       string            `json:"note,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

type Forwarder struct {
	conn   Publisher
	prefix string
}

func New(conn Publisher, prefix string) *Forwarder {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &Forwarder{conn: conn, prefix: prefix}
}

// Subject returns "<prefix>.<event name>", e.g. agrirent.events.lease.created.
func (f *Forwarder) Subject(e events.Event) string {
	return f.prefix + "." + e.Name
}

// Handle publishes e. NATS core publishing is fire-and-forget; only local
// failures such as a closed connection are reported.
func (f *Forwarder) Handle(_ context.Context, e events.Event) error {
	m := message{
		ID:         e.ID.String(),
		Name:       e.Name,
		EntityType: e.EntityType,
		EntityID:   e.EntityID.String(),
		Action:     string(e.Action),
		FromState:  e.FromState,
		ToState:    e.ToState,
		Note:       e.Note,
		OccurredAt: e.OccurredAt,
		Attributes: e.Attributes,
	}
	if e.ActorID != nil {
		m.ActorID = e.ActorID.String()
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", e.Name, err)
	}
	subject := f.Subject(e)
	if err := f.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}
