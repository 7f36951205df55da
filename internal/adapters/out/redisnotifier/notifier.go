// Package redisnotifier hands notifications to the delivery workers through a
// Redis Stream. Push and SMS workers consume the stream; this service only
// appends to it.
package redisnotifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agrirent/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

const DefaultStream = "agrirent:notifications"

// payload is the JSON document stored in the "data" field of a stream entry.
type payload struct {
	EventID       string    `json:"event_id"`
	EventName     string    `json:"event_name"`
	RecipientID   string    `json:"recipient_id,omitempty"`
	RecipientRole string    `json:"recipient_role"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	EntityType    string    `json:"entity_type"`
	EntityID      string    `json:"entity_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Notifier implements ports.Notifier with XADD.
type Notifier struct {
	client redis.Cmdable
	stream string
	maxLen int64
}

// NewNotifier appends to stream, trimming it to maxLen entries when maxLen > 0.
func NewNotifier(client redis.Cmdable, stream string, maxLen int64) *Notifier {
	if stream == "" {
		stream = DefaultStream
	}
	return &Notifier{client: client, stream: stream, maxLen: maxLen}
}

func (n *Notifier) Notify(ctx context.Context, msg ports.Notification) error {
	p := payload{
		EventID:       msg.EventID,
		EventName:     msg.EventName,
		RecipientRole: string(msg.Recipient.Role),
		Title:         msg.Title,
		Body:          msg.Body,
		EntityType:    msg.EntityType,
		EntityID:      msg.EntityID,
		OccurredAt:    msg.OccurredAt,
	}
	if msg.Recipient.UserID != nil {
		p.RecipientID = msg.Recipient.UserID.String()
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	err = n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: n.stream,
		MaxLen: n.maxLen,
		Values: map[string]interface{}{
			"event":     msg.EventName,
			"role":      p.RecipientRole,
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", n.stream, err)
	}
	return nil
}
