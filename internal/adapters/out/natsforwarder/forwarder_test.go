package natsforwarder_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"agrirent/internal/adapters/out/natsforwarder"
	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/kernel"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ natsforwarder.Publisher = (*nats.Conn)(nil)

type published struct {
	subject string
	data    []byte
}

type fakeConn struct {
	msgs []published
	err  error
}

func (c *fakeConn) Publish(subj string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.msgs = append(c.msgs, published{subject: subj, data: data})
	return nil
}

func leaseCompleted() events.Event {
	actor := kernel.NewUUID()
	return events.Event{
		ID:         kernel.NewUUID(),
		Name:       events.LeaseCompleted,
		EntityType: "lease",
		EntityID:   kernel.NewUUID(),
		Action:     events.ActionUpdate,
		FromState:  "ACTIVE",
		ToState:    "COMPLETED",
		ActorID:    &actor,
		OccurredAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Attributes: map[string]string{"end_date": "2025-06-01"},
	}
}

func TestForwarder_Handle(t *testing.T) {
	conn := &fakeConn{}
	f := natsforwarder.New(conn, "")
	e := leaseCompleted()

	require.NoError(t, f.Handle(context.Background(), e))

	require.Len(t, conn.msgs, 1)
	assert.Equal(t, "agrirent.events.lease.completed", conn.msgs[0].subject)

	var body map[string]any
	require.NoError(t, json.Unmarshal(conn.msgs[0].data, &body))
	assert.Equal(t, e.ID.String(), body["id"])
	assert.Equal(t, "COMPLETED", body["to_state"])
	assert.Equal(t, e.ActorID.String(), body["actor_id"])
	assert.Equal(t, "2025-06-01", body["attributes"].(map[string]any)["end_date"])
}

func TestForwarder_CustomPrefix(t *testing.T) {
	f := natsforwarder.New(&fakeConn{}, "staging.rentals")
	assert.Equal(t, "staging.rentals.lease.completed", f.Subject(leaseCompleted()))
}

func TestForwarder_PublishError(t *testing.T) {
	f := natsforwarder.New(&fakeConn{err: nats.ErrConnectionClosed}, "")

	err := f.Handle(context.Background(), leaseCompleted())

	require.Error(t, err)
	assert.True(t, errors.Is(err, nats.ErrConnectionClosed))
	assert.Contains(t, err.Error(), "agrirent.events.lease.completed")
}
