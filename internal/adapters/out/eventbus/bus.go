// Package eventbus delivers committed domain events to in-process subscribers.
//
// Every subscriber owns a buffered queue drained by its own goroutine, so a
// slow or failing subscriber never delays the publisher or the other
// subscribers. Handler errors and panics are logged and dropped.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"agrirent/internal/core/domain/events"
)

var ErrBusIsClosed = errors.New("event bus is closed")

// DefaultQueueSize is the per-subscriber buffer used when none is configured.
const DefaultQueueSize = 256

// Handler processes one event. Handlers run on the subscriber goroutine with
// a context detached from the publisher's cancellation.
type Handler func(ctx context.Context, e events.Event) error

type delivery struct {
	ctx   context.Context
	event events.Event
}

type subscription struct {
	name   string
	handle Handler
	queue  chan delivery
}

// Bus implements ports.EventPublisher.
type Bus struct {
	logger    *slog.Logger
	queueSize int

	mu     sync.RWMutex
	subs   []*subscription
	closed bool
	wg     sync.WaitGroup
}

func New(logger *slog.Logger, queueSize int) *Bus {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Bus{
		logger:    logger.With("component", "event_bus"),
		queueSize: queueSize,
	}
}

// Subscribe registers h under name and starts its delivery goroutine.
func (b *Bus) Subscribe(name string, h Handler) error {
	if h == nil {
		return fmt.Errorf("subscriber %q: nil handler", name)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusIsClosed
	}

	sub := &subscription{
		name:   name,
		handle: h,
		queue:  make(chan delivery, b.queueSize),
	}
	b.subs = append(b.subs, sub)

	b.wg.Add(1)
	go b.run(sub)
	return nil
}

// Publish enqueues evs for every subscriber and returns at once. When a
// subscriber's queue is full the event is dropped for that subscriber and
// logged.
func (b *Bus) Publish(ctx context.Context, evs ...events.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		b.logger.WarnContext(ctx, "Events published after close were dropped", "count", len(evs))
		return
	}

	detached := context.WithoutCancel(ctx)
	for _, e := range evs {
		for _, sub := range b.subs {
			select {
			case sub.queue <- delivery{ctx: detached, event: e}:
			default:
				b.logger.ErrorContext(ctx, "Subscriber queue is full, event dropped",
					"subscriber", sub.name, "event", e.Name, "event_id", e.ID.String())
			}
		}
	}
}

// Close stops accepting events and waits until every queued event was handled.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	for _, sub := range b.subs {
		close(sub.queue)
	}
	b.mu.Unlock()

	b.wg.Wait()
}

func (b *Bus) run(sub *subscription) {
	defer b.wg.Done()
	for d := range sub.queue {
		b.deliver(sub, d)
	}
}

func (b *Bus) deliver(sub *subscription, d delivery) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorContext(d.ctx, "Subscriber panicked",
				"subscriber", sub.name, "event", d.event.Name, "event_id", d.event.ID.String(), "panic", r)
		}
	}()

	if err := sub.handle(d.ctx, d.event); err != nil {
		b.logger.ErrorContext(d.ctx, "Subscriber failed",
			"subscriber", sub.name, "event", d.event.Name, "event_id", d.event.ID.String(), "error", err)
	}
}
