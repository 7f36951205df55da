// Package eventhandlers reacts to committed domain events: it writes the
// audit trail and fans notifications out to the participants.
package eventhandlers

import (
	"context"
	"fmt"

	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/audit"
	"agrirent/internal/core/ports"
)

// AuditSubscriber turns every event into one audit entry.
type AuditSubscriber struct {
	repo ports.AuditLogRepository
}

func NewAuditSubscriber(repo ports.AuditLogRepository) *AuditSubscriber {
	return &AuditSubscriber{repo: repo}
}

// Handle appends the entry. Redelivery of the same event is a no-op because
// the entry id is the event id.
func (s *AuditSubscriber) Handle(ctx context.Context, e events.Event) error {
	entry, err := audit.FromEvent(e)
	if err != nil {
		return fmt.Errorf("audit entry for %s: %w", e.Name, err)
	}
	return s.repo.Append(ctx, entry)
}
