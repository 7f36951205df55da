package ports

import (
	"context"

	"agrirent/internal/core/domain/model/audit"
	"agrirent/internal/core/domain/model/kernel"
)

// AuditLogRepository is append-only: there is no update or delete.
type AuditLogRepository interface {
	// Append stores the entry. Appending an entry id twice is a no-op.
	Append(ctx context.Context, entry *audit.Entry) error

	// ListByEntity returns the trail of one entity, oldest first.
	ListByEntity(ctx context.Context, entityType string, entityID kernel.UUID) ([]*audit.Entry, error)
}
