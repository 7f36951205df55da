package queries

import (
	"context"

	"agrirent/internal/core/ports"
)

type GetAuditTrailQueryHandler struct {
	audit ports.AuditLogRepository
}

func NewGetAuditTrailQueryHandler(audit ports.AuditLogRepository) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{audit: audit}
}

// Handle returns an empty trail for an entity nothing was recorded for.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.audit.ListByEntity(ctx, query.EntityType(), query.EntityID())
	if err != nil {
		return nil, err
	}

	trail := make([]GetAuditTrailQueryResponse, 0, len(entries))
	for _, e := range entries {
		trail = append(trail, GetAuditTrailQueryResponse{
			ID:         e.ID(),
			Action:     string(e.Action()),
			FromState:  e.FromState(),
			ToState:    e.ToState(),
			ActorID:    e.ActorID(),
			Note:       e.Note(),
			OccurredAt: e.OccurredAt(),
		})
	}
	return trail, nil
}
