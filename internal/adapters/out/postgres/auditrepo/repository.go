// Package auditrepo stores the append-only audit trail.
package auditrepo

import (
	"context"
	"time"

	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/audit"
	"agrirent/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuditLogDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EntityType string     `gorm:"type:varchar(32);not null;index:idx_audit_logs_entity"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_audit_logs_entity"`
	Action     string     `gorm:"type:varchar(16);not null"`
	FromState  string     `gorm:"type:varchar(32)"`
	ToState    string     `gorm:"type:varchar(32)"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	Note       string
	OccurredAt time.Time `gorm:"not null;index"`
}

func (AuditLogDTO) TableName() string {
	return "audit_logs"
}

// GormAuditLogRepository implements ports.AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	db *gorm.DB
}

func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append inserts the entry unless an entry with the same id exists.
func (r *GormAuditLogRepository) Append(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := AuditLogDTO{
		ID:         entry.ID().Bytes(),
		EntityType: entry.EntityType(),
		EntityID:   entry.EntityID().Bytes(),
		Action:     string(entry.Action()),
		FromState:  entry.FromState(),
		ToState:    entry.ToState(),
		Note:       entry.Note(),
		OccurredAt: entry.OccurredAt(),
	}
	if actorID := entry.ActorID(); actorID != nil {
		raw := actorID.Bytes()
		dto.ActorID = &raw
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

func (r *GormAuditLogRepository) ListByEntity(
	ctx context.Context,
	entityType string,
	entityID kernel.UUID,
) ([]*audit.Entry, error) {
	var dtos []AuditLogDTO
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID.Bytes()).
		Order("occurred_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func toDomain(dto AuditLogDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return nil, err
	}
	var actorID *kernel.UUID
	if dto.ActorID != nil {
		aID, aErr := kernel.UUIDFromBytes(dto.ActorID[:])
		if aErr != nil {
			return nil, aErr
		}
		actorID = &aID
	}

	return audit.NewEntry(id, dto.EntityType, entityID, events.Action(dto.Action),
		dto.FromState, dto.ToState, actorID, dto.Note, dto.OccurredAt.UTC())
}
