// Package thresholdrepo stores the per-category RENT/LEASE thresholds.
package thresholdrepo

import (
	"context"
	"errors"
	"time"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/threshold"
	"agrirent/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ThresholdConfigDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CategoryID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_threshold_configs_category_status"`
	MaxRentalHours float64    `gorm:"not null"`
	MaxRentalArea  float64    `gorm:"not null"`
	EffectiveFrom  time.Time  `gorm:"type:date;not null"`
	EffectiveTo    *time.Time `gorm:"type:date"`
	Status         string     `gorm:"type:varchar(16);not null;index:idx_threshold_configs_category_status"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime:false"`
}

func (ThresholdConfigDTO) TableName() string {
	return "threshold_configs"
}

// GormThresholdConfigRepository implements ports.ThresholdConfigRepository using GORM.
type GormThresholdConfigRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormThresholdConfigRepository(db *gorm.DB, tracker aggregateTracker) *GormThresholdConfigRepository {
	return &GormThresholdConfigRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormThresholdConfigRepository) Add(ctx context.Context, aggregate *threshold.Config) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormThresholdConfigRepository) Update(ctx context.Context, aggregate *threshold.Config) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ThresholdConfigDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("threshold config", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetActiveByCategory returns the newest ACTIVE config of the category.
func (r *GormThresholdConfigRepository) GetActiveByCategory(
	ctx context.Context,
	categoryID kernel.UUID,
) (*threshold.Config, error) {
	if err := categoryID.Validate(); err != nil {
		return nil, err
	}

	var dto ThresholdConfigDTO
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND status = ?", categoryID.Bytes(), string(threshold.StatusActive)).
		Order("updated_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("threshold config for category", categoryID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func fromDomain(c *threshold.Config) ThresholdConfigDTO {
	var effectiveTo *time.Time
	if to := c.EffectiveTo(); to != nil {
		t := to.Time()
		effectiveTo = &t
	}
	return ThresholdConfigDTO{
		ID:             c.ID().Bytes(),
		CategoryID:     c.CategoryID().Bytes(),
		MaxRentalHours: c.MaxRentalHours(),
		MaxRentalArea:  c.MaxRentalArea(),
		EffectiveFrom:  c.EffectiveFrom().Time(),
		EffectiveTo:    effectiveTo,
		Status:         string(c.Status()),
		UpdatedAt:      c.UpdatedAt(),
	}
}

func toDomain(dto ThresholdConfigDTO) (*threshold.Config, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	return threshold.RestoreConfig(id, categoryID, dto.MaxRentalHours, dto.MaxRentalArea,
		kernel.DateOf(dto.EffectiveFrom), kernel.DatePtr(dto.EffectiveTo),
		threshold.Status(dto.Status), dto.UpdatedAt.UTC())
}
