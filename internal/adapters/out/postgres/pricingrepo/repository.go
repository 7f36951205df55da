package pricingrepo

import (
	"context"
	"errors"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPricingRuleRepository implements ports.PricingRuleRepository using GORM.
type GormPricingRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPricingRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingRuleRepository {
	return &GormPricingRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPricingRuleRepository) Add(ctx context.Context, aggregate *pricing.Rule) error {
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

// Update rewrites the rule. Rules only ever move from ACTIVE to INACTIVE, so
// a lost update would write the same row.
func (r *GormPricingRuleRepository) Update(ctx context.Context, aggregate *pricing.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PricingRuleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pricing rule", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPricingRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PricingRuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricing rule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListActive returns the ACTIVE rules of one scope, earliest effective-from first.
func (r *GormPricingRuleRepository) ListActive(
	ctx context.Context,
	categoryID kernel.UUID,
	location kernel.LocationCode,
) ([]*pricing.Rule, error) {
	var dtos []PricingRuleDTO
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND location_code = ? AND status = ?",
			categoryID.Bytes(), location.String(), string(pricing.StatusActive)).
		Order("effective_from, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// ListExpired returns the ACTIVE time-bounded rules that ended before day.
func (r *GormPricingRuleRepository) ListExpired(ctx context.Context, day kernel.Date) ([]*pricing.Rule, error) {
	var dtos []PricingRuleDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND effective_to IS NOT NULL AND effective_to < ?",
			string(pricing.StatusActive), day.Time()).
		Order("effective_to, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func toDomainList(dtos []PricingRuleDTO) ([]*pricing.Rule, error) {
	rules := make([]*pricing.Rule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
