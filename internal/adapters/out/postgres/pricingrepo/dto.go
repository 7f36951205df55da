// Package pricingrepo maps pricing rules to the pricing_rules table.
package pricingrepo

import (
	"time"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PricingRuleDTO is one row of pricing_rules. A NULL effective_to marks the
// standing rule of its scope.
type PricingRuleDTO struct {
	ID            uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	CategoryID    uuid.UUID                    `gorm:"type:uuid;not null;index:idx_pricing_rules_scope"`
	LocationCode  string                       `gorm:"type:varchar(32);not null;index:idx_pricing_rules_scope"`
	Rates         datatypes.JSONSlice[RateDTO] `gorm:"not null"`
	EffectiveFrom time.Time                    `gorm:"type:date;not null"`
	EffectiveTo   *time.Time                   `gorm:"type:date"`
	Status        string                       `gorm:"type:varchar(16);not null;index:idx_pricing_rules_scope"`
	CreatedAt     time.Time                    `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time                    `gorm:"autoUpdateTime:false"`
}

func (PricingRuleDTO) TableName() string {
	return "pricing_rules"
}

type RateDTO struct {
	Metric string          `json:"metric"`
	Amount decimal.Decimal `json:"amount"`
}

func fromDomain(r *pricing.Rule) PricingRuleDTO {
	rates := make(datatypes.JSONSlice[RateDTO], 0, len(r.Rates()))
	for _, rate := range r.Rates() {
		rates = append(rates, RateDTO{Metric: string(rate.Metric()), Amount: rate.Amount()})
	}

	var effectiveTo *time.Time
	if to := r.EffectiveTo(); to != nil {
		t := to.Time()
		effectiveTo = &t
	}

	return PricingRuleDTO{
		ID:            r.ID().Bytes(),
		CategoryID:    r.CategoryID().Bytes(),
		LocationCode:  r.Location().String(),
		Rates:         rates,
		EffectiveFrom: r.EffectiveFrom().Time(),
		EffectiveTo:   effectiveTo,
		Status:        string(r.Status()),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func toDomain(dto PricingRuleDTO) (*pricing.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewLocationCode(dto.LocationCode)
	if err != nil {
		return nil, err
	}

	rates := make([]pricing.Rate, 0, len(dto.Rates))
	for _, raw := range dto.Rates {
		metric, mErr := pricing.ParseMetric(raw.Metric)
		if mErr != nil {
			return nil, mErr
		}
		rate, rErr := pricing.NewRate(metric, raw.Amount)
		if rErr != nil {
			return nil, rErr
		}
		rates = append(rates, rate)
	}

	return pricing.RestoreRule(id, categoryID, location, rates,
		kernel.DateOf(dto.EffectiveFrom), kernel.DatePtr(dto.EffectiveTo),
		pricing.Status(dto.Status), dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}
