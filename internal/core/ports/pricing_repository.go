package ports

import (
	"context"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/core/domain/model/threshold"
)

// PricingRuleRepository persists pricing rules. Overlap and uniqueness rules
// are checked by the caller before Add, not by the storage.
type PricingRuleRepository interface {
	Add(ctx context.Context, aggregate *pricing.Rule) error
	Update(ctx context.Context, aggregate *pricing.Rule) error
	Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error)

	// ListActive returns every ACTIVE rule of the scope ordered by effective-from.
	ListActive(ctx context.Context, categoryID kernel.UUID, location kernel.LocationCode) ([]*pricing.Rule, error)

	// ListExpired returns ACTIVE time-bounded rules whose window ended before day.
	ListExpired(ctx context.Context, day kernel.Date) ([]*pricing.Rule, error)
}

// ThresholdConfigRepository persists category thresholds.
type ThresholdConfigRepository interface {
	Add(ctx context.Context, aggregate *threshold.Config) error
	Update(ctx context.Context, aggregate *threshold.Config) error

	// GetActiveByCategory returns *errs.ObjectNotFoundError when the category
	// has no ACTIVE config.
	GetActiveByCategory(ctx context.Context, categoryID kernel.UUID) (*threshold.Config, error)
}
