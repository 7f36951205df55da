package services

import (
	"context"
	"errors"
	"fmt"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/order"
	"agrirent/internal/core/domain/model/threshold"
	"agrirent/internal/pkg/errs"
)

// ThresholdConfigReader loads the config in force for a category. It returns
// an *errs.ObjectNotFoundError when the category has none.
type ThresholdConfigReader interface {
	GetActiveByCategory(ctx context.Context, categoryID kernel.UUID) (*threshold.Config, error)
}

// ThresholdResolver decides whether a request is a short RENT or a LEASE.
//
// Policy: LEASE when requested hours exceed the category's max rental hours
// OR requested area exceeds its max rental area. Either limit alone is
// enough. A request with neither amount is a RENT.
type ThresholdResolver struct {
	configs ThresholdConfigReader
}

func NewThresholdResolver(configs ThresholdConfigReader) (*ThresholdResolver, error) {
	if configs == nil {
		return nil, errs.NewValueIsRequiredError("configs")
	}
	return &ThresholdResolver{configs: configs}, nil
}

// DeriveOrderKind fetches the category config and classifies the request.
// A missing config is returned unchanged: a category must be configured
// before its devices can be ordered.
func (r *ThresholdResolver) DeriveOrderKind(
	ctx context.Context,
	categoryID kernel.UUID,
	hours, area *float64,
) (order.Kind, error) {
	if err := errors.Join(validateAmount("requested hours", hours), validateAmount("requested area", area)); err != nil {
		return "", err
	}

	cfg, err := r.configs.GetActiveByCategory(ctx, categoryID)
	if err != nil {
		return "", err
	}
	return Classify(cfg, hours, area)
}

// Classify applies the OR policy to an already loaded config.
func Classify(cfg *threshold.Config, hours, area *float64) (order.Kind, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if cfg.Exceeds(hours, area) {
		return order.Lease, nil
	}
	return order.Rent, nil
}

func validateAmount(name string, v *float64) error {
	if v != nil && *v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is negative", *v))
	}
	return nil
}
