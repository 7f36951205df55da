package pricing

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// EntityType is the audit entity name of pricing rules.
const EntityType = "pricing_rule"

var (
	ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule constructor")
	ErrRuleIsInactive       = errs.NewPreconditionFailedError("pricing rule is already inactive")
)

// Rule is a rate table for one (category, location) scope over a date window.
// Both window ends are inclusive calendar days.
type Rule struct {
	id            kernel.UUID
	categoryID    kernel.UUID
	location      kernel.LocationCode
	rates         []Rate
	effectiveFrom kernel.Date
	effectiveTo   *kernel.Date
	status        Status
	createdAt     time.Time
	updatedAt     time.Time

	events.Recorder

	isConstructed bool
}

// NewRule creates an ACTIVE rule. effectiveTo nil makes it the standing rule.
//
// Validation:
//   - rates is non-empty, each metric appears once, each amount is positive
//   - effectiveFrom is required, effectiveTo (if set) is not before it
func NewRule(
	id, categoryID kernel.UUID,
	location kernel.LocationCode,
	rates []Rate,
	effectiveFrom kernel.Date,
	effectiveTo *kernel.Date,
	actorID *kernel.UUID,
	at time.Time,
) (*Rule, error) {
	r := &Rule{
		status:        StatusActive,
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}
	if err := r.init(id, categoryID, location, rates, effectiveFrom, effectiveTo); err != nil {
		return nil, err
	}

	attrs := map[string]string{
		"category_id":    r.categoryID.String(),
		"location_code":  r.location.String(),
		"effective_from": r.effectiveFrom.String(),
	}
	if r.effectiveTo != nil {
		attrs["effective_to"] = r.effectiveTo.String()
	}
	r.Record(events.Event{
		Name:       events.PricingRuleCreated,
		EntityType: EntityType,
		EntityID:   r.id,
		Action:     events.ActionCreate,
		ToState:    string(r.status),
		ActorID:    actorID,
		OccurredAt: at,
		Attributes: attrs,
	})
	return r, nil
}

// RestoreRule rehydrates a rule from storage.
func RestoreRule(
	id, categoryID kernel.UUID,
	location kernel.LocationCode,
	rates []Rate,
	effectiveFrom kernel.Date,
	effectiveTo *kernel.Date,
	status Status,
	createdAt, updatedAt time.Time,
) (*Rule, error) {
	r := &Rule{createdAt: createdAt, updatedAt: updatedAt, isConstructed: true}
	if err := errors.Join(
		r.init(id, categoryID, location, rates, effectiveFrom, effectiveTo),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	r.status = status
	return r, nil
}

func (r *Rule) init(
	id, categoryID kernel.UUID,
	location kernel.LocationCode,
	rates []Rate,
	effectiveFrom kernel.Date,
	effectiveTo *kernel.Date,
) error {
	if err := errors.Join(
		id.Validate(),
		requireCategory(categoryID),
		location.Validate(),
		validateRates(rates),
		validateWindow(effectiveFrom, effectiveTo),
	); err != nil {
		return err
	}
	r.id = id
	r.categoryID = categoryID
	r.location = location
	r.rates = slices.Clone(rates)
	r.effectiveFrom = effectiveFrom
	if effectiveTo != nil {
		to := *effectiveTo
		r.effectiveTo = &to
	}
	return nil
}

func requireCategory(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("category id", err)
	}
	return nil
}

func validateRates(rates []Rate) error {
	if len(rates) == 0 {
		return errs.NewValueIsRequiredError("rates")
	}
	seen := make(map[Metric]struct{}, len(rates))
	for _, rate := range rates {
		if err := rate.metric.Validate(); err != nil {
			return err
		}
		if !rate.amount.IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause("rate", fmt.Errorf("%s is not greater than 0", rate.amount))
		}
		if _, dup := seen[rate.metric]; dup {
			return errs.NewValueIsInvalidErrorWithCause("rates", fmt.Errorf("metric %s is listed twice", rate.metric))
		}
		seen[rate.metric] = struct{}{}
	}
	return nil
}

func validateWindow(from kernel.Date, to *kernel.Date) error {
	if from.IsZero() {
		return errs.NewValueIsRequiredError("effective from")
	}
	if to != nil && to.Before(from) {
		return errs.NewValueIsInvalidErrorWithCause("effective to", fmt.Errorf("%s is before effective from %s", to, from))
	}
	return nil
}

func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}
	return nil
}

func (r *Rule) ID() kernel.UUID { return r.id }

func (r *Rule) CategoryID() kernel.UUID { return r.categoryID }

func (r *Rule) Location() kernel.LocationCode { return r.location }

func (r *Rule) Rates() []Rate { return slices.Clone(r.rates) }

func (r *Rule) EffectiveFrom() kernel.Date { return r.effectiveFrom }

// EffectiveTo is nil for the standing rule.
func (r *Rule) EffectiveTo() *kernel.Date {
	if r.effectiveTo == nil {
		return nil
	}
	to := *r.effectiveTo
	return &to
}

func (r *Rule) Status() Status { return r.status }

func (r *Rule) CreatedAt() time.Time { return r.createdAt }

func (r *Rule) UpdatedAt() time.Time { return r.updatedAt }

func (r *Rule) IsActive() bool { return r.status == StatusActive }

// IsStanding reports a rule without end date.
func (r *Rule) IsStanding() bool { return r.effectiveTo == nil }

// SameScope reports whether both rules price the same category at the same location.
func (r *Rule) SameScope(other *Rule) bool {
	return r.categoryID.IsEqual(other.categoryID) && r.location.IsEqual(other.location)
}

// Covers reports whether date falls inside the rule window.
func (r *Rule) Covers(date kernel.Date) bool {
	if date.Before(r.effectiveFrom) {
		return false
	}
	return r.effectiveTo == nil || !date.After(*r.effectiveTo)
}

// Overlaps reports whether the two inclusive windows intersect:
// r.from <= other.to && other.from <= r.to, an open end counting as infinity.
func (r *Rule) Overlaps(other *Rule) bool {
	if other.effectiveTo != nil && r.effectiveFrom.After(*other.effectiveTo) {
		return false
	}
	if r.effectiveTo != nil && other.effectiveFrom.After(*r.effectiveTo) {
		return false
	}
	return true
}

// RateFor returns the rate charged per metric.
func (r *Rule) RateFor(metric Metric) (decimal.Decimal, bool) {
	for _, rate := range r.rates {
		if rate.metric == metric {
			return rate.amount, true
		}
	}
	return decimal.Zero, false
}

// Deactivate takes the rule out of price resolution.
func (r *Rule) Deactivate(actorID *kernel.UUID, note string, at time.Time) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.status == StatusInactive {
		return ErrRuleIsInactive
	}

	r.status = StatusInactive
	r.updatedAt = at
	r.Record(events.Event{
		Name:       events.PricingRuleDeactivated,
		EntityType: EntityType,
		EntityID:   r.id,
		Action:     events.ActionUpdate,
		FromState:  string(StatusActive),
		ToState:    string(StatusInactive),
		ActorID:    actorID,
		Note:       note,
		OccurredAt: at,
	})
	return nil
}

// IsExpired reports a time-bounded rule whose window ended before today.
func (r *Rule) IsExpired(today kernel.Date) bool {
	return r.effectiveTo != nil && r.effectiveTo.Before(today)
}
