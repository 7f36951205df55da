package services

import (
	"context"
	"slices"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricingRuleReader lists the ACTIVE rules of one (category, location) scope,
// standing and time-bounded alike.
type PricingRuleReader interface {
	ListActive(ctx context.Context, categoryID kernel.UUID, location kernel.LocationCode) ([]*pricing.Rule, error)
}

// PricingResolver resolves which price rule applies on a given day.
//
// Resolution order for a date:
//  1. the time-bounded ACTIVE rule covering the date with the earliest
//     effective-from (ties broken by id)
//  2. the ACTIVE standing rule
//  3. none
//
// All dates are compared as calendar days in UTC.
type PricingResolver struct {
	rules PricingRuleReader
}

func NewPricingResolver(rules PricingRuleReader) (*PricingResolver, error) {
	if rules == nil {
		return nil, errs.NewValueIsRequiredError("rules")
	}
	return &PricingResolver{rules: rules}, nil
}

// GetDefaultRule returns the ACTIVE standing rule of the scope, or nil.
func (r *PricingResolver) GetDefaultRule(
	ctx context.Context,
	categoryID kernel.UUID,
	location kernel.LocationCode,
) (*pricing.Rule, error) {
	rules, err := r.rules.ListActive(ctx, categoryID, location)
	if err != nil {
		return nil, err
	}
	return defaultRule(rules), nil
}

// GetTimeSpecificRules returns the ACTIVE time-bounded rules covering date,
// earliest effective-from first.
func (r *PricingResolver) GetTimeSpecificRules(
	ctx context.Context,
	categoryID kernel.UUID,
	location kernel.LocationCode,
	date kernel.Date,
) ([]*pricing.Rule, error) {
	rules, err := r.rules.ListActive(ctx, categoryID, location)
	if err != nil {
		return nil, err
	}
	return timeSpecific(rules, date), nil
}

// GetActiveRuleForDate returns the rule in force on date, or nil when the
// scope has neither a covering time-bounded rule nor a standing one.
func (r *PricingResolver) GetActiveRuleForDate(
	ctx context.Context,
	categoryID kernel.UUID,
	location kernel.LocationCode,
	date kernel.Date,
) (*pricing.Rule, error) {
	rules, err := r.rules.ListActive(ctx, categoryID, location)
	if err != nil {
		return nil, err
	}
	if covering := timeSpecific(rules, date); len(covering) > 0 {
		return covering[0], nil
	}
	return defaultRule(rules), nil
}

// CheckForConflicts returns the ACTIVE time-bounded rules of the candidate's
// scope whose window intersects the candidate's. Standing candidates have no
// window conflicts; their uniqueness is checked with HasActiveDefaultRule.
func (r *PricingResolver) CheckForConflicts(ctx context.Context, candidate *pricing.Rule) ([]*pricing.Rule, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	if candidate.IsStanding() {
		return nil, nil
	}

	rules, err := r.rules.ListActive(ctx, candidate.CategoryID(), candidate.Location())
	if err != nil {
		return nil, err
	}

	var conflicts []*pricing.Rule
	for _, existing := range rules {
		if existing.IsStanding() || existing.ID().IsEqual(candidate.ID()) || !existing.SameScope(candidate) {
			continue
		}
		if candidate.Overlaps(existing) {
			conflicts = append(conflicts, existing)
		}
	}
	sortByEffectiveFrom(conflicts)
	return conflicts, nil
}

// HasActiveDefaultRule gates publishing a device.
func (r *PricingResolver) HasActiveDefaultRule(
	ctx context.Context,
	categoryID kernel.UUID,
	location kernel.LocationCode,
) (bool, error) {
	rule, err := r.GetDefaultRule(ctx, categoryID, location)
	if err != nil {
		return false, err
	}
	return rule != nil, nil
}

// EstimatePrice multiplies the commitment by the matching rate of the rule in
// force on date: HOURS by PER_HOUR, ACRES by PER_ACRE. Without a rule or a
// matching rate the estimate is zero.
func (r *PricingResolver) EstimatePrice(
	ctx context.Context,
	categoryID kernel.UUID,
	location kernel.LocationCode,
	date kernel.Date,
	commitment lease.Commitment,
) (decimal.Decimal, error) {
	if err := commitment.Validate(); err != nil {
		return decimal.Zero, err
	}

	rule, err := r.GetActiveRuleForDate(ctx, categoryID, location, date)
	if err != nil || rule == nil {
		return decimal.Zero, err
	}

	metric := pricing.PerHour
	if commitment.Kind() == lease.CommitmentAcres {
		metric = pricing.PerAcre
	}
	rate, ok := rule.RateFor(metric)
	if !ok {
		return decimal.Zero, nil
	}
	return rate.Mul(decimal.NewFromFloat(commitment.Value())).Round(2), nil
}

func defaultRule(rules []*pricing.Rule) *pricing.Rule {
	var standing []*pricing.Rule
	for _, rule := range rules {
		if rule.IsActive() && rule.IsStanding() {
			standing = append(standing, rule)
		}
	}
	if len(standing) == 0 {
		return nil
	}
	sortByEffectiveFrom(standing)
	return standing[0]
}

func timeSpecific(rules []*pricing.Rule, date kernel.Date) []*pricing.Rule {
	var covering []*pricing.Rule
	for _, rule := range rules {
		if rule.IsActive() && !rule.IsStanding() && rule.Covers(date) {
			covering = append(covering, rule)
		}
	}
	sortByEffectiveFrom(covering)
	return covering
}

func sortByEffectiveFrom(rules []*pricing.Rule) {
	slices.SortStableFunc(rules, func(a, b *pricing.Rule) int {
		switch {
		case a.EffectiveFrom().Before(b.EffectiveFrom()):
			return -1
		case a.EffectiveFrom().After(b.EffectiveFrom()):
			return 1
		}
		switch as, bs := a.ID().String(), b.ID().String(); {
		case as < bs:
			return -1
		case as > bs:
			return 1
		}
		return 0
	})
}
