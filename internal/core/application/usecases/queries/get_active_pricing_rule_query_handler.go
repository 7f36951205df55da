package queries

import (
	"context"

	"agrirent/internal/core/domain/services"
	"agrirent/internal/pkg/errs"
)

// GetActivePricingRuleQueryHandler resolves the rule through the pricing
// resolver so reads and lease estimates agree on precedence.
type GetActivePricingRuleQueryHandler struct {
	resolver *services.PricingResolver
}

func NewGetActivePricingRuleQueryHandler(rules services.PricingRuleReader) (GetActivePricingRuleQueryHandler, error) {
	resolver, err := services.NewPricingResolver(rules)
	if err != nil {
		return GetActivePricingRuleQueryHandler{}, err
	}
	return GetActivePricingRuleQueryHandler{resolver: resolver}, nil
}

// Handle returns *errs.ObjectNotFoundError when the scope has no rule for the date.
func (h GetActivePricingRuleQueryHandler) Handle(
	ctx context.Context,
	query GetActivePricingRuleQuery,
) (GetActivePricingRuleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActivePricingRuleQueryResponse{}, err
	}

	rule, err := h.resolver.GetActiveRuleForDate(ctx, query.CategoryID(), query.Location(), query.Date())
	if err != nil {
		return GetActivePricingRuleQueryResponse{}, err
	}
	if rule == nil {
		return GetActivePricingRuleQueryResponse{}, errs.NewObjectNotFoundError(
			"pricing rule", query.CategoryID().String()+"@"+query.Location().String()+"@"+query.Date().String())
	}

	rates := make([]RateView, 0, len(rule.Rates()))
	for _, rate := range rule.Rates() {
		rates = append(rates, RateView{Metric: string(rate.Metric()), Amount: rate.Amount()})
	}

	return GetActivePricingRuleQueryResponse{
		RuleID:        rule.ID(),
		CategoryID:    rule.CategoryID(),
		Location:      rule.Location().String(),
		Rates:         rates,
		EffectiveFrom: rule.EffectiveFrom(),
		EffectiveTo:   rule.EffectiveTo(),
		Standing:      rule.IsStanding(),
	}, nil
}
