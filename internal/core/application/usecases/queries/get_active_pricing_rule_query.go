package queries

import (
	"errors"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"
	"agrirent/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActivePricingRuleQueryIsNotConstructed = errors.New(
	"GetActivePricingRuleQuery must be created via NewGetActivePricingRuleQuery constructor",
)

// GetActivePricingRuleQuery asks which rule prices a category at a location on a day.
type GetActivePricingRuleQuery struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID
	location   kernel.LocationCode
	date       kernel.Date

	guard guard.ConstructorGuard
}

func NewGetActivePricingRuleQuery(
	categoryID kernel.UUID,
	location kernel.LocationCode,
	date kernel.Date,
) (GetActivePricingRuleQuery, error) {
	var dateErr error
	if date.IsZero() {
		dateErr = errs.NewValueIsRequiredError("date")
	}
	if err := errors.Join(categoryID.Validate(), location.Validate(), dateErr); err != nil {
		return GetActivePricingRuleQuery{}, err
	}

	return GetActivePricingRuleQuery{
		categoryID: categoryID,
		location:   location,
		date:       date,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetActivePricingRuleQuery) Validate() error {
	return q.guard.Validate(ErrGetActivePricingRuleQueryIsNotConstructed)
}

func (q GetActivePricingRuleQuery) CategoryID() kernel.UUID { return q.categoryID }

func (q GetActivePricingRuleQuery) Location() kernel.LocationCode { return q.location }

func (q GetActivePricingRuleQuery) Date() kernel.Date { return q.date }

// GetActivePricingRuleQueryResponse describes the rule in force. Standing is
// true when no time-bounded rule covered the date.
type GetActivePricingRuleQueryResponse struct {
	RuleID        kernel.UUID
	CategoryID    kernel.UUID
	Location      string
	Rates         []RateView
	EffectiveFrom kernel.Date
	EffectiveTo   *kernel.Date
	Standing      bool
}

type RateView struct {
	Metric string
	Amount decimal.Decimal
}
