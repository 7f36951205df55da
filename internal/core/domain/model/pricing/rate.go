package pricing

import (
	"fmt"

	"agrirent/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Metric is the unit a rate is charged per.
type Metric string

const (
	PerHour Metric = "PER_HOUR"
	PerAcre Metric = "PER_ACRE"
)

func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m Metric) Validate() error {
	if m != PerHour && m != PerAcre {
		return errs.NewValueIsInvalidErrorWithCause("pricing metric", fmt.Errorf("%q is not PER_HOUR or PER_ACRE", string(m)))
	}
	return nil
}

// Rate is a price per metric unit.
type Rate struct {
	metric Metric
	amount decimal.Decimal
}

// NewRate requires a known metric and a positive amount.
func NewRate(metric Metric, amount decimal.Decimal) (Rate, error) {
	if err := metric.Validate(); err != nil {
		return Rate{}, err
	}
	if !amount.IsPositive() {
		return Rate{}, errs.NewValueIsInvalidErrorWithCause("rate", fmt.Errorf("%s is not greater than 0", amount))
	}
	return Rate{metric: metric, amount: amount}, nil
}

func (r Rate) Metric() Metric { return r.metric }

func (r Rate) Amount() decimal.Decimal { return r.amount }
