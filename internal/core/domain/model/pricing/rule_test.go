package pricing_test

import (
	"testing"
	"time"

	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func hourly(t *testing.T, amount int64) []pricing.Rate {
	t.Helper()
	r, err := pricing.NewRate(pricing.PerHour, decimal.NewFromInt(amount))
	require.NoError(t, err)
	return []pricing.Rate{r}
}

func window(t *testing.T, from, to string) (kernel.Date, *kernel.Date) {
	t.Helper()
	f, err := kernel.ParseDate(from)
	require.NoError(t, err)
	if to == "" {
		return f, nil
	}
	e, err := kernel.ParseDate(to)
	require.NoError(t, err)
	return f, &e
}

func rule(t *testing.T, from, to string) *pricing.Rule {
	t.Helper()
	loc, err := kernel.NewLocationCode("KA-01")
	require.NoError(t, err)
	f, e := window(t, from, to)
	r, err := pricing.NewRule(kernel.NewUUID(), kernel.NewUUID(), loc, hourly(t, 500), f, e, nil, now)
	require.NoError(t, err)
	return r
}

func TestNewRule(t *testing.T) {
	loc, _ := kernel.NewLocationCode("ka-01")

	t.Run("should create a standing rule", func(t *testing.T) {
		r := rule(t, "2024-01-01", "")

		assert.True(t, r.IsStanding())
		assert.True(t, r.IsActive())
		assert.Nil(t, r.EffectiveTo())
		evs := r.DomainEvents()
		require.Len(t, evs, 1)
		assert.Equal(t, events.PricingRuleCreated, evs[0].Name)
	})

	t.Run("should reject empty rates", func(t *testing.T) {
		_, err := pricing.NewRule(kernel.NewUUID(), kernel.NewUUID(), loc, nil, kernel.NewDate(2024, 1, 1), nil, nil, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject duplicated metrics", func(t *testing.T) {
		rates := append(hourly(t, 10), hourly(t, 20)...)
		_, err := pricing.NewRule(kernel.NewUUID(), kernel.NewUUID(), loc, rates, kernel.NewDate(2024, 1, 1), nil, nil, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "listed twice")
	})

	t.Run("should reject a window ending before it starts", func(t *testing.T) {
		f, e := window(t, "2024-06-10", "2024-06-01")
		_, err := pricing.NewRule(kernel.NewUUID(), kernel.NewUUID(), loc, hourly(t, 10), f, e, nil, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a non positive rate", func(t *testing.T) {
		_, err := pricing.NewRate(pricing.PerAcre, decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRule_Covers(t *testing.T) {
	bounded := rule(t, "2024-06-01", "2024-06-30")
	standing := rule(t, "2024-01-01", "")

	assert.True(t, bounded.Covers(kernel.NewDate(2024, 6, 1)))
	assert.True(t, bounded.Covers(kernel.NewDate(2024, 6, 30)))
	assert.False(t, bounded.Covers(kernel.NewDate(2024, 7, 1)))
	assert.False(t, bounded.Covers(kernel.NewDate(2024, 5, 31)))
	assert.True(t, standing.Covers(kernel.NewDate(2030, 1, 1)))
	assert.False(t, standing.Covers(kernel.NewDate(2023, 12, 31)))
}

func TestRule_Overlaps(t *testing.T) {
	candidate := rule(t, "2024-06-10", "2024-06-20")

	assert.True(t, candidate.Overlaps(rule(t, "2024-06-15", "2024-06-25")))
	assert.True(t, rule(t, "2024-06-15", "2024-06-25").Overlaps(candidate))
	assert.True(t, candidate.Overlaps(rule(t, "2024-06-20", "2024-06-21")))
	assert.False(t, candidate.Overlaps(rule(t, "2024-06-21", "2024-06-30")))
	assert.False(t, rule(t, "2024-06-21", "2024-06-30").Overlaps(candidate))
	assert.True(t, candidate.Overlaps(rule(t, "2024-01-01", "")))
}

func TestRule_RateFor(t *testing.T) {
	r := rule(t, "2024-01-01", "")

	rate, ok := r.RateFor(pricing.PerHour)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(500).Equal(rate))

	_, ok = r.RateFor(pricing.PerAcre)
	assert.False(t, ok)
}

func TestRule_Deactivate(t *testing.T) {
	r := rule(t, "2024-06-01", "2024-06-30")
	r.ClearDomainEvents()

	require.NoError(t, r.Deactivate(nil, "season over", now))
	assert.Equal(t, pricing.StatusInactive, r.Status())
	require.Len(t, r.DomainEvents(), 1)
	assert.Equal(t, events.PricingRuleDeactivated, r.DomainEvents()[0].Name)

	require.ErrorIs(t, r.Deactivate(nil, "", now), errs.ErrPreconditionFailed)
}

func TestRule_IsExpired(t *testing.T) {
	r := rule(t, "2024-06-01", "2024-06-30")

	assert.False(t, r.IsExpired(kernel.NewDate(2024, 6, 30)))
	assert.True(t, r.IsExpired(kernel.NewDate(2024, 7, 1)))
	assert.False(t, rule(t, "2024-01-01", "").IsExpired(kernel.NewDate(2099, 1, 1)))
}
