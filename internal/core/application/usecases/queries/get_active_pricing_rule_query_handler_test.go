package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"agrirent/internal/core/application/usecases/queries"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPricingRuleReader struct {
	mock.Mock
}

func (m *MockPricingRuleReader) ListActive(
	ctx context.Context,
	categoryID kernel.UUID,
	location kernel.LocationCode,
) ([]*pricing.Rule, error) {
	args := m.Called(ctx, categoryID, location)
	rules, _ := args.Get(0).([]*pricing.Rule)
	return rules, args.Error(1)
}

func pricingRule(t *testing.T, categoryID kernel.UUID, loc kernel.LocationCode, amount int64, from kernel.Date, to *kernel.Date) *pricing.Rule {
	t.Helper()
	rate, err := pricing.NewRate(pricing.PerHour, decimal.NewFromInt(amount))
	require.NoError(t, err)
	r, err := pricing.NewRule(kernel.NewUUID(), categoryID, loc, []pricing.Rate{rate}, from, to, nil,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return r
}

func TestGetActivePricingRuleQueryHandler(t *testing.T) {
	ctx := context.Background()
	categoryID := kernel.NewUUID()
	loc, err := kernel.NewLocationCode("KA-01")
	require.NoError(t, err)

	seasonEnd := kernel.NewDate(2025, 6, 30)
	standing := pricingRule(t, categoryID, loc, 400, kernel.NewDate(2025, 1, 1), nil)
	season := pricingRule(t, categoryID, loc, 550, kernel.NewDate(2025, 6, 1), &seasonEnd)

	newHandler := func(t *testing.T, rules []*pricing.Rule, err error) queries.GetActivePricingRuleQueryHandler {
		t.Helper()
		reader := new(MockPricingRuleReader)
		reader.On("ListActive", ctx, categoryID, loc).Return(rules, err)
		h, hErr := queries.NewGetActivePricingRuleQueryHandler(reader)
		require.NoError(t, hErr)
		return h
	}
	query := func(t *testing.T, day kernel.Date) queries.GetActivePricingRuleQuery {
		t.Helper()
		q, qErr := queries.NewGetActivePricingRuleQuery(categoryID, loc, day)
		require.NoError(t, qErr)
		return q
	}

	t.Run("should prefer the covering time-bounded rule", func(t *testing.T) {
		h := newHandler(t, []*pricing.Rule{standing, season}, nil)

		resp, err := h.Handle(ctx, query(t, kernel.NewDate(2025, 6, 15)))

		require.NoError(t, err)
		assert.True(t, resp.RuleID.IsEqual(season.ID()))
		assert.False(t, resp.Standing)
		require.Len(t, resp.Rates, 1)
		assert.Equal(t, "PER_HOUR", resp.Rates[0].Metric)
		assert.True(t, decimal.NewFromInt(550).Equal(resp.Rates[0].Amount))
		require.NotNil(t, resp.EffectiveTo)
	})

	t.Run("should fall back to the standing rule", func(t *testing.T) {
		h := newHandler(t, []*pricing.Rule{standing, season}, nil)

		resp, err := h.Handle(ctx, query(t, kernel.NewDate(2025, 7, 1)))

		require.NoError(t, err)
		assert.True(t, resp.RuleID.IsEqual(standing.ID()))
		assert.True(t, resp.Standing)
		assert.Nil(t, resp.EffectiveTo)
	})

	t.Run("should report a scope without rules", func(t *testing.T) {
		h := newHandler(t, nil, nil)

		_, err := h.Handle(ctx, query(t, kernel.NewDate(2025, 7, 1)))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should pass storage errors through", func(t *testing.T) {
		boom := errors.New("connection reset")
		h := newHandler(t, nil, boom)

		_, err := h.Handle(ctx, query(t, kernel.NewDate(2025, 7, 1)))

		require.ErrorIs(t, err, boom)
	})

	t.Run("should reject a query built without constructor", func(t *testing.T) {
		h := newHandler(t, nil, nil)
		_, err := h.Handle(ctx, queries.GetActivePricingRuleQuery{})
		require.ErrorIs(t, err, queries.ErrGetActivePricingRuleQueryIsNotConstructed)
	})
}

func TestNewGetActivePricingRuleQueryHandler_RequiresReader(t *testing.T) {
	_, err := queries.NewGetActivePricingRuleQueryHandler(nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
