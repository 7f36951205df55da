package pricingrepo_test

import (
	"context"
	"testing"
	"time"

	"agrirent/internal/adapters/out/postgres/pgtest"
	"agrirent/internal/adapters/out/postgres/pricingrepo"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type PricingRuleRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *pricingrepo.GormPricingRuleRepository
	category   kernel.UUID
	location   kernel.LocationCode
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), &pricingrepo.PricingRuleDTO{})
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pricing_rules").Error)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = pricingrepo.NewGormPricingRuleRepository(suite.db, tracker)

	location, err := kernel.NewLocationCode("MH-12")
	suite.Require().NoError(err)
	suite.category = kernel.NewUUID()
	suite.location = location
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) addRule(from kernel.Date, to *kernel.Date) *pricing.Rule {
	hourly, err := pricing.NewRate(pricing.PerHour, decimal.RequireFromString("450.75"))
	suite.Require().NoError(err)
	acre, err := pricing.NewRate(pricing.PerAcre, decimal.NewFromInt(1200))
	suite.Require().NoError(err)

	rule, err := pricing.NewRule(kernel.NewUUID(), suite.category, suite.location,
		[]pricing.Rate{hourly, acre}, from, to, nil, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), rule))
	return rule
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	to := kernel.NewDate(2025, 6, 30)
	rule := suite.addRule(kernel.NewDate(2025, 6, 1), &to)

	got, err := suite.repository.Get(context.Background(), rule.ID())

	suite.Require().NoError(err)
	suite.True(got.IsActive())
	suite.Require().NotNil(got.EffectiveTo())
	suite.True(got.EffectiveTo().Equal(to))
	amount, ok := got.RateFor(pricing.PerHour)
	suite.Require().True(ok)
	suite.True(decimal.RequireFromString("450.75").Equal(amount))
	suite.Len(got.Rates(), 2)
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestListActive_SkipsInactiveAndOtherScopes() {
	ctx := context.Background()
	standing := suite.addRule(kernel.NewDate(2025, 1, 1), nil)
	to := kernel.NewDate(2025, 6, 30)
	bounded := suite.addRule(kernel.NewDate(2025, 6, 1), &to)
	retired := suite.addRule(kernel.NewDate(2025, 3, 1), &to)
	suite.Require().NoError(retired.Deactivate(nil, "", now))
	suite.Require().NoError(suite.repository.Update(ctx, retired))

	rules, err := suite.repository.ListActive(ctx, suite.category, suite.location)

	suite.Require().NoError(err)
	suite.Require().Len(rules, 2)
	suite.True(rules[0].ID().IsEqual(standing.ID()))
	suite.True(rules[1].ID().IsEqual(bounded.ID()))

	other, err := suite.repository.ListActive(ctx, kernel.NewUUID(), suite.location)
	suite.Require().NoError(err)
	suite.Empty(other)
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestListExpired() {
	ended := kernel.NewDate(2025, 5, 31)
	expired := suite.addRule(kernel.NewDate(2025, 5, 1), &ended)
	endsToday := kernel.NewDate(2025, 6, 1)
	suite.addRule(kernel.NewDate(2025, 5, 15), &endsToday)
	suite.addRule(kernel.NewDate(2025, 1, 1), nil)

	rules, err := suite.repository.ListExpired(context.Background(), kernel.DateOf(now))

	suite.Require().NoError(err)
	suite.Require().Len(rules, 1)
	suite.True(rules[0].ID().IsEqual(expired.ID()))
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	hourly, err := pricing.NewRate(pricing.PerHour, decimal.NewFromInt(100))
	suite.Require().NoError(err)
	rule, err := pricing.NewRule(kernel.NewUUID(), suite.category, suite.location,
		[]pricing.Rate{hourly}, kernel.NewDate(2025, 1, 1), nil, nil, now)
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), rule)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestPricingRuleRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PricingRuleRepositoryIntegrationTestSuite))
}
