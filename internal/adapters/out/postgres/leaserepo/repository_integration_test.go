package leaserepo_test

import (
	"context"
	"testing"
	"time"

	"agrirent/internal/adapters/out/postgres/leaserepo"
	"agrirent/internal/adapters/out/postgres/pgtest"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var (
	now   = time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	today = kernel.DateOf(now)
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type LeaseRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *leaserepo.GormLeaseRepository
	tracker    *MockAggregateTracker
}

func (suite *LeaseRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), &leaserepo.LeaseDTO{})
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *LeaseRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE leases").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = leaserepo.NewGormLeaseRepository(suite.db, suite.tracker)
}

func (suite *LeaseRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LeaseRepositoryIntegrationTestSuite) newLease(orderID kernel.UUID, start kernel.Date) *lease.Lease {
	c, err := lease.NewCommitment(lease.CommitmentAcres, 40)
	suite.Require().NoError(err)
	l, err := lease.NewLease(kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(),
		c, decimal.RequireFromString("48000.50"), decimal.NewFromInt(5000), start,
		kernel.NewUUID(), "kharif season", today, now)
	suite.Require().NoError(err)
	return l
}

func (suite *LeaseRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	l := suite.newLease(kernel.NewUUID(), today)
	admin := kernel.NewUUID()
	suite.Require().NoError(l.AssignOperator(kernel.NewUUID(), lease.RolePrimary, true, &admin, now))
	doc, err := lease.NewAttachment("AGREEMENT", "https://files.example.com/lease.pdf", now)
	suite.Require().NoError(err)
	suite.Require().NoError(l.AttachDocument(doc, admin, now))

	suite.Require().NoError(suite.repository.Add(ctx, l))
	got, err := suite.repository.Get(ctx, l.ID())

	suite.Require().NoError(err)
	suite.True(got.OrderID().IsEqual(l.OrderID()))
	suite.Equal(lease.Active, got.Status())
	suite.Equal(lease.CommitmentAcres, got.Commitment().Kind())
	suite.True(decimal.RequireFromString("48000.50").Equal(got.EstimatedPrice()))
	suite.True(got.StartDate().Equal(today))
	suite.Nil(got.EndDate())
	suite.Require().Len(got.Operators(), 1)
	suite.Equal(lease.RolePrimary, got.Operators()[0].Role())
	suite.Require().Len(got.Attachments(), 1)
	suite.Equal("https://files.example.com/lease.pdf", got.Attachments()[0].URL())
	suite.Equal("kharif season", got.Notes())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", l.ID(), l)
}

func (suite *LeaseRepositoryIntegrationTestSuite) TestAdd_SecondLeaseForOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newLease(orderID, today)))

	err := suite.repository.Add(ctx, suite.newLease(orderID, today))

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *LeaseRepositoryIntegrationTestSuite) TestExistsForOrder() {
	ctx := context.Background()
	l := suite.newLease(kernel.NewUUID(), today)
	suite.Require().NoError(suite.repository.Add(ctx, l))

	exists, err := suite.repository.ExistsForOrder(ctx, l.OrderID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsForOrder(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *LeaseRepositoryIntegrationTestSuite) TestUpdate_CompleteAndStale() {
	ctx := context.Background()
	l := suite.newLease(kernel.NewUUID(), today)
	suite.Require().NoError(suite.repository.Add(ctx, l))
	stale, err := suite.repository.Get(ctx, l.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(l.Complete(today.AddDays(20), kernel.NewUUID(), "returned", now))
	suite.Require().NoError(suite.repository.Update(ctx, l))
	suite.Equal(int64(2), l.Version())

	got, err := suite.repository.Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Equal(lease.Completed, got.Status())
	suite.Require().NotNil(got.EndDate())
	suite.True(got.EndDate().Equal(today.AddDays(20)))

	suite.Require().NoError(stale.Complete(today.AddDays(5), kernel.NewUUID(), "", now))
	suite.Require().ErrorIs(suite.repository.Update(ctx, stale), errs.ErrVersionIsInvalid)
}

func (suite *LeaseRepositoryIntegrationTestSuite) TestListPendingStartingBy() {
	ctx := context.Background()
	due := suite.newLease(kernel.NewUUID(), today.AddDays(2))
	later := suite.newLease(kernel.NewUUID(), today.AddDays(10))
	active := suite.newLease(kernel.NewUUID(), today)
	for _, l := range []*lease.Lease{due, later, active} {
		suite.Require().NoError(suite.repository.Add(ctx, l))
	}

	leases, err := suite.repository.ListPendingStartingBy(ctx, today.AddDays(2))

	suite.Require().NoError(err)
	suite.Require().Len(leases, 1)
	suite.True(leases[0].ID().IsEqual(due.ID()))
	suite.Equal(lease.Pending, leases[0].Status())
}

func (suite *LeaseRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestLeaseRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LeaseRepositoryIntegrationTestSuite))
}
