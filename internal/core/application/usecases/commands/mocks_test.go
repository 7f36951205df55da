package commands_test

import (
	"context"
	"testing"
	"time"

	"agrirent/internal/core/application/usecases/commands"
	"agrirent/internal/core/domain/model/device"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/core/domain/model/operator"
	"agrirent/internal/core/domain/model/order"
	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/core/domain/model/threshold"
	"agrirent/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

var clock = fixedClock{at: now}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockLeaseRepository struct{ mock.Mock }

func (m *MockLeaseRepository) Add(ctx context.Context, l *lease.Lease) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLeaseRepository) Update(ctx context.Context, l *lease.Lease) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLeaseRepository) Get(ctx context.Context, id kernel.UUID) (*lease.Lease, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*lease.Lease)
	return l, args.Error(1)
}

func (m *MockLeaseRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeaseRepository) ListPendingStartingBy(ctx context.Context, day kernel.Date) ([]*lease.Lease, error) {
	args := m.Called(ctx, day)
	ls, _ := args.Get(0).([]*lease.Lease)
	return ls, args.Error(1)
}

type MockDeviceRepository struct{ mock.Mock }

func (m *MockDeviceRepository) Add(ctx context.Context, d *device.Device) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeviceRepository) Update(ctx context.Context, d *device.Device) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeviceRepository) Get(ctx context.Context, id kernel.UUID) (*device.Device, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*device.Device)
	return d, args.Error(1)
}

type MockOperatorRepository struct{ mock.Mock }

func (m *MockOperatorRepository) Add(ctx context.Context, o *operator.Operator) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOperatorRepository) Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*operator.Operator)
	return o, args.Error(1)
}

type MockPricingRuleRepository struct{ mock.Mock }

func (m *MockPricingRuleRepository) Add(ctx context.Context, r *pricing.Rule) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockPricingRuleRepository) Update(ctx context.Context, r *pricing.Rule) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockPricingRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*pricing.Rule)
	return r, args.Error(1)
}

func (m *MockPricingRuleRepository) ListActive(
	ctx context.Context,
	categoryID kernel.UUID,
	location kernel.LocationCode,
) ([]*pricing.Rule, error) {
	args := m.Called(ctx, categoryID, location)
	rs, _ := args.Get(0).([]*pricing.Rule)
	return rs, args.Error(1)
}

func (m *MockPricingRuleRepository) ListExpired(ctx context.Context, day kernel.Date) ([]*pricing.Rule, error) {
	args := m.Called(ctx, day)
	rs, _ := args.Get(0).([]*pricing.Rule)
	return rs, args.Error(1)
}

type MockThresholdConfigRepository struct{ mock.Mock }

func (m *MockThresholdConfigRepository) Add(ctx context.Context, c *threshold.Config) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockThresholdConfigRepository) Update(ctx context.Context, c *threshold.Config) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockThresholdConfigRepository) GetActiveByCategory(
	ctx context.Context,
	categoryID kernel.UUID,
) (*threshold.Config, error) {
	args := m.Called(ctx, categoryID)
	c, _ := args.Get(0).(*threshold.Config)
	return c, args.Error(1)
}

// MockUoW serves every command family. Repository getters return the
// repositories it was built with.
type MockUoW struct {
	mock.Mock

	orders     *MockOrderRepository
	leases     *MockLeaseRepository
	devices    *MockDeviceRepository
	operators  *MockOperatorRepository
	rules      *MockPricingRuleRepository
	thresholds *MockThresholdConfigRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:     new(MockOrderRepository),
		leases:     new(MockLeaseRepository),
		devices:    new(MockDeviceRepository),
		operators:  new(MockOperatorRepository),
		rules:      new(MockPricingRuleRepository),
		thresholds: new(MockThresholdConfigRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository { return m.orders }

func (m *MockUoW) LeaseRepository() ports.LeaseRepository { return m.leases }

func (m *MockUoW) DeviceRepository() ports.DeviceRepository { return m.devices }

func (m *MockUoW) OperatorRepository() ports.OperatorRepository { return m.operators }

func (m *MockUoW) PricingRuleRepository() ports.PricingRuleRepository { return m.rules }

func (m *MockUoW) ThresholdConfigRepository() ports.ThresholdConfigRepository { return m.thresholds }

// expectTx registers Begin, the deferred Rollback and, when commit is set, Commit.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil)
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil)
}

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.leases.AssertExpectations(t)
	m.devices.AssertExpectations(t)
	m.operators.AssertExpectations(t)
	m.rules.AssertExpectations(t)
	m.thresholds.AssertExpectations(t)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockLeaseUoWFactory struct{ mock.Mock }

func (m *MockLeaseUoWFactory) Create() commands.LeaseUoW {
	return m.Called().Get(0).(commands.LeaseUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func actorWithID(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func location(t *testing.T) kernel.LocationCode {
	t.Helper()
	loc, err := kernel.NewLocationCode("KA-01")
	require.NoError(t, err)
	return loc
}

func newDevice(t *testing.T, serving *kernel.UUID) *device.Device {
	t.Helper()
	d, err := device.NewDevice(kernel.NewUUID(), kernel.NewUUID(), location(t), serving)
	require.NoError(t, err)
	return d
}

func newThreshold(t *testing.T, categoryID kernel.UUID, maxHours, maxArea float64) *threshold.Config {
	t.Helper()
	c, err := threshold.RestoreConfig(kernel.NewUUID(), categoryID, maxHours, maxArea,
		kernel.NewDate(2025, 1, 1), nil, threshold.StatusActive, now)
	require.NoError(t, err)
	return c
}

func newRequester(t *testing.T, id kernel.UUID) order.Requester {
	t.Helper()
	r, err := order.NewRequester(id, "Ravi Kumar", "+91 98450 00000")
	require.NoError(t, err)
	return r
}

// restoreOrder builds a stored order in the given status.
func restoreOrder(t *testing.T, kind order.Kind, status order.Status, requesterID kernel.UUID, serving *kernel.UUID) *order.Order {
	t.Helper()
	handler, err := order.HandlerFor(kind, serving)
	require.NoError(t, err)
	hours := 120.0
	usage, err := order.NewUsage(&hours, nil)
	require.NoError(t, err)
	period, err := order.NewPeriod(kernel.NewDate(2025, 4, 10), kernel.NewDate(2025, 6, 30))
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), kind, status, kernel.NewUUID(), newRequester(t, requesterID),
		handler, usage, period, "", now, now, 1)
	require.NoError(t, err)
	return o
}

func newActiveLease(t *testing.T, intermediaryID kernel.UUID) *lease.Lease {
	t.Helper()
	c, err := lease.NewCommitment(lease.CommitmentHours, 120)
	require.NoError(t, err)
	today := kernel.DateOf(now)
	l, err := lease.NewLease(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), intermediaryID,
		c, decimal.NewFromInt(60000), decimal.NewFromInt(5000), today, kernel.NewUUID(), "", today, now)
	require.NoError(t, err)
	l.ClearDomainEvents()
	return l
}

func newRule(t *testing.T, categoryID kernel.UUID, from kernel.Date, to *kernel.Date) *pricing.Rule {
	t.Helper()
	rate, err := pricing.NewRate(pricing.PerHour, decimal.NewFromInt(500))
	require.NoError(t, err)
	r, err := pricing.NewRule(kernel.NewUUID(), categoryID, location(t), []pricing.Rate{rate}, from, to, nil, now)
	require.NoError(t, err)
	return r
}
