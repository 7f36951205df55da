package commands_test

import (
	"errors"
	"testing"

	"agrirent/internal/core/application/usecases/commands"
	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/order"
	"agrirent/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createOrderCommand(t *testing.T, deviceID kernel.UUID, hours, area *float64) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), deviceID, newRequester(t, kernel.NewUUID()),
		hours, area, kernel.NewDate(2025, 5, 1), kernel.NewDate(2025, 5, 10), "", false)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_LeaseAboveThreshold(t *testing.T) {
	ctx := t.Context()
	d := newDevice(t, kernel.UUIDPtr(kernel.NewUUID()))
	hours := 10.0
	cmd := createOrderCommand(t, d.ID(), &hours, nil)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.devices.On("Get", ctx, d.ID()).Return(d, nil).Once()
	uow.thresholds.On("GetActiveByCategory", ctx, d.CategoryID()).
		Return(newThreshold(t, d.CategoryID(), 8, 100), nil).Once()
	uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	o, err := commands.NewCreateOrderCommandHandler(factory, clock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Lease, o.Kind())
	assert.Equal(t, order.InterestRaised, o.Status())
	assert.Equal(t, order.HandlerAdmin, o.Handler().Kind())
	require.Len(t, o.DomainEvents(), 1)
	assert.Equal(t, events.OrderCreated, o.DomainEvents()[0].Name)
	uow.assertAll(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RentHandledByIntermediary(t *testing.T) {
	ctx := t.Context()
	serving := kernel.NewUUID()
	d := newDevice(t, &serving)
	hours := 4.0
	cmd := createOrderCommand(t, d.ID(), &hours, nil)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.devices.On("Get", ctx, d.ID()).Return(d, nil).Once()
	uow.thresholds.On("GetActiveByCategory", ctx, d.CategoryID()).
		Return(newThreshold(t, d.CategoryID(), 8, 5), nil).Once()
	uow.orders.On("Add", ctx, mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	o, err := commands.NewCreateOrderCommandHandler(factory, clock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Rent, o.Kind())
	assert.Equal(t, order.HandlerIntermediary, o.Handler().Kind())
	assert.True(t, o.Handler().ID().IsEqual(serving))
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_RentWithoutIntermediary(t *testing.T) {
	ctx := t.Context()
	d := newDevice(t, nil)
	cmd := createOrderCommand(t, d.ID(), nil, nil)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.devices.On("Get", ctx, d.ID()).Return(d, nil).Once()
	uow.thresholds.On("GetActiveByCategory", ctx, d.CategoryID()).
		Return(newThreshold(t, d.CategoryID(), 8, 5), nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory, clock).Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrRentWithoutIntermediary)
	assert.Equal(t, errs.CodeValidation, errs.CodeOf(err))
	uow.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_UnknownDevice(t *testing.T) {
	ctx := t.Context()
	deviceID := kernel.NewUUID()
	cmd := createOrderCommand(t, deviceID, nil, nil)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.devices.On("Get", ctx, deviceID).Return(nil, errs.NewObjectNotFoundError("device", deviceID)).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory, clock).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_MissingThresholdConfig(t *testing.T) {
	ctx := t.Context()
	d := newDevice(t, nil)
	cmd := createOrderCommand(t, d.ID(), nil, nil)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.devices.On("Get", ctx, d.ID()).Return(d, nil).Once()
	uow.thresholds.On("GetActiveByCategory", ctx, d.CategoryID()).
		Return(nil, errs.NewObjectNotFoundError("threshold config", d.CategoryID())).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory, clock).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	_, err := commands.NewCreateOrderCommandHandler(factory, clock).Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := createOrderCommand(t, kernel.NewUUID(), nil, nil)

	uow := newMockUoW()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory, clock).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	d := newDevice(t, kernel.UUIDPtr(kernel.NewUUID()))
	cmd := createOrderCommand(t, d.ID(), nil, nil)

	uow := newMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.devices.On("Get", ctx, d.ID()).Return(d, nil).Once()
	uow.thresholds.On("GetActiveByCategory", ctx, d.CategoryID()).
		Return(newThreshold(t, d.CategoryID(), 0, 0), nil).Once()
	uow.orders.On("Add", ctx, mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory, clock).Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	uow.assertAll(t)
}
