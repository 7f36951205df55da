package commands_test

import (
	"testing"

	"agrirent/internal/core/application/usecases/commands"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/threshold"
	"agrirent/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setThresholdCommand(t *testing.T, categoryID kernel.UUID, hours, area float64) commands.SetThresholdConfigCommand {
	t.Helper()
	cmd, err := commands.NewSetThresholdConfigCommand(kernel.NewUUID(), newActor(t, kernel.RoleAdmin), categoryID,
		hours, area, kernel.DateOf(now), nil)
	require.NoError(t, err)
	return cmd
}

func TestSetThresholdConfigCommandHandler_Handle_First(t *testing.T) {
	ctx := t.Context()
	categoryID := kernel.NewUUID()

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.thresholds.On("GetActiveByCategory", ctx, categoryID).
		Return(nil, errs.NewObjectNotFoundError("threshold config", categoryID)).Once()
	uow.thresholds.On("Add", ctx, mock.AnythingOfType("*threshold.Config")).Return(nil).Once()

	cfg, err := commands.NewSetThresholdConfigCommandHandler(catalogFactory(uow), clock).
		Handle(ctx, setThresholdCommand(t, categoryID, 8, 5))

	require.NoError(t, err)
	assert.True(t, cfg.IsActive())
	assert.InDelta(t, 8.0, cfg.MaxRentalHours(), 0.0001)
	uow.assertAll(t)
}

func TestSetThresholdConfigCommandHandler_Handle_Replace(t *testing.T) {
	ctx := t.Context()
	categoryID := kernel.NewUUID()
	current := newThreshold(t, categoryID, 10, 5)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.thresholds.On("GetActiveByCategory", ctx, categoryID).Return(current, nil).Once()
	uow.thresholds.On("Update", ctx, current).Return(nil).Once()
	uow.thresholds.On("Add", ctx, mock.AnythingOfType("*threshold.Config")).Return(nil).Once()

	cfg, err := commands.NewSetThresholdConfigCommandHandler(catalogFactory(uow), clock).
		Handle(ctx, setThresholdCommand(t, categoryID, 12, 6))

	require.NoError(t, err)
	assert.Equal(t, threshold.StatusInactive, current.Status())
	assert.True(t, cfg.IsActive())
	uow.assertAll(t)
}

func TestSetThresholdConfigCommandHandler_Handle_NegativeLimit(t *testing.T) {
	factory := new(MockCatalogUoWFactory)

	_, err := commands.NewSetThresholdConfigCommandHandler(factory, clock).
		Handle(t.Context(), setThresholdCommand(t, kernel.NewUUID(), -1, 5))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}
