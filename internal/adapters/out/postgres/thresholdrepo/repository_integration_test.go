package thresholdrepo_test

import (
	"context"
	"testing"
	"time"

	"agrirent/internal/adapters/out/postgres/pgtest"
	"agrirent/internal/adapters/out/postgres/thresholdrepo"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/threshold"
	"agrirent/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

func TestGormThresholdConfigRepository(t *testing.T) {
	ctx := context.Background()
	container, db, err := pgtest.Start(ctx, &thresholdrepo.ThresholdConfigDTO{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	repo := thresholdrepo.NewGormThresholdConfigRepository(db, tracker)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should return the active config of the category", func(t *testing.T) {
		category := kernel.NewUUID()
		old, err := threshold.NewConfig(kernel.NewUUID(), category, 100, 20, kernel.NewDate(2025, 1, 1), nil, nil, at)
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, old))

		old.Deactivate(at.Add(time.Hour))
		require.NoError(t, repo.Update(ctx, old))
		current, err := threshold.NewConfig(kernel.NewUUID(), category, 150, 25, kernel.NewDate(2025, 3, 1), nil, nil, at.Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, current))

		got, err := repo.GetActiveByCategory(ctx, category)

		require.NoError(t, err)
		assert.True(t, got.ID().IsEqual(current.ID()))
		assert.InDelta(t, 150.0, got.MaxRentalHours(), 0.0001)
		assert.InDelta(t, 25.0, got.MaxRentalArea(), 0.0001)
		assert.True(t, got.IsActive())
	})

	t.Run("should report a category without config", func(t *testing.T) {
		_, err := repo.GetActiveByCategory(ctx, kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
