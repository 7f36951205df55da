package auditrepo_test

import (
	"context"
	"testing"
	"time"

	"agrirent/internal/adapters/out/postgres/auditrepo"
	"agrirent/internal/adapters/out/postgres/pgtest"
	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/audit"
	"agrirent/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormAuditLogRepository(t *testing.T) {
	ctx := context.Background()
	container, db, err := pgtest.Start(ctx, &auditrepo.AuditLogDTO{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	repo := auditrepo.NewGormAuditLogRepository(db)
	at := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)

	t.Run("should list the trail oldest first", func(t *testing.T) {
		orderID, actorID := kernel.NewUUID(), kernel.NewUUID()
		created, err := audit.NewEntry(kernel.NewUUID(), "order", orderID, events.ActionCreate,
			"", "INTEREST_RAISED", &actorID, "", at)
		require.NoError(t, err)
		accepted, err := audit.NewEntry(kernel.NewUUID(), "order", orderID, events.ActionUpdate,
			"INTEREST_RAISED", "ACCEPTED", &actorID, "approved", at.Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, repo.Append(ctx, accepted))
		require.NoError(t, repo.Append(ctx, created))

		trail, err := repo.ListByEntity(ctx, "order", orderID)

		require.NoError(t, err)
		require.Len(t, trail, 2)
		assert.Equal(t, "INTEREST_RAISED", trail[0].ToState())
		assert.Equal(t, "ACCEPTED", trail[1].ToState())
		assert.Equal(t, "approved", trail[1].Note())
		require.NotNil(t, trail[1].ActorID())
		assert.True(t, trail[1].ActorID().IsEqual(actorID))
	})

	t.Run("should ignore a redelivered entry", func(t *testing.T) {
		leaseID := kernel.NewUUID()
		entry, err := audit.NewEntry(kernel.NewUUID(), "lease", leaseID, events.ActionCreate,
			"", "PENDING", nil, "", at)
		require.NoError(t, err)

		require.NoError(t, repo.Append(ctx, entry))
		require.NoError(t, repo.Append(ctx, entry))

		trail, err := repo.ListByEntity(ctx, "lease", leaseID)
		require.NoError(t, err)
		require.Len(t, trail, 1)
		assert.Nil(t, trail[0].ActorID())
	})
}
