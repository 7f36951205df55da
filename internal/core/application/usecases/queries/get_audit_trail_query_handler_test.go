package queries_test

import (
	"context"
	"testing"
	"time"

	"agrirent/internal/core/application/usecases/queries"
	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/audit"
	"agrirent/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Append(ctx context.Context, entry *audit.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockAuditLogRepository) ListByEntity(
	ctx context.Context,
	entityType string,
	entityID kernel.UUID,
) ([]*audit.Entry, error) {
	args := m.Called(ctx, entityType, entityID)
	entries, _ := args.Get(0).([]*audit.Entry)
	return entries, args.Error(1)
}

func TestGetAuditTrailQueryHandler(t *testing.T) {
	ctx := context.Background()
	leaseID, adminID := kernel.NewUUID(), kernel.NewUUID()
	at := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	created, err := audit.NewEntry(kernel.NewUUID(), "lease", leaseID, events.ActionCreate,
		"", "PENDING", &adminID, "", at)
	require.NoError(t, err)
	activated, err := audit.NewEntry(kernel.NewUUID(), "lease", leaseID, events.ActionUpdate,
		"PENDING", "ACTIVE", nil, "start date reached", at.Add(48*time.Hour))
	require.NoError(t, err)

	repo := new(MockAuditLogRepository)
	repo.On("ListByEntity", ctx, "lease", leaseID).Return([]*audit.Entry{created, activated}, nil)
	h := queries.NewGetAuditTrailQueryHandler(repo)
	q, err := queries.NewGetAuditTrailQuery("lease", leaseID)
	require.NoError(t, err)

	trail, err := h.Handle(ctx, q)

	require.NoError(t, err)
	require.Len(t, trail, 2)
	assert.Equal(t, "CREATE", trail[0].Action)
	require.NotNil(t, trail[0].ActorID)
	assert.True(t, trail[0].ActorID.IsEqual(adminID))
	assert.Equal(t, "PENDING", trail[1].FromState)
	assert.Equal(t, "ACTIVE", trail[1].ToState)
	assert.Nil(t, trail[1].ActorID)
	assert.Equal(t, "start date reached", trail[1].Note)
	repo.AssertExpectations(t)
}

func TestGetAuditTrailQueryHandler_EmptyTrail(t *testing.T) {
	ctx := context.Background()
	id := kernel.NewUUID()
	repo := new(MockAuditLogRepository)
	repo.On("ListByEntity", ctx, "device", id).Return(nil, nil)
	q, err := queries.NewGetAuditTrailQuery("device", id)
	require.NoError(t, err)

	trail, err := queries.NewGetAuditTrailQueryHandler(repo).Handle(ctx, q)

	require.NoError(t, err)
	assert.NotNil(t, trail)
	assert.Empty(t, trail)
}
