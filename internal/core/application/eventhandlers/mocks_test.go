package eventhandlers_test

import (
	"context"

	"agrirent/internal/core/domain/model/audit"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/ports"

	"github.com/stretchr/testify/mock"
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

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) error {
	return m.Called(ctx, n).Error(0)
}
