package ports

import (
	"context"

	"agrirent/internal/core/domain/model/device"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/operator"
)

// DeviceRepository exposes the device fields the lifecycle needs.
type DeviceRepository interface {
	Add(ctx context.Context, aggregate *device.Device) error

	// Update uses version compare-and-swap.
	Update(ctx context.Context, aggregate *device.Device) error

	Get(ctx context.Context, id kernel.UUID) (*device.Device, error)
}

// OperatorRepository is a reference lookup for operator assignment.
type OperatorRepository interface {
	Add(ctx context.Context, aggregate *operator.Operator) error

	Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error)
}
