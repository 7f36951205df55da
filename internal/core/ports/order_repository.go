package ports

import (
	"context"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order with compare-and-swap on
	// its version. A stale version yields *errs.VersionIsInvalidError and
	// nothing is written; on success the aggregate's version is advanced.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns *errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
