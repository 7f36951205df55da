package ports

import (
	"context"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"
)

// LeaseRepository defines the persistence contract for lease aggregates.
type LeaseRepository interface {
	Add(ctx context.Context, aggregate *lease.Lease) error

	// Update uses the same version compare-and-swap as OrderRepository.Update.
	Update(ctx context.Context, aggregate *lease.Lease) error

	Get(ctx context.Context, id kernel.UUID) (*lease.Lease, error)

	// ExistsForOrder reports whether a lease was already created from the order.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)

	// ListPendingStartingBy returns PENDING leases whose start date is on or before day.
	ListPendingStartingBy(ctx context.Context, day kernel.Date) ([]*lease.Lease, error)
}
