package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Aggregates written through its repositories are tracked; their domain
// events are published only after Commit succeeds.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the transaction, then publishes the domain events of
	// every tracked aggregate.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and the tracked events.
	Rollback(ctx context.Context) error

	DeviceRepository() DeviceRepository
	OperatorRepository() OperatorRepository
	ThresholdConfigRepository() ThresholdConfigRepository
	PricingRuleRepository() PricingRuleRepository
	OrderRepository() OrderRepository
	LeaseRepository() LeaseRepository
}
