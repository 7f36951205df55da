// Package commands contains the operations that change lifecycle state.
// Every command is a constructor-guarded value; every handler validates it,
// opens a unit of work, lets the aggregates decide and commits. Domain events
// recorded by the aggregates are published by the unit of work after commit.
package commands

import (
	"context"
	"time"

	"agrirent/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each command family touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	LeaseRepoFactory interface {
		LeaseRepository() ports.LeaseRepository
	}

	DeviceRepoFactory interface {
		DeviceRepository() ports.DeviceRepository
	}

	OperatorRepoFactory interface {
		OperatorRepository() ports.OperatorRepository
	}

	ThresholdRepoFactory interface {
		ThresholdConfigRepository() ports.ThresholdConfigRepository
	}

	PricingRepoFactory interface {
		PricingRuleRepository() ports.PricingRuleRepository
	}

	// OrderUoW covers order creation and status changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		DeviceRepoFactory
		ThresholdRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LeaseUoW covers lease creation and lease maintenance.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... build the lease, attach it to the device
	//   err = uow.LeaseRepository().Add(ctx, l)
	//   err = uow.DeviceRepository().Update(ctx, d)
	//
	//   err = uow.Commit(ctx)
	LeaseUoW interface {
		TxManager
		OrderRepoFactory
		LeaseRepoFactory
		DeviceRepoFactory
		OperatorRepoFactory
		PricingRepoFactory
	}

	LeaseUoWFactory interface {
		Create() LeaseUoW
	}

	// CatalogUoW covers pricing rules, thresholds and device publication.
	CatalogUoW interface {
		TxManager
		PricingRepoFactory
		ThresholdRepoFactory
		DeviceRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)

// SystemClock is the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
