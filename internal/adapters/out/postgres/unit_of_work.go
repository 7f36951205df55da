// Package postgres provides the GORM-based Unit of Work over the lifecycle
// repositories.
//
// Every repository handed out by a GormUnitOfWork runs inside the unit's
// transaction once Begin was called, and reports the aggregates it wrote back
// to the unit. After a successful Commit the unit drains the domain events of
// those aggregates and hands them to the EventPublisher. A rolled back or
// failed transaction publishes nothing.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance belongs to one goroutine.
package postgres

import (
	"context"

	"agrirent/internal/adapters/out/postgres/devicerepo"
	"agrirent/internal/adapters/out/postgres/leaserepo"
	"agrirent/internal/adapters/out/postgres/operatorrepo"
	"agrirent/internal/adapters/out/postgres/orderrepo"
	"agrirent/internal/adapters/out/postgres/pricingrepo"
	"agrirent/internal/adapters/out/postgres/thresholdrepo"
	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. A nil publisher drops committed events.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher) *GormUnitOfWorkFactory {
	if publisher == nil {
		publisher = discardPublisher{}
	}
	return &GormUnitOfWorkFactory{db: db, publisher: publisher}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and publishes the
// events of the aggregates written in it after commit.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then publishes the pending events of
// every tracked aggregate in tracking order. Events are published at most
// once: they are cleared from the aggregates as they are collected.
//
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	if evs := uow.drainEvents(); len(evs) > 0 {
		uow.publisher.Publish(ctx, evs...)
	}
	return nil
}

// Rollback discards the transaction and forgets the tracked aggregates.
//
// Returns gorm.ErrInvalidTransaction when no transaction is open, which is
// the case after a Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) drainEvents() []events.Event {
	var evs []events.Event
	seen := make(map[any]struct{}, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		if _, dup := seen[tracked.Aggregate]; dup {
			continue
		}
		seen[tracked.Aggregate] = struct{}{}

		source, ok := tracked.Aggregate.(events.Source)
		if !ok {
			continue
		}
		evs = append(evs, source.DomainEvents()...)
		source.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return evs
}

// conn returns the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) LeaseRepository() ports.LeaseRepository {
	return leaserepo.NewGormLeaseRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeviceRepository() ports.DeviceRepository {
	return devicerepo.NewGormDeviceRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OperatorRepository() ports.OperatorRepository {
	return operatorrepo.NewGormOperatorRepository(uow.conn())
}

func (uow *GormUnitOfWork) PricingRuleRepository() ports.PricingRuleRepository {
	return pricingrepo.NewGormPricingRuleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ThresholdConfigRepository() ports.ThresholdConfigRepository {
	return thresholdrepo.NewGormThresholdConfigRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

type discardPublisher struct{}

func (discardPublisher) Publish(context.Context, ...events.Event) {}
