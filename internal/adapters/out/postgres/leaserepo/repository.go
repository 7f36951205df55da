package leaserepo

import (
	"context"
	"errors"

	"agrirent/internal/adapters/out/postgres/optimistic"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLeaseRepository implements ports.LeaseRepository using GORM.
type GormLeaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLeaseRepository(db *gorm.DB, tracker aggregateTracker) *GormLeaseRepository {
	return &GormLeaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new lease. The unique order index rejects a second lease for
// the same order.
func (r *GormLeaseRepository) Add(ctx context.Context, aggregate *lease.Lease) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("lease for order", aggregate.OrderID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLeaseRepository) Update(ctx context.Context, aggregate *lease.Lease) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	if err := optimistic.Update(ctx, r.db, LeaseDTO{}.TableName(), &dto, dto.ID, aggregate.Version()); err != nil {
		return err
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLeaseRepository) Get(ctx context.Context, id kernel.UUID) (*lease.Lease, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LeaseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lease", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLeaseRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaseDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListPendingStartingBy returns PENDING leases due on or before day, oldest start first.
func (r *GormLeaseRepository) ListPendingStartingBy(ctx context.Context, day kernel.Date) ([]*lease.Lease, error) {
	var dtos []LeaseDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND start_date <= ?", int(lease.Pending), day.Time()).
		Order("start_date, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	leases := make([]*lease.Lease, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}
	return leases, nil
}
