package devicerepo

import (
	"context"
	"errors"

	"agrirent/internal/adapters/out/postgres/optimistic"
	"agrirent/internal/core/domain/model/device"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeviceRepository implements ports.DeviceRepository using GORM.
type GormDeviceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeviceRepository(db *gorm.DB, tracker aggregateTracker) *GormDeviceRepository {
	return &GormDeviceRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeviceRepository) Add(ctx context.Context, aggregate *device.Device) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update guards the single current-lease slot: two leases racing for one
// device cannot both pass the version check.
func (r *GormDeviceRepository) Update(ctx context.Context, aggregate *device.Device) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	if err := optimistic.Update(ctx, r.db, DeviceDTO{}.TableName(), &dto, dto.ID, aggregate.Version()); err != nil {
		return err
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeviceRepository) Get(ctx context.Context, id kernel.UUID) (*device.Device, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeviceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("device", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
