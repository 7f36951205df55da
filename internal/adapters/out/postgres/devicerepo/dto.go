// Package devicerepo maps devices to the devices table.
package devicerepo

import (
	"agrirent/internal/core/domain/model/device"
	"agrirent/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeviceDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CategoryID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	LocationCode          string     `gorm:"type:varchar(32);not null;index"`
	ServingIntermediaryID *uuid.UUID `gorm:"type:uuid;index"`
	CurrentLeaseID        *uuid.UUID `gorm:"type:uuid"`
	Status                string     `gorm:"type:varchar(16);not null"`
	Public                bool       `gorm:"not null;default:false"`
	Version               int64      `gorm:"not null"`
}

func (DeviceDTO) TableName() string {
	return "devices"
}

func fromDomain(d *device.Device) DeviceDTO {
	return DeviceDTO{
		ID:                    d.ID().Bytes(),
		CategoryID:            d.CategoryID().Bytes(),
		LocationCode:          d.Location().String(),
		ServingIntermediaryID: rawID(d.ServingIntermediaryID()),
		CurrentLeaseID:        rawID(d.CurrentLeaseID()),
		Status:                string(d.Status()),
		Public:                d.IsPublic(),
		Version:               d.Version(),
	}
}

func toDomain(dto DeviceDTO) (*device.Device, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewLocationCode(dto.LocationCode)
	if err != nil {
		return nil, err
	}
	serving, err := domainID(dto.ServingIntermediaryID)
	if err != nil {
		return nil, err
	}
	currentLease, err := domainID(dto.CurrentLeaseID)
	if err != nil {
		return nil, err
	}

	return device.RestoreDevice(id, categoryID, location, serving, currentLease,
		device.Status(dto.Status), dto.Public, dto.Version)
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent reference
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
