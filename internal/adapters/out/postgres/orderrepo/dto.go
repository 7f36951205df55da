// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is one row of the orders table. Kind and handler are written once
// at creation and copied unchanged on every update.
type OrderDTO struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Kind           string       `gorm:"type:varchar(8);not null;index"`
	Status         int          `gorm:"not null;index"`
	DeviceID       uuid.UUID    `gorm:"type:uuid;not null;index"`
	Requester      RequesterDTO `gorm:"embedded;embeddedPrefix:requester_"`
	HandlerKind    string       `gorm:"type:varchar(16);not null"`
	HandlerID      *uuid.UUID   `gorm:"type:uuid;index"`
	RequestedHours *float64
	RequestedArea  *float64
	StartDate      time.Time `gorm:"type:date;not null"`
	EndDate        time.Time `gorm:"type:date;not null"`
	Note           string
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
	Version        int64     `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// RequesterDTO is the contact snapshot embedded into the order row.
type RequesterDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name  string
	Phone string
}

func fromDomain(o *order.Order) OrderDTO {
	var handlerID *uuid.UUID
	if id := o.Handler().ID(); id != nil {
		raw := id.Bytes()
		handlerID = &raw
	}

	usage := o.Usage()
	return OrderDTO{
		ID:       o.ID().Bytes(),
		Kind:     string(o.Kind()),
		Status:   int(o.Status()),
		DeviceID: o.DeviceID().Bytes(),
		Requester: RequesterDTO{
			ID:    o.Requester().ID().Bytes(),
			Name:  o.Requester().Name(),
			Phone: o.Requester().Phone(),
		},
		HandlerKind:    string(o.Handler().Kind()),
		HandlerID:      handlerID,
		RequestedHours: usage.Hours(),
		RequestedArea:  usage.Area(),
		StartDate:      o.Period().Start().Time(),
		EndDate:        o.Period().End().Time(),
		Note:           o.Note(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
		Version:        o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	deviceID, err := kernel.UUIDFromBytes(dto.DeviceID[:])
	if err != nil {
		return nil, err
	}
	requesterID, err := kernel.UUIDFromBytes(dto.Requester.ID[:])
	if err != nil {
		return nil, err
	}
	requester, err := order.NewRequester(requesterID, dto.Requester.Name, dto.Requester.Phone)
	if err != nil {
		return nil, err
	}

	var handlerID *kernel.UUID
	if dto.HandlerID != nil {
		hID, hErr := kernel.UUIDFromBytes(dto.HandlerID[:])
		if hErr != nil {
			return nil, hErr
		}
		handlerID = &hID
	}
	handler, err := order.RestoreHandler(order.HandlerKind(dto.HandlerKind), handlerID)
	if err != nil {
		return nil, err
	}

	usage, err := order.NewUsage(dto.RequestedHours, dto.RequestedArea)
	if err != nil {
		return nil, err
	}
	period, err := order.NewPeriod(kernel.DateOf(dto.StartDate), kernel.DateOf(dto.EndDate))
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.Kind(dto.Kind),
		order.Status(dto.Status),
		deviceID,
		requester,
		handler,
		usage,
		period,
		dto.Note,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
		dto.Version,
	)
}
