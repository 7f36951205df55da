package queries

import (
	"context"
	"time"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/order"
	"agrirent/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads the orders table directly.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			status,
			device_id,
			requester_id,
			requester_name,
			requester_phone,
			handler_kind,
			handler_id,
			requested_hours,
			requested_area,
			start_date,
			end_date,
			note,
			version,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var (
		resp                      GetOrderQueryResponse
		id, deviceID, requesterID uuid.UUID
		handlerID                 *uuid.UUID
		status                    int
		startDate, endDate        time.Time
		createdAt, updatedAt      time.Time
	)
	err = rows.Scan(
		&id,
		&resp.Kind,
		&status,
		&deviceID,
		&requesterID,
		&resp.RequesterName,
		&resp.RequesterPhone,
		&resp.HandlerKind,
		&handlerID,
		&resp.RequestedHours,
		&resp.RequestedArea,
		&startDate,
		&endDate,
		&resp.Note,
		&resp.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.DeviceID, err = kernel.UUIDFromBytes(deviceID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.RequesterID, err = kernel.UUIDFromBytes(requesterID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if handlerID != nil {
		hID, hErr := kernel.UUIDFromBytes(handlerID[:])
		if hErr != nil {
			return GetOrderQueryResponse{}, hErr
		}
		resp.HandlerID = &hID
	}

	current := order.Status(status)
	resp.Status = current.String()
	resp.StartDate = kernel.DateOf(startDate)
	resp.EndDate = kernel.DateOf(endDate)
	resp.CreatedAt = createdAt.UTC()
	resp.UpdatedAt = updatedAt.UTC()
	resp.AllowedNextStates = make([]string, 0)
	for _, next := range order.Transitions().AllowedNextStates(current) {
		resp.AllowedNextStates = append(resp.AllowedNextStates, next.String())
	}

	return resp, nil
}
