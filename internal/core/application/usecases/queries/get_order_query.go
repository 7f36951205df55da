// Package queries contains the read side: projections read straight from
// storage without loading aggregates for change.
package queries

import (
	"errors"
	"time"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order together with the statuses it may move to.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse is the order as shown to its participants.
// AllowedNextStates is empty for terminal orders.
type GetOrderQueryResponse struct {
	ID                kernel.UUID
	Kind              string
	Status            string
	DeviceID          kernel.UUID
	RequesterID       kernel.UUID
	RequesterName     string
	RequesterPhone    string
	HandlerKind       string
	HandlerID         *kernel.UUID
	RequestedHours    *float64
	RequestedArea     *float64
	StartDate         kernel.Date
	EndDate           kernel.Date
	Note              string
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	AllowedNextStates []string
}
