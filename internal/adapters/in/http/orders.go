package http

import (
	"errors"
	"net/http"

	"agrirent/internal/core/application/usecases/commands"
	"agrirent/internal/core/application/usecases/queries"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders. The caller is the requester.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	deviceID, idErr := kernel.UUIDFromString(body.DeviceID)
	start, startErr := kernel.ParseDate(body.StartDate)
	end, endErr := kernel.ParseDate(body.EndDate)
	requester, reqErr := order.NewRequester(actor.ID(), body.RequesterName, body.RequesterPhone)
	if err := errors.Join(idErr, startErr, endErr, reqErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), deviceID, requester,
		body.RequestedHours, body.RequestedArea, start, end, body.Note, body.Draft)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, orderFromDomain(o))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, orderFromQuery(resp))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	actor, id, err := s.actorAndID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body StatusChange
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	to, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, actor, to, body.Note)
	if err != nil {
		return s.fail(c, err)
	}
	o, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, orderFromDomain(o))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	actor, id, err := s.actorAndID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body NoteBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(id, actor, body.Note)
	if err != nil {
		return s.fail(c, err)
	}
	o, err := s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, orderFromDomain(o))
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(c echo.Context) error {
	actor, id, err := s.actorAndID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body NoteBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(id, actor, body.Note)
	if err != nil {
		return s.fail(c, err)
	}
	o, err := s.h.RejectOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, orderFromDomain(o))
}

func (s *Server) actorAndID(c echo.Context) (kernel.Actor, kernel.UUID, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}
	return actor, id, nil
}
