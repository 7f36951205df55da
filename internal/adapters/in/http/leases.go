package http

import (
	"net/http"

	"agrirent/internal/core/application/usecases/commands"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"

	"github.com/labstack/echo/v4"
)

// CreateLease handles POST /api/v1/orders/:id/lease.
func (s *Server) CreateLease(c echo.Context) error {
	actor, orderID, err := s.actorAndID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body NewLease
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCreateLeaseFromOrderCommand(kernel.NewUUID(), orderID, actor, body.Deposit, body.Notes)
	if err != nil {
		return s.fail(c, err)
	}
	l, err := s.h.CreateLease.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, leaseFromDomain(l))
}

// AssignOperator handles POST /api/v1/leases/:id/operators.
func (s *Server) AssignOperator(c echo.Context) error {
	actor, leaseID, err := s.actorAndID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body NewOperatorAssignment
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	operatorID, err := kernel.UUIDFromString(body.OperatorID)
	if err != nil {
		return s.fail(c, err)
	}
	role, err := lease.ParseOperatorRole(body.Role)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAssignOperatorCommand(leaseID, operatorID, role, actor)
	if err != nil {
		return s.fail(c, err)
	}
	l, err := s.h.AssignOperator.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, leaseFromDomain(l))
}

// CompleteLease handles POST /api/v1/leases/:id/complete. Without an end
// date the lease ends today.
func (s *Server) CompleteLease(c echo.Context) error {
	actor, leaseID, err := s.actorAndID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body LeaseCompletion
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	endDate, err := optionalDate(body.EndDate)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCompleteLeaseCommand(leaseID, actor, endDate, body.Note)
	if err != nil {
		return s.fail(c, err)
	}
	l, err := s.h.CompleteLease.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, leaseFromDomain(l))
}

// AttachLeaseDocument handles POST /api/v1/leases/:id/attachments.
func (s *Server) AttachLeaseDocument(c echo.Context) error {
	actor, leaseID, err := s.actorAndID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body NewAttachment
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewAttachLeaseDocumentCommand(leaseID, actor, body.DocumentType, body.URL)
	if err != nil {
		return s.fail(c, err)
	}
	l, err := s.h.AttachLeaseDocument.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, leaseFromDomain(l))
}
