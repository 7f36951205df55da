// Package http exposes the lifecycle use cases over a JSON API.
//
// Every route under /api/v1 requires a bearer token; the token's subject and
// role become the kernel.Actor handed to the use case. Use case errors map to
// HTTP statuses by their errs code.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"agrirent/internal/core/application/usecases/commands"
	"agrirent/internal/core/application/usecases/queries"
	"agrirent/internal/core/domain/model/device"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/core/domain/model/order"
	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/core/domain/model/threshold"
	"agrirent/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handler is satisfied by every command and query handler.
type Handler[C, R any] interface {
	Handle(ctx context.Context, in C) (R, error)
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder       Handler[commands.CreateOrderCommand, *order.Order]
	UpdateOrderStatus Handler[commands.UpdateOrderStatusCommand, *order.Order]
	CancelOrder       Handler[commands.CancelOrderCommand, *order.Order]
	RejectOrder       Handler[commands.RejectOrderCommand, *order.Order]

	CreateLease         Handler[commands.CreateLeaseFromOrderCommand, *lease.Lease]
	AssignOperator      Handler[commands.AssignOperatorCommand, *lease.Lease]
	CompleteLease       Handler[commands.CompleteLeaseCommand, *lease.Lease]
	AttachLeaseDocument Handler[commands.AttachLeaseDocumentCommand, *lease.Lease]

	CreatePricingRule     Handler[commands.CreatePricingRuleCommand, *pricing.Rule]
	DeactivatePricingRule Handler[commands.DeactivatePricingRuleCommand, *pricing.Rule]
	SetThresholdConfig    Handler[commands.SetThresholdConfigCommand, *threshold.Config]
	PublishDevice         Handler[commands.PublishDeviceCommand, *device.Device]

	GetOrder             Handler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	GetActivePricingRule Handler[queries.GetActivePricingRuleQuery, queries.GetActivePricingRuleQueryResponse]
	GetAuditTrail        Handler[queries.GetAuditTrailQuery, []queries.GetAuditTrailQueryResponse]

	// Health reports readiness of the backing stores. Nil means always ready.
	Health func(ctx context.Context) error

	// Clock dates queries that default to today. Defaults to the system clock.
	Clock ports.Clock
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	auth   *Authenticator
	logger *slog.Logger
}

func NewServer(h Handlers, auth *Authenticator, logger *slog.Logger) *Server {
	if h.Clock == nil {
		h.Clock = commands.SystemClock{}
	}
	return &Server{h: h, auth: auth, logger: logger.With("component", "http")}
}

// Register mounts the routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1", s.auth.Middleware())

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/lease", s.CreateLease)

	api.POST("/leases/:id/operators", s.AssignOperator)
	api.POST("/leases/:id/complete", s.CompleteLease)
	api.POST("/leases/:id/attachments", s.AttachLeaseDocument)

	api.POST("/pricing-rules", s.CreatePricingRule)
	api.POST("/pricing-rules/:id/deactivate", s.DeactivatePricingRule)
	api.GET("/pricing-rules/active", s.GetActivePricingRule)

	api.PUT("/thresholds/:categoryId", s.SetThresholdConfig)
	api.POST("/devices/:id/publish", s.PublishDevice)

	api.GET("/audit/:entityType/:id", s.GetAuditTrail)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(c echo.Context) error {
	if s.h.Health != nil {
		if err := s.h.Health(c.Request().Context()); err != nil {
			s.logger.WarnContext(c.Request().Context(), "health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param(name))
}

// optionalDate parses s, treating "" as absent.
func optionalDate(s string) (*kernel.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := kernel.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
