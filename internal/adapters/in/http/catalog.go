package http

import (
	"errors"
	"net/http"

	"agrirent/internal/core/application/usecases/commands"
	"agrirent/internal/core/application/usecases/queries"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/pricing"

	"github.com/labstack/echo/v4"
)

// CreatePricingRule handles POST /api/v1/pricing-rules.
func (s *Server) CreatePricingRule(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body NewPricingRule
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	categoryID, catErr := kernel.UUIDFromString(body.CategoryID)
	location, locErr := kernel.NewLocationCode(body.Location)
	from, fromErr := kernel.ParseDate(body.EffectiveFrom)
	to, toErr := optionalDate(body.EffectiveTo)
	rates, ratesErr := parseRates(body.Rates)
	if err := errors.Join(catErr, locErr, fromErr, toErr, ratesErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreatePricingRuleCommand(kernel.NewUUID(), actor, categoryID, location, rates, from, to)
	if err != nil {
		return s.fail(c, err)
	}
	rule, err := s.h.CreatePricingRule.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, ruleFromDomain(rule))
}

func parseRates(in []NewRate) ([]pricing.Rate, error) {
	rates := make([]pricing.Rate, 0, len(in))
	for _, r := range in {
		metric, err := pricing.ParseMetric(r.Metric)
		if err != nil {
			return nil, err
		}
		rate, err := pricing.NewRate(metric, r.Amount)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

// DeactivatePricingRule handles POST /api/v1/pricing-rules/:id/deactivate.
func (s *Server) DeactivatePricingRule(c echo.Context) error {
	actor, ruleID, err := s.actorAndID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body NoteBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewDeactivatePricingRuleCommand(ruleID, actor, body.Note)
	if err != nil {
		return s.fail(c, err)
	}
	rule, err := s.h.DeactivatePricingRule.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, ruleFromDomain(rule))
}

// GetActivePricingRule handles
// GET /api/v1/pricing-rules/active?category=&location=&date=.
// The date defaults to today.
func (s *Server) GetActivePricingRule(c echo.Context) error {
	categoryID, catErr := kernel.UUIDFromString(c.QueryParam("category"))
	location, locErr := kernel.NewLocationCode(c.QueryParam("location"))
	date := kernel.DateOf(s.h.Clock.Now())
	var dateErr error
	if raw := c.QueryParam("date"); raw != "" {
		date, dateErr = kernel.ParseDate(raw)
	}
	if err := errors.Join(catErr, locErr, dateErr); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetActivePricingRuleQuery(categoryID, location, date)
	if err != nil {
		return s.fail(c, err)
	}
	resp, err := s.h.GetActivePricingRule.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, ruleFromQuery(resp))
}

// SetThresholdConfig handles PUT /api/v1/thresholds/:categoryId. The new
// configuration replaces the category's active one.
func (s *Server) SetThresholdConfig(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	categoryID, err := pathID(c, "categoryId")
	if err != nil {
		return s.fail(c, err)
	}
	var body NewThresholdConfig
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	from, fromErr := kernel.ParseDate(body.EffectiveFrom)
	to, toErr := optionalDate(body.EffectiveTo)
	if err := errors.Join(fromErr, toErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewSetThresholdConfigCommand(kernel.NewUUID(), actor, categoryID,
		body.MaxRentalHours, body.MaxRentalArea, from, to)
	if err != nil {
		return s.fail(c, err)
	}
	cfg, err := s.h.SetThresholdConfig.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, thresholdFromDomain(cfg))
}

// PublishDevice handles POST /api/v1/devices/:id/publish.
func (s *Server) PublishDevice(c echo.Context) error {
	actor, deviceID, err := s.actorAndID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewPublishDeviceCommand(deviceID, actor)
	if err != nil {
		return s.fail(c, err)
	}
	d, err := s.h.PublishDevice.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, deviceFromDomain(d))
}

// GetAuditTrail handles GET /api/v1/audit/:entityType/:id.
func (s *Server) GetAuditTrail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetAuditTrailQuery(c.Param("entityType"), id)
	if err != nil {
		return s.fail(c, err)
	}

	trail, err := s.h.GetAuditTrail.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	resp := make([]AuditEntry, len(trail))
	for i, entry := range trail {
		resp[i] = auditFromQuery(entry)
	}
	return c.JSON(http.StatusOK, resp)
}
