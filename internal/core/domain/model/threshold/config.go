// Package threshold holds the per-category policy that splits requests into
// short rentals and leases.
package threshold

import (
	"errors"
	"fmt"
	"time"

	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"
)

// EntityType is the audit entity name of threshold configs.
const EntityType = "threshold_config"

var ErrConfigIsNotConstructed = errors.New("Config must be created via NewConfig constructor")

// Status tells whether a config is the one in force for its category.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) Validate() error {
	if s != StatusActive && s != StatusInactive {
		return errs.NewValueIsInvalidErrorWithCause("threshold status", fmt.Errorf("%q is not ACTIVE or INACTIVE", string(s)))
	}
	return nil
}

// Config holds the largest request a category still treats as a rental.
type Config struct {
	id             kernel.UUID
	categoryID     kernel.UUID
	maxRentalHours float64
	maxRentalArea  float64
	effectiveFrom  kernel.Date
	effectiveTo    *kernel.Date
	status         Status
	updatedAt      time.Time

	events.Recorder

	isConstructed bool
}

// NewConfig creates an ACTIVE config and records threshold_config.set.
func NewConfig(
	id, categoryID kernel.UUID,
	maxRentalHours, maxRentalArea float64,
	effectiveFrom kernel.Date,
	effectiveTo *kernel.Date,
	actorID *kernel.UUID,
	at time.Time,
) (*Config, error) {
	c, err := RestoreConfig(id, categoryID, maxRentalHours, maxRentalArea, effectiveFrom, effectiveTo, StatusActive, at)
	if err != nil {
		return nil, err
	}

	c.Record(events.Event{
		Name:       events.ThresholdConfigSet,
		EntityType: EntityType,
		EntityID:   c.id,
		Action:     events.ActionCreate,
		ToState:    string(c.status),
		ActorID:    actorID,
		OccurredAt: at,
		Attributes: map[string]string{
			"category_id":      c.categoryID.String(),
			"max_rental_hours": fmt.Sprintf("%g", c.maxRentalHours),
			"max_rental_area":  fmt.Sprintf("%g", c.maxRentalArea),
		},
	})
	return c, nil
}

// RestoreConfig rehydrates a config from storage.
func RestoreConfig(
	id, categoryID kernel.UUID,
	maxRentalHours, maxRentalArea float64,
	effectiveFrom kernel.Date,
	effectiveTo *kernel.Date,
	status Status,
	updatedAt time.Time,
) (*Config, error) {
	var windowErr error
	if effectiveTo != nil && !effectiveFrom.IsZero() && effectiveTo.Before(effectiveFrom) {
		windowErr = errs.NewValueIsInvalidErrorWithCause("effective to",
			fmt.Errorf("%s is before effective from %s", effectiveTo, effectiveFrom))
	}

	if err := errors.Join(
		id.Validate(),
		requireCategory(categoryID),
		nonNegative("max rental hours", maxRentalHours),
		nonNegative("max rental area", maxRentalArea),
		windowErr,
		status.Validate(),
	); err != nil {
		return nil, err
	}

	c := &Config{
		id:             id,
		categoryID:     categoryID,
		maxRentalHours: maxRentalHours,
		maxRentalArea:  maxRentalArea,
		effectiveFrom:  effectiveFrom,
		status:         status,
		updatedAt:      updatedAt,
		isConstructed:  true,
	}
	if effectiveTo != nil {
		to := *effectiveTo
		c.effectiveTo = &to
	}
	return c, nil
}

func requireCategory(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("category id", err)
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is negative", v))
	}
	return nil
}

func (c *Config) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConfigIsNotConstructed
	}
	return nil
}

func (c *Config) ID() kernel.UUID { return c.id }

func (c *Config) CategoryID() kernel.UUID { return c.categoryID }

func (c *Config) MaxRentalHours() float64 { return c.maxRentalHours }

func (c *Config) MaxRentalArea() float64 { return c.maxRentalArea }

func (c *Config) EffectiveFrom() kernel.Date { return c.effectiveFrom }

func (c *Config) EffectiveTo() *kernel.Date {
	if c.effectiveTo == nil {
		return nil
	}
	to := *c.effectiveTo
	return &to
}

func (c *Config) Status() Status { return c.status }

func (c *Config) UpdatedAt() time.Time { return c.updatedAt }

func (c *Config) IsActive() bool { return c.status == StatusActive }

// Exceeds reports whether either supplied amount is above its limit.
// Missing amounts never exceed.
func (c *Config) Exceeds(hours, area *float64) bool {
	if hours != nil && *hours > c.maxRentalHours {
		return true
	}
	return area != nil && *area > c.maxRentalArea
}

// Deactivate retires the config when a replacement is set.
func (c *Config) Deactivate(at time.Time) {
	if c.status == StatusInactive {
		return
	}
	c.status = StatusInactive
	c.updatedAt = at
	c.Record(events.Event{
		Name:       events.ThresholdConfigSet,
		EntityType: EntityType,
		EntityID:   c.id,
		Action:     events.ActionUpdate,
		FromState:  string(StatusActive),
		ToState:    string(StatusInactive),
		OccurredAt: at,
	})
}
