package commands

import (
	"errors"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/guard"
)

var ErrSetThresholdConfigCommandIsNotConstructed = errors.New(
	"SetThresholdConfigCommand must be created via NewSetThresholdConfigCommand constructor",
)

type SetThresholdConfigCommand struct { //nolint:recvcheck //using for validation
	configID       kernel.UUID
	actor          kernel.Actor
	categoryID     kernel.UUID
	maxRentalHours float64
	maxRentalArea  float64
	effectiveFrom  kernel.Date
	effectiveTo    *kernel.Date

	guard guard.ConstructorGuard
}

func NewSetThresholdConfigCommand(
	configID kernel.UUID,
	actor kernel.Actor,
	categoryID kernel.UUID,
	maxRentalHours, maxRentalArea float64,
	effectiveFrom kernel.Date,
	effectiveTo *kernel.Date,
) (SetThresholdConfigCommand, error) {
	if err := errors.Join(
		requireID("config id", configID),
		actor.Validate(),
		requireID("category id", categoryID),
	); err != nil {
		return SetThresholdConfigCommand{}, err
	}

	cmd := SetThresholdConfigCommand{
		configID:       configID,
		actor:          actor,
		categoryID:     categoryID,
		maxRentalHours: maxRentalHours,
		maxRentalArea:  maxRentalArea,
		effectiveFrom:  effectiveFrom,
		guard:          guard.NewConstructorGuard(),
	}
	if effectiveTo != nil {
		to := *effectiveTo
		cmd.effectiveTo = &to
	}
	return cmd, nil
}

func (c SetThresholdConfigCommand) Validate() error {
	return c.guard.Validate(ErrSetThresholdConfigCommandIsNotConstructed)
}

func (c SetThresholdConfigCommand) ConfigID() kernel.UUID { return c.configID }

func (c SetThresholdConfigCommand) Actor() kernel.Actor { return c.actor }

func (c SetThresholdConfigCommand) CategoryID() kernel.UUID { return c.categoryID }

func (c SetThresholdConfigCommand) MaxRentalHours() float64 { return c.maxRentalHours }

func (c SetThresholdConfigCommand) MaxRentalArea() float64 { return c.maxRentalArea }

func (c SetThresholdConfigCommand) EffectiveFrom() kernel.Date { return c.effectiveFrom }

func (c SetThresholdConfigCommand) EffectiveTo() *kernel.Date { return c.effectiveTo }
