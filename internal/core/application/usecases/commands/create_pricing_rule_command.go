package commands

import (
	"errors"
	"slices"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/pkg/guard"
)

var ErrCreatePricingRuleCommandIsNotConstructed = errors.New(
	"CreatePricingRuleCommand must be created via NewCreatePricingRuleCommand constructor",
)

type CreatePricingRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID        kernel.UUID
	actor         kernel.Actor
	categoryID    kernel.UUID
	location      kernel.LocationCode
	rates         []pricing.Rate
	effectiveFrom kernel.Date
	effectiveTo   *kernel.Date

	guard guard.ConstructorGuard
}

// NewCreatePricingRuleCommand builds the command. A nil effectiveTo asks for
// the standing rule of the scope. Rates and window are checked by the rule
// itself.
func NewCreatePricingRuleCommand(
	ruleID kernel.UUID,
	actor kernel.Actor,
	categoryID kernel.UUID,
	location kernel.LocationCode,
	rates []pricing.Rate,
	effectiveFrom kernel.Date,
	effectiveTo *kernel.Date,
) (CreatePricingRuleCommand, error) {
	if err := errors.Join(
		requireID("rule id", ruleID),
		actor.Validate(),
		requireID("category id", categoryID),
		location.Validate(),
	); err != nil {
		return CreatePricingRuleCommand{}, err
	}

	cmd := CreatePricingRuleCommand{
		ruleID:        ruleID,
		actor:         actor,
		categoryID:    categoryID,
		location:      location,
		rates:         slices.Clone(rates),
		effectiveFrom: effectiveFrom,
		guard:         guard.NewConstructorGuard(),
	}
	if effectiveTo != nil {
		to := *effectiveTo
		cmd.effectiveTo = &to
	}
	return cmd, nil
}

func (c CreatePricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrCreatePricingRuleCommandIsNotConstructed)
}

func (c CreatePricingRuleCommand) RuleID() kernel.UUID { return c.ruleID }

func (c CreatePricingRuleCommand) Actor() kernel.Actor { return c.actor }

func (c CreatePricingRuleCommand) CategoryID() kernel.UUID { return c.categoryID }

func (c CreatePricingRuleCommand) Location() kernel.LocationCode { return c.location }

func (c CreatePricingRuleCommand) Rates() []pricing.Rate { return slices.Clone(c.rates) }

func (c CreatePricingRuleCommand) EffectiveFrom() kernel.Date { return c.effectiveFrom }

func (c CreatePricingRuleCommand) EffectiveTo() *kernel.Date { return c.effectiveTo }
