package commands

import (
	"errors"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/guard"
)

var ErrDeactivatePricingRuleCommandIsNotConstructed = errors.New(
	"DeactivatePricingRuleCommand must be created via NewDeactivatePricingRuleCommand constructor",
)

type DeactivatePricingRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID kernel.UUID
	actor  kernel.Actor
	note   string

	guard guard.ConstructorGuard
}

func NewDeactivatePricingRuleCommand(ruleID kernel.UUID, actor kernel.Actor, note string) (DeactivatePricingRuleCommand, error) {
	if err := errors.Join(requireID("rule id", ruleID), actor.Validate()); err != nil {
		return DeactivatePricingRuleCommand{}, err
	}
	return DeactivatePricingRuleCommand{ruleID: ruleID, actor: actor, note: note, guard: guard.NewConstructorGuard()}, nil
}

func (c DeactivatePricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrDeactivatePricingRuleCommandIsNotConstructed)
}

func (c DeactivatePricingRuleCommand) RuleID() kernel.UUID { return c.ruleID }

func (c DeactivatePricingRuleCommand) Actor() kernel.Actor { return c.actor }

func (c DeactivatePricingRuleCommand) Note() string { return c.note }
