package commands

import (
	"errors"

	"agrirent/internal/pkg/guard"
)

var ErrExpirePricingRulesCommandIsNotConstructed = errors.New(
	"ExpirePricingRulesCommand must be created via NewExpirePricingRulesCommand constructor",
)

// ExpirePricingRulesCommand deactivates time-bounded rules whose window has ended.
type ExpirePricingRulesCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

func NewExpirePricingRulesCommand() ExpirePricingRulesCommand {
	return ExpirePricingRulesCommand{guard: guard.NewConstructorGuard()}
}

func (c ExpirePricingRulesCommand) Validate() error {
	return c.guard.Validate(ErrExpirePricingRulesCommandIsNotConstructed)
}
