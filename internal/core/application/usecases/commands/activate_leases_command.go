package commands

import (
	"errors"

	"agrirent/internal/pkg/guard"
)

var ErrActivateLeasesCommandIsNotConstructed = errors.New(
	"ActivateLeasesCommand must be created via NewActivateLeasesCommand constructor",
)

// ActivateLeasesCommand activates PENDING leases whose start date has come.
type ActivateLeasesCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

func NewActivateLeasesCommand() ActivateLeasesCommand {
	return ActivateLeasesCommand{guard: guard.NewConstructorGuard()}
}

func (c ActivateLeasesCommand) Validate() error {
	return c.guard.Validate(ErrActivateLeasesCommandIsNotConstructed)
}
