package commands

import (
	"errors"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/guard"
)

var ErrPublishDeviceCommandIsNotConstructed = errors.New(
	"PublishDeviceCommand must be created via NewPublishDeviceCommand constructor",
)

type PublishDeviceCommand struct { //nolint:recvcheck //using for validation
	deviceID kernel.UUID
	actor    kernel.Actor

	guard guard.ConstructorGuard
}

func NewPublishDeviceCommand(deviceID kernel.UUID, actor kernel.Actor) (PublishDeviceCommand, error) {
	if err := errors.Join(requireID("device id", deviceID), actor.Validate()); err != nil {
		return PublishDeviceCommand{}, err
	}
	return PublishDeviceCommand{deviceID: deviceID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c PublishDeviceCommand) Validate() error {
	return c.guard.Validate(ErrPublishDeviceCommandIsNotConstructed)
}

func (c PublishDeviceCommand) DeviceID() kernel.UUID { return c.deviceID }

func (c PublishDeviceCommand) Actor() kernel.Actor { return c.actor }
