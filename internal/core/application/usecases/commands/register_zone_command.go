package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrRegisterZoneCommandIsNotConstructed = errors.New(
	"RegisterZoneCommand must be created via NewRegisterZoneCommand constructor",
)

// RegisterZoneCommand represents a request to register a delivery zone.
type RegisterZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID      kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewRegisterZoneCommand creates a command to register a delivery zone.
func NewRegisterZoneCommand(zoneID kernel.UUID, name, description string) (RegisterZoneCommand, error) {
	zoneCommand := RegisterZoneCommand{
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := zoneCommand.setZoneID(zoneID); err != nil {
		return RegisterZoneCommand{}, err
	}

	return zoneCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterZoneCommand) Validate() error {
	return c.guard.Validate(ErrRegisterZoneCommandIsNotConstructed)
}

// ZoneID returns the identifier for the new zone.
func (c RegisterZoneCommand) ZoneID() kernel.UUID { return c.zoneID }

// Name returns the zone name.
func (c RegisterZoneCommand) Name() string { return c.name }

// Description returns the free-form zone description.
func (c RegisterZoneCommand) Description() string { return c.description }

func (c *RegisterZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}
