package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a request to register a courier.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	email     string
	phone     string

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command to register a courier.
func NewRegisterCourierCommand(
	courierID kernel.UUID,
	name, email, phone string,
) (RegisterCourierCommand, error) {
	courierCommand := RegisterCourierCommand{
		name:  name,
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := courierCommand.setCourierID(courierID); err != nil {
		return RegisterCourierCommand{}, err
	}

	return courierCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// CourierID returns the identifier for the new courier.
func (c RegisterCourierCommand) CourierID() kernel.UUID { return c.courierID }

// Name returns the courier name.
func (c RegisterCourierCommand) Name() string { return c.name }

// Email returns the courier email, unique across couriers.
func (c RegisterCourierCommand) Email() string { return c.email }

// Phone returns the courier phone number.
func (c RegisterCourierCommand) Phone() string { return c.phone }

func (c *RegisterCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
