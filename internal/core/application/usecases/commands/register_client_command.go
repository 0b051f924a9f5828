package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrRegisterClientCommandIsNotConstructed = errors.New(
	"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
)

// RegisterClientCommand represents a request to register a sending client.
// Field-level validation lives in the domain constructor; the command only
// guards the identifier.
type RegisterClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string
	email    string
	phone    string
	address  string

	guard guard.ConstructorGuard
}

// NewRegisterClientCommand creates a command to register a client.
func NewRegisterClientCommand(
	clientID kernel.UUID,
	name, email, phone, address string,
) (RegisterClientCommand, error) {
	clientCommand := RegisterClientCommand{
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := clientCommand.setClientID(clientID); err != nil {
		return RegisterClientCommand{}, err
	}

	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

// ClientID returns the identifier for the new client.
func (c RegisterClientCommand) ClientID() kernel.UUID { return c.clientID }

// Name returns the client name.
func (c RegisterClientCommand) Name() string { return c.name }

// Email returns the client email, unique across clients.
func (c RegisterClientCommand) Email() string { return c.email }

// Phone returns the client phone number.
func (c RegisterClientCommand) Phone() string { return c.phone }

// Address returns the client postal address.
func (c RegisterClientCommand) Address() string { return c.address }

func (c *RegisterClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}
