package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrRegisterRecipientCommandIsNotConstructed = errors.New(
	"RegisterRecipientCommand must be created via NewRegisterRecipientCommand constructor",
)

// RegisterRecipientCommand represents a request to register a recipient.
type RegisterRecipientCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID
	name        string
	phone       string
	address     string

	guard guard.ConstructorGuard
}

// NewRegisterRecipientCommand creates a command to register a recipient.
func NewRegisterRecipientCommand(
	recipientID kernel.UUID,
	name, phone, address string,
) (RegisterRecipientCommand, error) {
	recipientCommand := RegisterRecipientCommand{
		name:    name,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := recipientCommand.setRecipientID(recipientID); err != nil {
		return RegisterRecipientCommand{}, err
	}

	return recipientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRecipientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRecipientCommandIsNotConstructed)
}

// RecipientID returns the identifier for the new recipient.
func (c RegisterRecipientCommand) RecipientID() kernel.UUID { return c.recipientID }

// Name returns the recipient name.
func (c RegisterRecipientCommand) Name() string { return c.name }

// Phone returns the recipient phone number, unique across recipients.
func (c RegisterRecipientCommand) Phone() string { return c.phone }

// Address returns the recipient postal address.
func (c RegisterRecipientCommand) Address() string { return c.address }

func (c *RegisterRecipientCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}
