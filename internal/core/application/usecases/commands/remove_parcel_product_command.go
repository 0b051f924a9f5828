package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrRemoveParcelProductCommandIsNotConstructed = errors.New(
	"RemoveParcelProductCommand must be created via NewRemoveParcelProductCommand constructor",
)

// RemoveParcelProductCommand represents a request to detach a product from
// its parcel, addressed by the attachment identifier.
type RemoveParcelProductCommand struct { //nolint:recvcheck //using for validation
	attachmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveParcelProductCommand creates a command to remove a product attachment.
func NewRemoveParcelProductCommand(attachmentID kernel.UUID) (RemoveParcelProductCommand, error) {
	removeCommand := RemoveParcelProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setAttachmentID(attachmentID); err != nil {
		return RemoveParcelProductCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveParcelProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveParcelProductCommandIsNotConstructed)
}

// AttachmentID returns the identifier of the attachment to remove.
func (c RemoveParcelProductCommand) AttachmentID() kernel.UUID {
	return c.attachmentID
}

func (c *RemoveParcelProductCommand) setAttachmentID(attachmentID kernel.UUID) error {
	if err := attachmentID.Validate(); err != nil {
		return err
	}

	c.attachmentID = attachmentID
	return nil
}
