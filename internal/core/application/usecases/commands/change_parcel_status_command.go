package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrChangeParcelStatusCommandIsNotConstructed = errors.New(
	"ChangeParcelStatusCommand must be created via NewChangeParcelStatusCommand constructor",
)

// ChangeParcelStatusCommand represents a request to move a parcel to a new
// lifecycle status. The comment and changedBy actor are free-form and end up
// verbatim in the audit trail.
type ChangeParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	status    parcel.Status
	comment   string
	changedBy string

	guard guard.ConstructorGuard
}

// NewChangeParcelStatusCommand creates a command to change a parcel's status.
// Validates that the parcel ID and target status are valid; comment and
// changedBy may be empty.
func NewChangeParcelStatusCommand(
	parcelID kernel.UUID,
	status parcel.Status,
	comment string,
	changedBy string,
) (ChangeParcelStatusCommand, error) {
	statusCommand := ChangeParcelStatusCommand{
		comment:   comment,
		changedBy: changedBy,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setParcelID(parcelID),
		statusCommand.setStatus(status),
	); err != nil {
		return ChangeParcelStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to transition.
func (c ChangeParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Status returns the target lifecycle status.
func (c ChangeParcelStatusCommand) Status() parcel.Status {
	return c.status
}

// Comment returns the free-form audit comment.
func (c ChangeParcelStatusCommand) Comment() string {
	return c.comment
}

// ChangedBy returns the actor recorded in the audit trail.
func (c ChangeParcelStatusCommand) ChangedBy() string {
	return c.changedBy
}

func (c *ChangeParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *ChangeParcelStatusCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
