package commands

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrUpdateParcelCommandIsNotConstructed = errors.New(
		"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
	)
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

// UpdateParcelFields lists the parcel fields a partial update may touch.
// Nil pointers mean "leave unchanged"; the deadline can be set but not
// cleared through this command.
type UpdateParcelFields struct {
	Description      *string
	Weight           *float64
	Priority         *parcel.Priority
	Status           *parcel.Status
	DestinationCity  *string
	DeliveryDeadline *time.Time
	CourierID        *kernel.UUID
	ZoneID           *kernel.UUID
}

func (f UpdateParcelFields) isEmpty() bool {
	return f.Description == nil &&
		f.Weight == nil &&
		f.Priority == nil &&
		f.Status == nil &&
		f.DestinationCity == nil &&
		f.DeliveryDeadline == nil &&
		f.CourierID == nil &&
		f.ZoneID == nil
}

// UpdateParcelCommand represents a partial update of a parcel. Only the
// fields present in UpdateParcelFields are applied; a status present here
// carries the same side effects as a dedicated status change.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	fields   UpdateParcelFields

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand creates a command for a partial parcel update.
// Every provided field is validated up front; a command with no fields at
// all is rejected with ErrNoFieldsToUpdate.
func NewUpdateParcelCommand(parcelID kernel.UUID, fields UpdateParcelFields) (UpdateParcelCommand, error) {
	updateCommand := UpdateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setParcelID(parcelID),
		updateCommand.setFields(fields),
	); err != nil {
		return UpdateParcelCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Fields returns the set of fields to apply.
func (c UpdateParcelCommand) Fields() UpdateParcelFields {
	return c.fields
}

func (c *UpdateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelCommand) setFields(fields UpdateParcelFields) error {
	if fields.isEmpty() {
		return ErrNoFieldsToUpdate
	}

	var errsJoined []error
	if fields.Description != nil && *fields.Description == "" {
		errsJoined = append(errsJoined, ErrDescriptionIsRequired)
	}
	if fields.Weight != nil && *fields.Weight <= 0 {
		errsJoined = append(errsJoined, ErrWeightIsInvalid)
	}
	if fields.Priority != nil {
		errsJoined = append(errsJoined, fields.Priority.Validate())
	}
	if fields.Status != nil {
		errsJoined = append(errsJoined, fields.Status.Validate())
	}
	if fields.DestinationCity != nil && *fields.DestinationCity == "" {
		errsJoined = append(errsJoined, ErrDestinationCityIsRequired)
	}
	if fields.CourierID != nil {
		errsJoined = append(errsJoined, fields.CourierID.Validate())
	}
	if fields.ZoneID != nil {
		errsJoined = append(errsJoined, fields.ZoneID.Validate())
	}

	if err := errors.Join(errsJoined...); err != nil {
		return err
	}

	c.fields = fields
	return nil
}
