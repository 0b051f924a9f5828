package commands

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrDescriptionIsRequired     = errors.New("description is required")
	ErrWeightIsInvalid           = errors.New("weight must be greater than 0")
	ErrDestinationCityIsRequired = errors.New("destination city is required")
)

// CreateParcelCommand represents a request to register a new parcel.
// Encapsulates the shipment details plus the client, recipient and optional
// delivery zone the parcel is resolved against.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewCreateParcelCommand(
//	    parcelID, clientID, recipientID, nil,
//	    "winter tires", 48.5, parcel.PriorityNormal, "Lyon", nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
//	fmt.Printf("Parcel %s registered in created status", parcelID)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID         kernel.UUID
	clientID         kernel.UUID
	recipientID      kernel.UUID
	zoneID           *kernel.UUID
	description      string
	weight           float64
	priority         parcel.Priority
	destinationCity  string
	deliveryDeadline *time.Time

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates identifiers, requires a description and a destination city,
// and rejects non-positive weights. The zone and deadline are optional.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	clientID kernel.UUID,
	recipientID kernel.UUID,
	zoneID *kernel.UUID,
	description string,
	weight float64,
	priority parcel.Priority,
	destinationCity string,
	deliveryDeadline *time.Time,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setParcelID(parcelID),
		parcelCommand.setClientID(clientID),
		parcelCommand.setRecipientID(recipientID),
		parcelCommand.setZoneID(zoneID),
		parcelCommand.setDescription(description),
		parcelCommand.setWeight(weight),
		parcelCommand.setPriority(priority),
		parcelCommand.setDestinationCity(destinationCity),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	parcelCommand.deliveryDeadline = deliveryDeadline
	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ClientID returns the identifier of the sending client.
func (c CreateParcelCommand) ClientID() kernel.UUID {
	return c.clientID
}

// RecipientID returns the identifier of the recipient.
func (c CreateParcelCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// ZoneID returns the optional delivery zone identifier, nil when unset.
func (c CreateParcelCommand) ZoneID() *kernel.UUID {
	return c.zoneID
}

// Description returns the human readable parcel description.
func (c CreateParcelCommand) Description() string {
	return c.description
}

// Weight returns the parcel weight in kilograms.
func (c CreateParcelCommand) Weight() float64 {
	return c.weight
}

// Priority returns the requested delivery priority.
func (c CreateParcelCommand) Priority() parcel.Priority {
	return c.priority
}

// DestinationCity returns the delivery destination city.
func (c CreateParcelCommand) DestinationCity() string {
	return c.destinationCity
}

// DeliveryDeadline returns the optional delivery deadline, nil when unset.
func (c CreateParcelCommand) DeliveryDeadline() *time.Time {
	return c.deliveryDeadline
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateParcelCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}

func (c *CreateParcelCommand) setZoneID(zoneID *kernel.UUID) error {
	if zoneID == nil {
		return nil
	}
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateParcelCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *CreateParcelCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateParcelCommand) setPriority(priority parcel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateParcelCommand) setDestinationCity(city string) error {
	if city == "" {
		return ErrDestinationCityIsRequired
	}

	c.destinationCity = city
	return nil
}
