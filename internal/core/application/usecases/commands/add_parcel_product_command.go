package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrAddParcelProductCommandIsNotConstructed = errors.New(
		"AddParcelProductCommand must be created via NewAddParcelProductCommand constructor",
	)
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
	ErrUnitPriceIsInvalid = errors.New("unit price must not be negative")
)

// AddParcelProductCommand represents a request to attach a product to a
// parcel. The unit price is a snapshot taken at attachment time; later
// catalog price changes do not rewrite it.
type AddParcelProductCommand struct { //nolint:recvcheck //using for validation
	attachmentID kernel.UUID
	parcelID     kernel.UUID
	productID    kernel.UUID
	quantity     int
	unitPrice    float64

	guard guard.ConstructorGuard
}

// NewAddParcelProductCommand creates a command to attach a product to a parcel.
// Validates identifiers, requires a positive quantity and a non-negative
// unit price.
func NewAddParcelProductCommand(
	attachmentID kernel.UUID,
	parcelID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice float64,
) (AddParcelProductCommand, error) {
	productCommand := AddParcelProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setAttachmentID(attachmentID),
		productCommand.setParcelID(parcelID),
		productCommand.setProductID(productID),
		productCommand.setQuantity(quantity),
		productCommand.setUnitPrice(unitPrice),
	); err != nil {
		return AddParcelProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddParcelProductCommand) Validate() error {
	return c.guard.Validate(ErrAddParcelProductCommandIsNotConstructed)
}

// AttachmentID returns the identifier for the new attachment.
func (c AddParcelProductCommand) AttachmentID() kernel.UUID {
	return c.attachmentID
}

// ParcelID returns the identifier of the target parcel.
func (c AddParcelProductCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ProductID returns the identifier of the catalog product.
func (c AddParcelProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units attached.
func (c AddParcelProductCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the per-unit price snapshot.
func (c AddParcelProductCommand) UnitPrice() float64 {
	return c.unitPrice
}

func (c *AddParcelProductCommand) setAttachmentID(attachmentID kernel.UUID) error {
	if err := attachmentID.Validate(); err != nil {
		return err
	}

	c.attachmentID = attachmentID
	return nil
}

func (c *AddParcelProductCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AddParcelProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddParcelProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *AddParcelProductCommand) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return ErrUnitPriceIsInvalid
	}

	c.unitPrice = unitPrice
	return nil
}
