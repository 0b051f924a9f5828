package parcel

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrProductAttachmentIsNotConstructed is returned when a ProductAttachment
	// was not created through NewProductAttachment or RestoreProductAttachment.
	ErrProductAttachmentIsNotConstructed = errors.New(
		"ProductAttachment must be created via NewProductAttachment or RestoreProductAttachment",
	)
)

// ProductAttachment associates a catalog product with a parcel, carrying a
// quantity and the unit price snapshotted at attachment time. Attachments
// can only be created or removed while the owning parcel allows product
// mutation, and they are cascade-deleted with the parcel.
type ProductAttachment struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice float64

	isConstructed bool
}

// NewProductAttachment attaches a product to a parcel. Quantity must be
// positive; the unit price snapshot must not be negative.
func NewProductAttachment(
	id kernel.UUID,
	parcelID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice float64,
) (*ProductAttachment, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is negative", unitPrice))
	}

	return &ProductAttachment{
		id:            id,
		parcelID:      parcelID,
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// RestoreProductAttachment reconstructs an attachment from persistence.
func RestoreProductAttachment(
	id kernel.UUID,
	parcelID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice float64,
) (*ProductAttachment, error) {
	return NewProductAttachment(id, parcelID, productID, quantity, unitPrice)
}

// Validate ensures the attachment was properly constructed.
func (a *ProductAttachment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrProductAttachmentIsNotConstructed
	}
	return nil
}

// ID returns the attachment's unique identifier.
func (a *ProductAttachment) ID() kernel.UUID {
	return a.id
}

// Parcel returns the owning parcel's identifier.
func (a *ProductAttachment) Parcel() kernel.UUID {
	return a.parcelID
}

// Product returns the catalog product's identifier.
func (a *ProductAttachment) Product() kernel.UUID {
	return a.productID
}

// Quantity returns the attached quantity.
func (a *ProductAttachment) Quantity() int {
	return a.quantity
}

// UnitPrice returns the unit price snapshotted at attachment time.
func (a *ProductAttachment) UnitPrice() float64 {
	return a.unitPrice
}
