package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelProductsQueryIsNotConstructed = errors.New(
	"GetParcelProductsQuery must be created via NewGetParcelProductsQuery constructor",
)

// GetParcelProductsQuery lists the products attached to one parcel.
type GetParcelProductsQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelProductsQuery creates a contents query for a parcel.
func NewGetParcelProductsQuery(parcelID kernel.UUID) (GetParcelProductsQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelProductsQuery{}, err
	}

	return GetParcelProductsQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelProductsQueryIsNotConstructed)
}

// ParcelID returns the parcel whose contents are read.
func (q GetParcelProductsQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// AttachmentResponse is one product line of a parcel. UnitPrice is the
// snapshot taken at attachment time, not the current catalog price.
type AttachmentResponse struct {
	ID          kernel.UUID
	ParcelID    kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   float64
}
