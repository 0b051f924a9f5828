package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelsByCourierQueryIsNotConstructed = errors.New(
	"GetParcelsByCourierQuery must be created via NewGetParcelsByCourierQuery constructor",
)

// GetParcelsByCourierQuery lists the parcels assigned to one courier.
type GetParcelsByCourierQuery struct {
	courierID kernel.UUID
	page      int
	size      int

	guard guard.ConstructorGuard
}

// NewGetParcelsByCourierQuery creates a by-courier listing query.
func NewGetParcelsByCourierQuery(courierID kernel.UUID, page, size int) (GetParcelsByCourierQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetParcelsByCourierQuery{}, err
	}
	if err := validatePaging(page, size); err != nil {
		return GetParcelsByCourierQuery{}, err
	}

	return GetParcelsByCourierQuery{
		courierID: courierID,
		page:      page,
		size:      size,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsByCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsByCourierQueryIsNotConstructed)
}

// CourierID returns the courier whose parcels are listed.
func (q GetParcelsByCourierQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Page returns the zero-based page index.
func (q GetParcelsByCourierQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetParcelsByCourierQuery) Size() int {
	return q.size
}
