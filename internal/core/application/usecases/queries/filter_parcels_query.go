package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrFilterParcelsQueryIsNotConstructed = errors.New(
	"FilterParcelsQuery must be created via NewFilterParcelsQuery constructor",
)

// ParcelFilter lists the optional criteria of a filtered listing.
// Nil criteria are ignored; the present ones are combined with AND.
// The city match is exact but case-insensitive.
type ParcelFilter struct {
	Status    *parcel.Status
	Priority  *parcel.Priority
	ZoneID    *kernel.UUID
	City      *string
	CourierID *kernel.UUID
}

// FilterParcelsQuery retrieves one page of parcels matching the filter.
// An empty filter degrades to a plain listing.
type FilterParcelsQuery struct {
	filter ParcelFilter
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewFilterParcelsQuery creates a filtered listing query.
// Every present criterion is validated up front.
func NewFilterParcelsQuery(filter ParcelFilter, page, size int) (FilterParcelsQuery, error) {
	if err := validatePaging(page, size); err != nil {
		return FilterParcelsQuery{}, err
	}

	var criteriaErrs []error
	if filter.Status != nil {
		criteriaErrs = append(criteriaErrs, filter.Status.Validate())
	}
	if filter.Priority != nil {
		criteriaErrs = append(criteriaErrs, filter.Priority.Validate())
	}
	if filter.ZoneID != nil {
		criteriaErrs = append(criteriaErrs, filter.ZoneID.Validate())
	}
	if filter.CourierID != nil {
		criteriaErrs = append(criteriaErrs, filter.CourierID.Validate())
	}
	if err := errors.Join(criteriaErrs...); err != nil {
		return FilterParcelsQuery{}, err
	}

	return FilterParcelsQuery{
		filter: filter,
		page:   page,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FilterParcelsQuery) Validate() error {
	return q.guard.Validate(ErrFilterParcelsQueryIsNotConstructed)
}

// Filter returns the criteria set.
func (q FilterParcelsQuery) Filter() ParcelFilter {
	return q.filter
}

// Page returns the zero-based page index.
func (q FilterParcelsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q FilterParcelsQuery) Size() int {
	return q.size
}
