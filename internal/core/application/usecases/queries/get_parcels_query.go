package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelsQueryIsNotConstructed = errors.New(
	"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
)

// GetParcelsQuery retrieves one page of the parcel list, oldest first.
//
// Example:
//
//	query, err := NewGetParcelsQuery(0, 20)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetParcelsQueryHandler(db)
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list parcels: %w", err)
//	}
//	fmt.Printf("Page holds %d parcels\n", len(parcels))
type GetParcelsQuery struct {
	page int
	size int

	guard guard.ConstructorGuard
}

// NewGetParcelsQuery creates a paged listing query. Pages are zero-based;
// size must be between 1 and 200.
func NewGetParcelsQuery(page, size int) (GetParcelsQuery, error) {
	if err := validatePaging(page, size); err != nil {
		return GetParcelsQuery{}, err
	}

	return GetParcelsQuery{
		page:  page,
		size:  size,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// Page returns the zero-based page index.
func (q GetParcelsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetParcelsQuery) Size() int {
	return q.size
}
