package queries

import (
	"errors"
	"time"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrOverdueParcelsQueryIsNotConstructed = errors.New(
		"OverdueParcelsQuery must be created via NewOverdueParcelsQuery constructor",
	)
	ErrAsOfIsRequired = errors.New("asOf time is required")
)

// OverdueParcelsQuery finds parcels whose delivery deadline passed before
// the reference time while the shipment is still in flight. A parcel that
// is delivered, cancelled or returned is never overdue, regardless of when
// it finished. Parcels without a deadline never match.
type OverdueParcelsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewOverdueParcelsQuery creates an overdue scan anchored at asOf.
// Passing the reference time explicitly keeps the scan reproducible.
func NewOverdueParcelsQuery(asOf time.Time) (OverdueParcelsQuery, error) {
	if asOf.IsZero() {
		return OverdueParcelsQuery{}, ErrAsOfIsRequired
	}

	return OverdueParcelsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q OverdueParcelsQuery) Validate() error {
	return q.guard.Validate(ErrOverdueParcelsQueryIsNotConstructed)
}

// AsOf returns the reference time of the scan.
func (q OverdueParcelsQuery) AsOf() time.Time {
	return q.asOf
}
