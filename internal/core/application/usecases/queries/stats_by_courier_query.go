package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrStatsByCourierQueryIsNotConstructed = errors.New(
	"StatsByCourierQuery must be created via NewStatsByCourierQuery constructor",
)

// StatsByCourierQuery aggregates parcel count and total weight per courier.
// Couriers with no assigned parcels do not appear in the result.
type StatsByCourierQuery struct {
	guard guard.ConstructorGuard
}

// NewStatsByCourierQuery creates a per-courier statistics query.
func NewStatsByCourierQuery() StatsByCourierQuery {
	return StatsByCourierQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q StatsByCourierQuery) Validate() error {
	return q.guard.Validate(ErrStatsByCourierQueryIsNotConstructed)
}

// CourierStatsResponse is one aggregation row.
type CourierStatsResponse struct {
	CourierID   kernel.UUID
	CourierName string
	ParcelCount int64
	TotalWeight float64
}
