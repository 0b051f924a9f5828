package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrStatsByZoneQueryIsNotConstructed = errors.New(
	"StatsByZoneQuery must be created via NewStatsByZoneQuery constructor",
)

// StatsByZoneQuery aggregates parcel count and total weight per delivery
// zone. Zones with no parcels do not appear in the result.
type StatsByZoneQuery struct {
	guard guard.ConstructorGuard
}

// NewStatsByZoneQuery creates a per-zone statistics query.
func NewStatsByZoneQuery() StatsByZoneQuery {
	return StatsByZoneQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q StatsByZoneQuery) Validate() error {
	return q.guard.Validate(ErrStatsByZoneQueryIsNotConstructed)
}

// ZoneStatsResponse is one aggregation row.
type ZoneStatsResponse struct {
	ZoneID      kernel.UUID
	ZoneName    string
	ParcelCount int64
	TotalWeight float64
}
