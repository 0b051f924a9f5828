package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatsByZoneQueryHandler computes per-zone load statistics.
type StatsByZoneQueryHandler struct {
	db *gorm.DB
}

// NewStatsByZoneQueryHandler creates a handler for zone statistics.
func NewStatsByZoneQueryHandler(db *gorm.DB) StatsByZoneQueryHandler {
	return StatsByZoneQueryHandler{db: db}
}

// Handle executes the aggregation, sorted by zone name.
func (h StatsByZoneQueryHandler) Handle(
	ctx context.Context,
	query StatsByZoneQuery,
) ([]ZoneStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]ZoneStatsResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			z.id,
			z.name,
			COUNT(p.id),
			COALESCE(SUM(p.weight), 0)
		FROM zones z
		INNER JOIN parcels p ON p.zone_id = z.id
		GROUP BY z.id, z.name
		ORDER BY z.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stat ZoneStatsResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&stat.ZoneName,
			&stat.ParcelCount,
			&stat.TotalWeight,
		)
		if err != nil {
			return nil, err
		}

		if stat.ZoneID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
