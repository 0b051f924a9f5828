package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatsByCourierQueryHandler computes per-courier workload statistics.
// The aggregation runs in the database; the inner join drops couriers with
// no assigned parcels.
type StatsByCourierQueryHandler struct {
	db *gorm.DB
}

// NewStatsByCourierQueryHandler creates a handler for courier statistics.
func NewStatsByCourierQueryHandler(db *gorm.DB) StatsByCourierQueryHandler {
	return StatsByCourierQueryHandler{db: db}
}

// Handle executes the aggregation, sorted by courier name.
func (h StatsByCourierQueryHandler) Handle(
	ctx context.Context,
	query StatsByCourierQuery,
) ([]CourierStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]CourierStatsResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			COUNT(p.id),
			COALESCE(SUM(p.weight), 0)
		FROM couriers c
		INNER JOIN parcels p ON p.courier_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stat CourierStatsResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&stat.CourierName,
			&stat.ParcelCount,
			&stat.TotalWeight,
		)
		if err != nil {
			return nil, err
		}

		if stat.CourierID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
