package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelsByCourierQueryHandler lists parcels by assigned courier.
type GetParcelsByCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsByCourierQueryHandler creates a handler for by-courier listings.
func NewGetParcelsByCourierQueryHandler(db *gorm.DB) GetParcelsByCourierQueryHandler {
	return GetParcelsByCourierQueryHandler{db: db}
}

// Handle executes the by-courier listing. Unassigned parcels never match.
func (h GetParcelsByCourierQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsByCourierQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE courier_id = ?
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, query.CourierID().Bytes(), query.Size(), query.Page()*query.Size()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectParcels(rows)
}
