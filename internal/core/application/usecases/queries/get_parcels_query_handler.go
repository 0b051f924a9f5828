package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelsQueryHandler lists parcels page by page.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel listing queries.
// Requires a GORM database connection for query execution.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the listing query.
// Results are ordered by creation time ascending with the id as tiebreaker,
// so pages are stable across calls.
func (h GetParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, query.Size(), query.Page()*query.Size()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectParcels(rows)
}
