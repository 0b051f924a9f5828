package queries

import (
	"context"

	"gorm.io/gorm"
)

// SearchParcelsQueryHandler runs the case-insensitive keyword search.
type SearchParcelsQueryHandler struct {
	db *gorm.DB
}

// NewSearchParcelsQueryHandler creates a handler for keyword searches.
func NewSearchParcelsQueryHandler(db *gorm.DB) SearchParcelsQueryHandler {
	return SearchParcelsQueryHandler{db: db}
}

// Handle executes the search over description and destination city.
func (h SearchParcelsQueryHandler) Handle(
	ctx context.Context,
	query SearchParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := "%" + query.Keyword() + "%"
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE description ILIKE ? OR destination_city ILIKE ?
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, pattern, pattern, query.Size(), query.Page()*query.Size()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectParcels(rows)
}
