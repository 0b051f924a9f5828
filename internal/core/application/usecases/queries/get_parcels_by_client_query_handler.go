package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelsByClientQueryHandler lists parcels by sending client.
type GetParcelsByClientQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsByClientQueryHandler creates a handler for by-client listings.
func NewGetParcelsByClientQueryHandler(db *gorm.DB) GetParcelsByClientQueryHandler {
	return GetParcelsByClientQueryHandler{db: db}
}

// Handle executes the by-client listing. An unknown client yields an empty
// page, not an error.
func (h GetParcelsByClientQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsByClientQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE client_id = ?
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, query.ClientID().Bytes(), query.Size(), query.Page()*query.Size()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectParcels(rows)
}
