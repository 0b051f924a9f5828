package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelsByRecipientQueryHandler lists parcels by recipient.
type GetParcelsByRecipientQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsByRecipientQueryHandler creates a handler for by-recipient listings.
func NewGetParcelsByRecipientQueryHandler(db *gorm.DB) GetParcelsByRecipientQueryHandler {
	return GetParcelsByRecipientQueryHandler{db: db}
}

// Handle executes the by-recipient listing.
func (h GetParcelsByRecipientQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsByRecipientQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE recipient_id = ?
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, query.RecipientID().Bytes(), query.Size(), query.Page()*query.Size()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectParcels(rows)
}
