package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// OverdueParcelsQueryHandler scans for parcels that missed their deadline.
// The cutoff is strict: a deadline exactly equal to the reference time is
// not overdue yet.
type OverdueParcelsQueryHandler struct {
	db *gorm.DB
}

// NewOverdueParcelsQueryHandler creates a handler for overdue scans.
func NewOverdueParcelsQueryHandler(db *gorm.DB) OverdueParcelsQueryHandler {
	return OverdueParcelsQueryHandler{db: db}
}

// Handle executes the overdue scan, most overdue first.
func (h OverdueParcelsQueryHandler) Handle(
	ctx context.Context,
	query OverdueParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE delivery_deadline IS NOT NULL
		  AND delivery_deadline < ?
		  AND status NOT IN (?, ?, ?)
		ORDER BY delivery_deadline, id
	`,
		query.AsOf(),
		parcel.StatusDelivered.String(),
		parcel.StatusCancelled.String(),
		parcel.StatusReturned.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectParcels(rows)
}
