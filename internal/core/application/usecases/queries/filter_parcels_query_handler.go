package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// FilterParcelsQueryHandler runs multi-criteria listings.
// The WHERE clause is assembled from the present criteria only, always with
// bind parameters.
type FilterParcelsQueryHandler struct {
	db *gorm.DB
}

// NewFilterParcelsQueryHandler creates a handler for filtered listings.
func NewFilterParcelsQueryHandler(db *gorm.DB) FilterParcelsQueryHandler {
	return FilterParcelsQueryHandler{db: db}
}

// Handle executes the filtered listing.
func (h FilterParcelsQueryHandler) Handle(
	ctx context.Context,
	query FilterParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 5)
	args := make([]any, 0, 7)

	filter := query.Filter()
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status.String())
	}
	if filter.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, filter.Priority.String())
	}
	if filter.ZoneID != nil {
		conditions = append(conditions, "zone_id = ?")
		args = append(args, filter.ZoneID.Bytes())
	}
	if filter.City != nil {
		conditions = append(conditions, "LOWER(destination_city) = LOWER(?)")
		args = append(args, *filter.City)
	}
	if filter.CourierID != nil {
		conditions = append(conditions, "courier_id = ?")
		args = append(args, filter.CourierID.Bytes())
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, query.Size(), query.Page()*query.Size())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		`+where+`
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectParcels(rows)
}
