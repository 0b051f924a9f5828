package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelProductsQueryHandler reads the contents of a parcel, joined with
// the product catalog for display names.
type GetParcelProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelProductsQueryHandler creates a handler for contents queries.
func NewGetParcelProductsQueryHandler(db *gorm.DB) GetParcelProductsQueryHandler {
	return GetParcelProductsQueryHandler{db: db}
}

// Handle executes the contents query.
func (h GetParcelProductsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelProductsQuery,
) ([]AttachmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	err := h.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM parcels WHERE id = ?)`, query.ParcelID().Bytes()).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("parcelID", query.ParcelID())
	}

	attachments := make([]AttachmentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			pp.id,
			pp.parcel_id,
			pp.product_id,
			pr.name,
			pp.quantity,
			pp.unit_price
		FROM parcel_products pp
		INNER JOIN products pr ON pr.id = pp.product_id
		WHERE pp.parcel_id = ?
		ORDER BY pr.name, pp.id
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var attachment AttachmentResponse
		var id, parcelID, productID uuid.UUID

		err = rows.Scan(
			&id,
			&parcelID,
			&productID,
			&attachment.ProductName,
			&attachment.Quantity,
			&attachment.UnitPrice,
		)
		if err != nil {
			return nil, err
		}

		if attachment.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if attachment.ParcelID, err = kernel.UUIDFromBytes(parcelID[:]); err != nil {
			return nil, err
		}
		if attachment.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		attachments = append(attachments, attachment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return attachments, nil
}
