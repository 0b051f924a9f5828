// Package attachmentrepo persists the products attached to parcels.
package attachmentrepo

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// AttachmentDTO represents one parcel content row. UnitPrice is the snapshot
// taken when the product was attached.
type AttachmentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
	UnitPrice float64
}

// TableName specifies the database table name for product attachments.
func (AttachmentDTO) TableName() string {
	return "parcel_products"
}

func fromDomain(attachment *parcel.ProductAttachment) AttachmentDTO {
	return AttachmentDTO{
		ID:        attachment.ID().Bytes(),
		ParcelID:  attachment.Parcel().Bytes(),
		ProductID: attachment.Product().Bytes(),
		Quantity:  attachment.Quantity(),
		UnitPrice: attachment.UnitPrice(),
	}
}

func toDomain(dto AttachmentDTO) (*parcel.ProductAttachment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return parcel.RestoreProductAttachment(id, parcelID, productID, dto.Quantity, dto.UnitPrice)
}
