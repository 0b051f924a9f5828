package attachmentrepo

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAttachmentRepository implements AttachmentRepository using GORM.
type GormAttachmentRepository struct {
	db *gorm.DB
}

// NewGormAttachmentRepository creates a new GORM attachment repository.
func NewGormAttachmentRepository(db *gorm.DB) *GormAttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

// Add saves a new product attachment.
func (r *GormAttachmentRepository) Add(ctx context.Context, attachment *parcel.ProductAttachment) error {
	if err := attachment.Validate(); err != nil {
		return err
	}

	dto := fromDomain(attachment)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an attachment by ID.
func (r *GormAttachmentRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*parcel.ProductAttachment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AttachmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("attachment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByParcel retrieves all attachments of a parcel.
func (r *GormAttachmentRepository) GetByParcel(
	ctx context.Context, parcelID kernel.UUID,
) ([]*parcel.ProductAttachment, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AttachmentDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	attachments := make([]*parcel.ProductAttachment, 0, len(dtos))
	for _, dto := range dtos {
		attachment, attachmentErr := toDomain(dto)
		if attachmentErr != nil {
			return nil, attachmentErr
		}
		attachments = append(attachments, attachment)
	}

	return attachments, nil
}

// Delete removes an attachment.
func (r *GormAttachmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AttachmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("attachment", id.String())
	}

	return nil
}
