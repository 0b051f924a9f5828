package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// AttachmentRepository defines the persistence contract for product
// attachments. Attachments live and die independently of the parcel except
// for the delete cascade.
type AttachmentRepository interface {
	// Add persists a new product attachment.
	Add(ctx context.Context, attachment *parcel.ProductAttachment) error

	// Get retrieves an attachment by its unique identifier.
	// Returns an ObjectNotFoundError when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*parcel.ProductAttachment, error)

	// GetByParcel retrieves all attachments of a parcel.
	GetByParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.ProductAttachment, error)

	// Delete removes an attachment. Returns an ObjectNotFoundError when the
	// id does not resolve.
	Delete(ctx context.Context, id kernel.UUID) error
}
