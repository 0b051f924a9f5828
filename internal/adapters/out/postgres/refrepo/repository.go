package refrepo

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/refs"
	"parceltrack/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// GormReferenceRepository implements ReferenceRepository using GORM.
// Unique constraint violations on insert are translated to
// DuplicateValueError so callers never see driver errors.
type GormReferenceRepository struct {
	db *gorm.DB
}

// NewGormReferenceRepository creates a new GORM reference repository.
func NewGormReferenceRepository(db *gorm.DB) *GormReferenceRepository {
	return &GormReferenceRepository{db: db}
}

func translateDuplicate(err error, paramName string, value any) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errs.NewDuplicateValueErrorWithCause(paramName, value, err)
	}
	return err
}

// AddClient saves a new client. A duplicate email yields a DuplicateValueError.
func (r *GormReferenceRepository) AddClient(ctx context.Context, client *refs.Client) error {
	if err := client.Validate(); err != nil {
		return err
	}

	dto := clientFromDomain(client)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateDuplicate(err, "email", client.Email())
	}
	return nil
}

// GetClient retrieves a client by ID.
func (r *GormReferenceRepository) GetClient(ctx context.Context, id kernel.UUID) (*refs.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", id.String())
		}
		return nil, err
	}

	return clientToDomain(dto)
}

// AddRecipient saves a new recipient. A duplicate phone yields a DuplicateValueError.
func (r *GormReferenceRepository) AddRecipient(ctx context.Context, recipient *refs.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	dto := recipientFromDomain(recipient)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateDuplicate(err, "phone", recipient.Phone())
	}
	return nil
}

// GetRecipient retrieves a recipient by ID.
func (r *GormReferenceRepository) GetRecipient(ctx context.Context, id kernel.UUID) (*refs.Recipient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecipientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipient", id.String())
		}
		return nil, err
	}

	return recipientToDomain(dto)
}

// AddCourier saves a new courier. A duplicate email yields a DuplicateValueError.
func (r *GormReferenceRepository) AddCourier(ctx context.Context, courier *refs.Courier) error {
	if err := courier.Validate(); err != nil {
		return err
	}

	dto := courierFromDomain(courier)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateDuplicate(err, "email", courier.Email())
	}
	return nil
}

// GetCourier retrieves a courier by ID.
func (r *GormReferenceRepository) GetCourier(ctx context.Context, id kernel.UUID) (*refs.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return courierToDomain(dto)
}

// AddZone saves a new delivery zone.
func (r *GormReferenceRepository) AddZone(ctx context.Context, zone *refs.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	dto := zoneFromDomain(zone)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetZone retrieves a zone by ID.
func (r *GormReferenceRepository) GetZone(ctx context.Context, id kernel.UUID) (*refs.Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("zone", id.String())
		}
		return nil, err
	}

	return zoneToDomain(dto)
}

// AddProduct saves a new catalog product.
func (r *GormReferenceRepository) AddProduct(ctx context.Context, product *refs.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetProduct retrieves a product by ID.
func (r *GormReferenceRepository) GetProduct(ctx context.Context, id kernel.UUID) (*refs.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}
