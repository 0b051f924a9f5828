package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/refs"
)

// ReferenceRepository defines the persistence contract for the reference
// entities parcels are resolved against. Get methods return an
// ObjectNotFoundError when the id does not resolve; Add methods return a
// DuplicateValueError when a unique field (client/courier email, recipient
// phone) is already registered.
type ReferenceRepository interface {
	AddClient(ctx context.Context, client *refs.Client) error
	GetClient(ctx context.Context, id kernel.UUID) (*refs.Client, error)

	AddRecipient(ctx context.Context, recipient *refs.Recipient) error
	GetRecipient(ctx context.Context, id kernel.UUID) (*refs.Recipient, error)

	AddCourier(ctx context.Context, courier *refs.Courier) error
	GetCourier(ctx context.Context, id kernel.UUID) (*refs.Courier, error)

	AddZone(ctx context.Context, zone *refs.Zone) error
	GetZone(ctx context.Context, id kernel.UUID) (*refs.Zone, error)

	AddProduct(ctx context.Context, product *refs.Product) error
	GetProduct(ctx context.Context, id kernel.UUID) (*refs.Product, error)
}
