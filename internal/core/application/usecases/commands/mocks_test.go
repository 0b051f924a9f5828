package commands_test

import (
	"context"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/refs"
	"parceltrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, entry *parcel.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) GetByParcel(
	ctx context.Context, parcelID kernel.UUID,
) ([]*parcel.HistoryEntry, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.HistoryEntry), args.Error(1)
}

type MockAttachmentRepository struct{ mock.Mock }

func (m *MockAttachmentRepository) Add(ctx context.Context, attachment *parcel.ProductAttachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*parcel.ProductAttachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.ProductAttachment), args.Error(1)
}

func (m *MockAttachmentRepository) GetByParcel(
	ctx context.Context, parcelID kernel.UUID,
) ([]*parcel.ProductAttachment, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.ProductAttachment), args.Error(1)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReferenceRepository struct{ mock.Mock }

func (m *MockReferenceRepository) AddClient(ctx context.Context, client *refs.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockReferenceRepository) GetClient(ctx context.Context, id kernel.UUID) (*refs.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*refs.Client), args.Error(1)
}

func (m *MockReferenceRepository) AddRecipient(ctx context.Context, recipient *refs.Recipient) error {
	args := m.Called(ctx, recipient)
	return args.Error(0)
}

func (m *MockReferenceRepository) GetRecipient(ctx context.Context, id kernel.UUID) (*refs.Recipient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*refs.Recipient), args.Error(1)
}

func (m *MockReferenceRepository) AddCourier(ctx context.Context, courier *refs.Courier) error {
	args := m.Called(ctx, courier)
	return args.Error(0)
}

func (m *MockReferenceRepository) GetCourier(ctx context.Context, id kernel.UUID) (*refs.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*refs.Courier), args.Error(1)
}

func (m *MockReferenceRepository) AddZone(ctx context.Context, zone *refs.Zone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *MockReferenceRepository) GetZone(ctx context.Context, id kernel.UUID) (*refs.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*refs.Zone), args.Error(1)
}

func (m *MockReferenceRepository) AddProduct(ctx context.Context, product *refs.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockReferenceRepository) GetProduct(ctx context.Context, id kernel.UUID) (*refs.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*refs.Product), args.Error(1)
}

// MockUoW satisfies every unit of work interface in the package, so each
// handler test reuses it regardless of which slice the handler depends on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) AttachmentRepository() ports.AttachmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AttachmentRepository)
}

func (m *MockUoW) ReferenceRepository() ports.ReferenceRepository {
	args := m.Called()
	return args.Get(0).(ports.ReferenceRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockReferenceUoWFactory struct{ mock.Mock }

func (m *MockReferenceUoWFactory) Create() commands.ReferenceUoW {
	args := m.Called()
	return args.Get(0).(commands.ReferenceUoW)
}
