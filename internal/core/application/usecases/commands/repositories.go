// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// AttachmentRepoFactory provides access to the attachment repository within a transaction.
	AttachmentRepoFactory interface {
		AttachmentRepository() ports.AttachmentRepository
	}

	// ReferenceRepoFactory provides access to the reference repository within a transaction.
	ReferenceRepoFactory interface {
		ReferenceRepository() ports.ReferenceRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// TrackingUoW manages the transactional pair at the heart of the service:
	// a parcel status write and its audit history append must land together.
	TrackingUoW interface {
		TxManager
		ParcelRepoFactory
		HistoryRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// ProductUoW manages transactions for product attachment operations,
	// which read the owning parcel and the product catalog.
	ProductUoW interface {
		TxManager
		ParcelRepoFactory
		AttachmentRepoFactory
		ReferenceRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// ReferenceUoW manages transactions for reference entity registration.
	ReferenceUoW interface {
		TxManager
		ReferenceRepoFactory
	}

	// ReferenceUoWFactory creates new reference unit of work instances.
	ReferenceUoWFactory interface {
		Create() ReferenceUoW
	}

	// UoW manages transactions spanning every repository.
	// Used by commands that resolve reference entities, write the parcel
	// and append history in one business transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   refRepo := uow.ReferenceRepository()
	//   parcelRepo := uow.ParcelRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ParcelRepoFactory
		HistoryRepoFactory
		AttachmentRepoFactory
		ReferenceRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository operations.
	UoWFactory interface {
		Create() UoW
	}
)
