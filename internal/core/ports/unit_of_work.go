package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Each public
// operation of the service runs inside exactly one unit of work, so the pair
// (status change + history append) is atomic: a crash or a concurrent read
// never observes one without the other.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a ParcelRepository bound to the current transaction.
	ParcelRepository() ParcelRepository

	// HistoryRepository returns a HistoryRepository bound to the current transaction.
	HistoryRepository() HistoryRepository

	// AttachmentRepository returns an AttachmentRepository bound to the current transaction.
	AttachmentRepository() AttachmentRepository

	// ReferenceRepository returns a ReferenceRepository bound to the current transaction.
	ReferenceRepository() ReferenceRepository
}
