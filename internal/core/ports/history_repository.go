package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// HistoryRepository defines the persistence contract for the append-only
// status audit trail. Entries are never updated; removal happens only
// through the parcel cascade.
type HistoryRepository interface {
	// Add appends a history entry.
	Add(ctx context.Context, entry *parcel.HistoryEntry) error

	// GetByParcel retrieves all entries of a parcel ordered by change time
	// descending.
	GetByParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.HistoryEntry, error)
}
