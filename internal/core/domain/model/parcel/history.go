package parcel

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
)

var (
	// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
	// created through NewHistoryEntry or RestoreHistoryEntry.
	ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry")
)

// HistoryEntry is the immutable audit record of one status change. Entries
// are append-only: they are never updated or reordered, and they are removed
// only when their owning parcel is deleted. Display ordering is by change
// time descending.
type HistoryEntry struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	status    Status
	changedAt time.Time
	comment   string

	// changedBy identifies the actor behind the change; empty when the
	// change came from an unauthenticated or system caller.
	changedBy string

	isConstructed bool
}

// NewHistoryEntry records that the given parcel entered status at changedAt.
// Comment and changedBy are free-form and may be empty.
func NewHistoryEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	status Status,
	changedAt time.Time,
	comment string,
	changedBy string,
) (*HistoryEntry, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &HistoryEntry{
		id:            id,
		parcelID:      parcelID,
		status:        status,
		changedAt:     changedAt,
		comment:       comment,
		changedBy:     changedBy,
		isConstructed: true,
	}, nil
}

// RestoreHistoryEntry reconstructs an entry from persistence.
func RestoreHistoryEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	status Status,
	changedAt time.Time,
	comment string,
	changedBy string,
) (*HistoryEntry, error) {
	return NewHistoryEntry(id, parcelID, status, changedAt, comment, changedBy)
}

// Validate ensures the entry was properly constructed.
func (h *HistoryEntry) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (h *HistoryEntry) ID() kernel.UUID {
	return h.id
}

// Parcel returns the owning parcel's identifier.
func (h *HistoryEntry) Parcel() kernel.UUID {
	return h.parcelID
}

// Status returns the status the parcel entered.
func (h *HistoryEntry) Status() Status {
	return h.status
}

// ChangedAt returns the moment of the transition.
func (h *HistoryEntry) ChangedAt() time.Time {
	return h.changedAt
}

// Comment returns the caller-supplied comment.
func (h *HistoryEntry) Comment() string {
	return h.comment
}

// ChangedBy returns the actor identifier, empty if unknown.
func (h *HistoryEntry) ChangedBy() string {
	return h.changedBy
}
