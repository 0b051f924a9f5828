// Package historyrepo persists the append-only parcel status audit trail.
package historyrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// HistoryDTO represents one audit trail row.
type HistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;index"`
	Status    string    `gorm:"type:varchar(16)"`
	ChangedAt time.Time `gorm:"index"`
	Comment   string
	ChangedBy string
}

// TableName specifies the database table name for history entries.
func (HistoryDTO) TableName() string {
	return "parcel_history"
}

func fromDomain(entry *parcel.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		ID:        entry.ID().Bytes(),
		ParcelID:  entry.Parcel().Bytes(),
		Status:    entry.Status().String(),
		ChangedAt: entry.ChangedAt(),
		Comment:   entry.Comment(),
		ChangedBy: entry.ChangedBy(),
	}
}

func toDomain(dto HistoryDTO) (*parcel.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}
	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreHistoryEntry(id, parcelID, status, dto.ChangedAt, dto.Comment, dto.ChangedBy)
}
