// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. It implements the repository pattern for the
// parcel aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. Status and priority are stored by name so the read side can
// filter on them without decoding. The created/updated stamps belong to the
// domain, not to GORM, hence the disabled auto-time tracking.
type ParcelDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Description      string
	Weight           float64
	Priority         string     `gorm:"type:varchar(16);index"`
	Status           string     `gorm:"type:varchar(16);index"`
	DestinationCity  string     `gorm:"index"`
	DeliveryDeadline *time.Time `gorm:"index"`
	CreatedAt        time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime:false"`
	CollectedAt      *time.Time
	DeliveredAt      *time.Time
	ClientID         uuid.UUID  `gorm:"type:uuid;index"`
	RecipientID      uuid.UUID  `gorm:"type:uuid;index"`
	CourierID        *uuid.UUID `gorm:"type:uuid;index"`
	ZoneID           *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var courierID, zoneID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}
	if id := aggregate.Zone(); id != nil {
		raw := id.Bytes()
		zoneID = &raw
	}

	return ParcelDTO{
		ID:               aggregate.ID().Bytes(),
		Description:      aggregate.Description(),
		Weight:           aggregate.Weight(),
		Priority:         aggregate.Priority().String(),
		Status:           aggregate.Status().String(),
		DestinationCity:  aggregate.DestinationCity(),
		DeliveryDeadline: aggregate.DeliveryDeadline(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		CollectedAt:      aggregate.CollectedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		ClientID:         aggregate.Client().Bytes(),
		RecipientID:      aggregate.Recipient().Bytes(),
		CourierID:        courierID,
		ZoneID:           zoneID,
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	var courierID, zoneID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}
	if dto.ZoneID != nil {
		zID, zoneErr := kernel.UUIDFromBytes((*dto.ZoneID)[:])
		if zoneErr != nil {
			return nil, zoneErr
		}
		zoneID = &zID
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := parcel.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id, clientID, recipientID,
		dto.Description, dto.Weight, priority, status,
		dto.DestinationCity, dto.DeliveryDeadline,
		dto.CreatedAt, dto.UpdatedAt,
		dto.CollectedAt, dto.DeliveredAt,
		courierID, zoneID,
	)
}
