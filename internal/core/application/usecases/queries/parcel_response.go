// Package queries contains read-only operations over the tracking store.
// Query handlers bypass the domain aggregates and read projections straight
// from the database with raw SQL, per the CQRS split: writes go through
// commands, reads go through here.
package queries

import (
	"database/sql"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

var (
	ErrPageIsInvalid = errors.New("page must not be negative")
	ErrSizeIsInvalid = errors.New("size must be between 1 and 200")
)

const maxPageSize = 200

// parcelColumns is the shared select list for parcel read models. Every
// parcel query selects exactly these columns so scanParcelRow works for all
// of them.
const parcelColumns = `
	id,
	description,
	weight,
	priority,
	status,
	destination_city,
	delivery_deadline,
	created_at,
	updated_at,
	collected_at,
	delivered_at,
	client_id,
	recipient_id,
	courier_id,
	zone_id
`

// ParcelResponse is the read model shared by every parcel query.
// Status and priority come back as their wire names, timestamps that were
// never stamped stay nil.
type ParcelResponse struct {
	ID               kernel.UUID
	Description      string
	Weight           float64
	Priority         string
	Status           string
	DestinationCity  string
	DeliveryDeadline *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CollectedAt      *time.Time
	DeliveredAt      *time.Time
	ClientID         kernel.UUID
	RecipientID      kernel.UUID
	CourierID        *kernel.UUID
	ZoneID           *kernel.UUID
}

func validatePaging(page, size int) error {
	if page < 0 {
		return ErrPageIsInvalid
	}
	if size < 1 || size > maxPageSize {
		return ErrSizeIsInvalid
	}
	return nil
}

func scanParcelRow(rows *sql.Rows) (ParcelResponse, error) {
	var resp ParcelResponse
	var id, clientID, recipientID uuid.UUID
	var courierID, zoneID uuid.NullUUID
	var deadline, collectedAt, deliveredAt sql.NullTime

	err := rows.Scan(
		&id,
		&resp.Description,
		&resp.Weight,
		&resp.Priority,
		&resp.Status,
		&resp.DestinationCity,
		&deadline,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&collectedAt,
		&deliveredAt,
		&clientID,
		&recipientID,
		&courierID,
		&zoneID,
	)
	if err != nil {
		return ParcelResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ParcelResponse{}, err
	}
	if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return ParcelResponse{}, err
	}
	if resp.RecipientID, err = kernel.UUIDFromBytes(recipientID[:]); err != nil {
		return ParcelResponse{}, err
	}
	if courierID.Valid {
		courier, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if idErr != nil {
			return ParcelResponse{}, idErr
		}
		resp.CourierID = &courier
	}
	if zoneID.Valid {
		zone, idErr := kernel.UUIDFromBytes(zoneID.UUID[:])
		if idErr != nil {
			return ParcelResponse{}, idErr
		}
		resp.ZoneID = &zone
	}
	if deadline.Valid {
		t := deadline.Time
		resp.DeliveryDeadline = &t
	}
	if collectedAt.Valid {
		t := collectedAt.Time
		resp.CollectedAt = &t
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time
		resp.DeliveredAt = &t
	}

	return resp, nil
}

func collectParcels(rows *sql.Rows) ([]ParcelResponse, error) {
	parcels := make([]ParcelResponse, 0)
	for rows.Next() {
		resp, err := scanParcelRow(rows)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return parcels, nil
}
