// Package refrepo persists the reference entities parcels are resolved
// against: clients, recipients, couriers, zones and products. These are flat
// records rather than aggregates, so one repository covers all five tables.
package refrepo

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/refs"

	"github.com/google/uuid"
)

// ClientDTO represents a sending client row. Email is unique.
type ClientDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Email   string `gorm:"uniqueIndex"`
	Phone   string
	Address string
}

// TableName specifies the database table name for clients.
func (ClientDTO) TableName() string {
	return "clients"
}

// RecipientDTO represents a recipient row. Phone is unique.
type RecipientDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Phone   string `gorm:"uniqueIndex"`
	Address string
}

// TableName specifies the database table name for recipients.
func (RecipientDTO) TableName() string {
	return "recipients"
}

// CourierDTO represents a courier row. Email is unique.
type CourierDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string `gorm:"uniqueIndex"`
	Phone string
}

// TableName specifies the database table name for couriers.
func (CourierDTO) TableName() string {
	return "couriers"
}

// ZoneDTO represents a delivery zone row.
type ZoneDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
}

// TableName specifies the database table name for zones.
func (ZoneDTO) TableName() string {
	return "zones"
}

// ProductDTO represents a catalog product row.
type ProductDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Price float64
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func clientFromDomain(client *refs.Client) ClientDTO {
	return ClientDTO{
		ID:      client.ID().Bytes(),
		Name:    client.Name(),
		Email:   client.Email(),
		Phone:   client.Phone(),
		Address: client.Address(),
	}
}

func clientToDomain(dto ClientDTO) (*refs.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return refs.NewClient(id, dto.Name, dto.Email, dto.Phone, dto.Address)
}

func recipientFromDomain(recipient *refs.Recipient) RecipientDTO {
	return RecipientDTO{
		ID:      recipient.ID().Bytes(),
		Name:    recipient.Name(),
		Phone:   recipient.Phone(),
		Address: recipient.Address(),
	}
}

func recipientToDomain(dto RecipientDTO) (*refs.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return refs.NewRecipient(id, dto.Name, dto.Phone, dto.Address)
}

func courierFromDomain(courier *refs.Courier) CourierDTO {
	return CourierDTO{
		ID:    courier.ID().Bytes(),
		Name:  courier.Name(),
		Email: courier.Email(),
		Phone: courier.Phone(),
	}
}

func courierToDomain(dto CourierDTO) (*refs.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return refs.NewCourier(id, dto.Name, dto.Email, dto.Phone)
}

func zoneFromDomain(zone *refs.Zone) ZoneDTO {
	return ZoneDTO{
		ID:          zone.ID().Bytes(),
		Name:        zone.Name(),
		Description: zone.Description(),
	}
}

func zoneToDomain(dto ZoneDTO) (*refs.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return refs.NewZone(id, dto.Name, dto.Description)
}

func productFromDomain(product *refs.Product) ProductDTO {
	return ProductDTO{
		ID:    product.ID().Bytes(),
		Name:  product.Name(),
		Price: product.Price(),
	}
}

func productToDomain(dto ProductDTO) (*refs.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return refs.NewProduct(id, dto.Name, dto.Price)
}
