// Package refs provides the reference entities the lifecycle engine resolves
// parcels against: clients, recipients, couriers, zones and catalog products.
// The engine only reads them; their ids appear on parcels, their display
// names appear in read models and statistics.
package refs

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	ErrClientIsNotConstructed    = errors.New("Client must be created via NewClient")
	ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient")
	ErrCourierIsNotConstructed   = errors.New("Courier must be created via NewCourier")
	ErrZoneIsNotConstructed      = errors.New("Zone must be created via NewZone")
	ErrProductIsNotConstructed   = errors.New("Product must be created via NewProduct")
)

// Client is a sending customer. Email is unique across clients.
type Client struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string

	isConstructed bool
}

// NewClient creates a client. Name and email are required.
func NewClient(id kernel.UUID, name, email, phone, address string) (*Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	return &Client{id: id, name: name, email: email, phone: phone, address: address, isConstructed: true}, nil
}

func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) ID() kernel.UUID { return c.id }
func (c *Client) Name() string    { return c.name }
func (c *Client) Email() string   { return c.email }
func (c *Client) Phone() string   { return c.phone }
func (c *Client) Address() string { return c.address }

// Recipient is the person a parcel is addressed to. Phone is unique across
// recipients.
type Recipient struct {
	id      kernel.UUID
	name    string
	phone   string
	address string

	isConstructed bool
}

// NewRecipient creates a recipient. Name and phone are required.
func NewRecipient(id kernel.UUID, name, phone, address string) (*Recipient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}
	return &Recipient{id: id, name: name, phone: phone, address: address, isConstructed: true}, nil
}

func (r *Recipient) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecipientIsNotConstructed
	}
	return nil
}

func (r *Recipient) ID() kernel.UUID { return r.id }
func (r *Recipient) Name() string    { return r.name }
func (r *Recipient) Phone() string   { return r.phone }
func (r *Recipient) Address() string { return r.address }

// Courier delivers parcels. Email is unique across couriers.
type Courier struct {
	id    kernel.UUID
	name  string
	email string
	phone string

	isConstructed bool
}

// NewCourier creates a courier. Name and email are required.
func NewCourier(id kernel.UUID, name, email, phone string) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	return &Courier{id: id, name: name, email: email, phone: phone, isConstructed: true}, nil
}

func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

func (c *Courier) ID() kernel.UUID { return c.id }
func (c *Courier) Name() string    { return c.name }
func (c *Courier) Email() string   { return c.email }
func (c *Courier) Phone() string   { return c.phone }

// Zone is a geographic service area couriers and parcels may be assigned to.
type Zone struct {
	id          kernel.UUID
	name        string
	description string

	isConstructed bool
}

// NewZone creates a zone. Name is required.
func NewZone(id kernel.UUID, name, description string) (*Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return &Zone{id: id, name: name, description: description, isConstructed: true}, nil
}

func (z *Zone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}
	return nil
}

func (z *Zone) ID() kernel.UUID     { return z.id }
func (z *Zone) Name() string        { return z.name }
func (z *Zone) Description() string { return z.description }

// Product is a catalog item attachable to parcels. The catalog price is the
// default; attachments snapshot their own unit price.
type Product struct {
	id    kernel.UUID
	name  string
	price float64

	isConstructed bool
}

// NewProduct creates a product. Name is required, price must not be negative.
func NewProduct(id kernel.UUID, name string, price float64) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidError("price")
	}
	return &Product{id: id, name: name, price: price, isConstructed: true}, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID { return p.id }
func (p *Product) Name() string    { return p.name }
func (p *Product) Price() float64  { return p.price }
