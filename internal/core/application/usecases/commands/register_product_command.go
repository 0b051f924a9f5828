package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrRegisterProductCommandIsNotConstructed = errors.New(
	"RegisterProductCommand must be created via NewRegisterProductCommand constructor",
)

// RegisterProductCommand represents a request to register a catalog product.
type RegisterProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     float64

	guard guard.ConstructorGuard
}

// NewRegisterProductCommand creates a command to register a product.
func NewRegisterProductCommand(productID kernel.UUID, name string, price float64) (RegisterProductCommand, error) {
	productCommand := RegisterProductCommand{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := productCommand.setProductID(productID); err != nil {
		return RegisterProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterProductCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c RegisterProductCommand) ProductID() kernel.UUID { return c.productID }

// Name returns the product name.
func (c RegisterProductCommand) Name() string { return c.name }

// Price returns the current catalog price.
func (c RegisterProductCommand) Price() float64 { return c.price }

func (c *RegisterProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
