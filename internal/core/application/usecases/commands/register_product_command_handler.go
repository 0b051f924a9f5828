package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/refs"
)

// RegisterProductCommandHandler handles catalog product registration.
type RegisterProductCommandHandler struct {
	uowFactory ReferenceUoWFactory
}

// NewRegisterProductCommandHandler creates a handler for product registration.
func NewRegisterProductCommandHandler(uowFactory ReferenceUoWFactory) RegisterProductCommandHandler {
	return RegisterProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product registration command.
func (h *RegisterProductCommandHandler) Handle(ctx context.Context, cmd RegisterProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := refs.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Price())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ReferenceRepository().AddProduct(ctx, product); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
