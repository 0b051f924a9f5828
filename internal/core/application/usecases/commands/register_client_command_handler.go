package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/refs"
)

// RegisterClientCommandHandler handles client registration.
// A duplicate email surfaces as a DuplicateValueError from the repository.
type RegisterClientCommandHandler struct {
	uowFactory ReferenceUoWFactory
}

// NewRegisterClientCommandHandler creates a handler for client registration.
func NewRegisterClientCommandHandler(uowFactory ReferenceUoWFactory) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client registration command.
func (h *RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	client, err := refs.NewClient(cmd.ClientID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address())
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

	if err = uow.ReferenceRepository().AddClient(ctx, client); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
