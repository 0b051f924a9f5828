package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/refs"
)

// RegisterRecipientCommandHandler handles recipient registration.
// A duplicate phone number surfaces as a DuplicateValueError from the repository.
type RegisterRecipientCommandHandler struct {
	uowFactory ReferenceUoWFactory
}

// NewRegisterRecipientCommandHandler creates a handler for recipient registration.
func NewRegisterRecipientCommandHandler(uowFactory ReferenceUoWFactory) RegisterRecipientCommandHandler {
	return RegisterRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recipient registration command.
func (h *RegisterRecipientCommandHandler) Handle(ctx context.Context, cmd RegisterRecipientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	recipient, err := refs.NewRecipient(cmd.RecipientID(), cmd.Name(), cmd.Phone(), cmd.Address())
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

	if err = uow.ReferenceRepository().AddRecipient(ctx, recipient); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
