package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/refs"
)

// RegisterZoneCommandHandler handles delivery zone registration.
type RegisterZoneCommandHandler struct {
	uowFactory ReferenceUoWFactory
}

// NewRegisterZoneCommandHandler creates a handler for zone registration.
func NewRegisterZoneCommandHandler(uowFactory ReferenceUoWFactory) RegisterZoneCommandHandler {
	return RegisterZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone registration command.
func (h *RegisterZoneCommandHandler) Handle(ctx context.Context, cmd RegisterZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	zone, err := refs.NewZone(cmd.ZoneID(), cmd.Name(), cmd.Description())
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

	if err = uow.ReferenceRepository().AddZone(ctx, zone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
