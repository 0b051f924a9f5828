package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for parcel registration.
// Resolves the client, recipient and optional zone, persists the parcel in
// created status and appends the opening history entry in one transaction.
type CreateParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
// Requires a UoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory UoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command.
// Unknown client, recipient or zone identifiers surface as not-found errors
// before anything is written.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	refRepo := uow.ReferenceRepository()
	if _, err := refRepo.GetClient(ctx, cmd.ClientID()); err != nil {
		return err
	}
	if _, err := refRepo.GetRecipient(ctx, cmd.RecipientID()); err != nil {
		return err
	}
	if cmd.ZoneID() != nil {
		if _, err := refRepo.GetZone(ctx, *cmd.ZoneID()); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.ClientID(),
		cmd.RecipientID(),
		cmd.Description(),
		cmd.Weight(),
		cmd.Priority(),
		cmd.DestinationCity(),
		cmd.DeliveryDeadline(),
		now,
	)
	if err != nil {
		return err
	}

	if cmd.ZoneID() != nil {
		if err = newParcel.AssignZone(*cmd.ZoneID()); err != nil {
			return err
		}
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	entry, err := parcel.NewHistoryEntry(
		kernel.NewUUID(), newParcel.ID(), parcel.StatusCreated, now, "parcel created", "system",
	)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
