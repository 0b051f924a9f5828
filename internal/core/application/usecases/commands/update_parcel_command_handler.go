package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// UpdateParcelCommandHandler applies partial parcel updates.
// Courier and zone assignments are resolved against the reference repository
// before being written; a status change inside the update behaves exactly
// like ChangeParcelStatusCommandHandler, including the no-op on same status.
type UpdateParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateParcelCommandHandler creates a handler for partial parcel updates.
func NewUpdateParcelCommandHandler(uowFactory UoWFactory) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h *UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	trackedParcel, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	fields := cmd.Fields()
	refRepo := uow.ReferenceRepository()
	if fields.CourierID != nil {
		if _, err = refRepo.GetCourier(ctx, *fields.CourierID); err != nil {
			return err
		}
	}
	if fields.ZoneID != nil {
		if _, err = refRepo.GetZone(ctx, *fields.ZoneID); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	statusChanged, err := h.applyFields(trackedParcel, fields, now)
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, trackedParcel); err != nil {
		return err
	}

	if statusChanged {
		var entry *parcel.HistoryEntry
		entry, err = parcel.NewHistoryEntry(
			kernel.NewUUID(), trackedParcel.ID(), *fields.Status, now, "status updated", "system",
		)
		if err != nil {
			return err
		}

		if err = uow.HistoryRepository().Add(ctx, entry); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *UpdateParcelCommandHandler) applyFields(
	trackedParcel *parcel.Parcel,
	fields UpdateParcelFields,
	now time.Time,
) (statusChanged bool, err error) {
	if fields.Description != nil {
		if err = trackedParcel.ChangeDescription(*fields.Description); err != nil {
			return false, err
		}
	}
	if fields.Weight != nil {
		if err = trackedParcel.ChangeWeight(*fields.Weight); err != nil {
			return false, err
		}
	}
	if fields.Priority != nil {
		if err = trackedParcel.ChangePriority(*fields.Priority); err != nil {
			return false, err
		}
	}
	if fields.DestinationCity != nil {
		if err = trackedParcel.ChangeDestinationCity(*fields.DestinationCity); err != nil {
			return false, err
		}
	}
	if fields.DeliveryDeadline != nil {
		trackedParcel.ChangeDeliveryDeadline(fields.DeliveryDeadline)
	}
	if fields.CourierID != nil {
		if err = trackedParcel.AssignCourier(*fields.CourierID); err != nil {
			return false, err
		}
	}
	if fields.ZoneID != nil {
		if err = trackedParcel.AssignZone(*fields.ZoneID); err != nil {
			return false, err
		}
	}
	if fields.Status != nil {
		statusChanged, err = trackedParcel.ChangeStatus(*fields.Status, now)
		if err != nil {
			return false, err
		}
	}

	trackedParcel.Touch(now)
	return statusChanged, nil
}
