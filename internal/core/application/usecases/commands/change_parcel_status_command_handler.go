package commands

import (
	"context"
	"log/slog"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ChangeParcelStatusCommandHandler handles parcel status transitions.
// Writing the new status and appending the matching history entry happen in
// the same transaction, so the audit trail never drifts from the parcel.
//
// Example:
//
//	handler := NewChangeParcelStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeParcelStatusCommand(parcelID, parcel.StatusCollected, "picked up at depot", "jdupont")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type ChangeParcelStatusCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewChangeParcelStatusCommandHandler creates a handler for status transitions.
func NewChangeParcelStatusCommandHandler(uowFactory TrackingUoWFactory) ChangeParcelStatusCommandHandler {
	return ChangeParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Setting the status the parcel already has is accepted and logged but writes
// nothing: no history entry, no timestamp changes. Otherwise the transition
// is stamped, the collected/delivered timestamps are set on their first
// occurrence only, and one history entry is appended.
func (h *ChangeParcelStatusCommandHandler) Handle(ctx context.Context, cmd ChangeParcelStatusCommand) error {
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

	now := time.Now().UTC()
	changed, err := trackedParcel.ChangeStatus(cmd.Status(), now)
	if err != nil {
		return err
	}
	if !changed {
		slog.DebugContext(ctx, "Parcel already in requested status",
			"parcel_id", trackedParcel.ID().String(),
			"status", cmd.Status().String(),
		)
		return nil
	}

	if err = parcelRepo.Update(ctx, trackedParcel); err != nil {
		return err
	}

	entry, err := parcel.NewHistoryEntry(
		kernel.NewUUID(), trackedParcel.ID(), cmd.Status(), now, cmd.Comment(), cmd.ChangedBy(),
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
