package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// RemoveParcelProductCommandHandler detaches products from parcels.
// The same status guard applies as on attachment: contents are mutable only
// while the parcel is created or in stock.
type RemoveParcelProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRemoveParcelProductCommandHandler creates a handler for product removal.
func NewRemoveParcelProductCommandHandler(uowFactory ProductUoWFactory) RemoveParcelProductCommandHandler {
	return RemoveParcelProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove command.
func (h *RemoveParcelProductCommandHandler) Handle(ctx context.Context, cmd RemoveParcelProductCommand) error {
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

	attachmentRepo := uow.AttachmentRepository()
	attachment, err := attachmentRepo.Get(ctx, cmd.AttachmentID())
	if err != nil {
		return err
	}

	owningParcel, err := uow.ParcelRepository().Get(ctx, attachment.Parcel())
	if err != nil {
		return err
	}

	if !owningParcel.CanMutateProducts() {
		return errs.NewInvalidOperationError(
			"remove product",
			fmt.Sprintf("parcel %s is in status %s", owningParcel.ID(), owningParcel.Status()),
		)
	}

	if err = attachmentRepo.Delete(ctx, cmd.AttachmentID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
