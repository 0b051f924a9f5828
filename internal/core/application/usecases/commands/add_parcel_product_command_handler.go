package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// AddParcelProductCommandHandler attaches products to parcels.
// The parcel contents are frozen once the parcel leaves the warehouse:
// mutation is allowed only in created and in-stock status. The status guard
// runs before the product lookup, so a frozen parcel reports the guard
// violation even when the product id is also unknown.
type AddParcelProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAddParcelProductCommandHandler creates a handler for product attachment.
func NewAddParcelProductCommandHandler(uowFactory ProductUoWFactory) AddParcelProductCommandHandler {
	return AddParcelProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attach command.
// Returns an ObjectNotFoundError for an unknown parcel or product and an
// InvalidOperationError when the parcel status forbids content changes.
func (h *AddParcelProductCommandHandler) Handle(ctx context.Context, cmd AddParcelProductCommand) error {
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

	targetParcel, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if !targetParcel.CanMutateProducts() {
		return errs.NewInvalidOperationError(
			"add product",
			fmt.Sprintf("parcel %s is in status %s", targetParcel.ID(), targetParcel.Status()),
		)
	}

	if _, err = uow.ReferenceRepository().GetProduct(ctx, cmd.ProductID()); err != nil {
		return err
	}

	attachment, err := parcel.NewProductAttachment(
		cmd.AttachmentID(), cmd.ParcelID(), cmd.ProductID(), cmd.Quantity(), cmd.UnitPrice(),
	)
	if err != nil {
		return err
	}

	if err = uow.AttachmentRepository().Add(ctx, attachment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
