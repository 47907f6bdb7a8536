package commands

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
)

// CompleteDeliveryCommandHandler handles marking parcels as delivered. The
// parcel moves from the active set to the delivered log in one transaction,
// and a DELETE action is journaled so the delivery can be undone.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion. Requires a DeliveryUoWFactory spanning the active set, the
// delivered log, and the undo journal.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command. Appends an audit record to the
// delivered log, removes the parcel from the active set, and pushes a
// DELETE action carrying the delivered snapshot.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	repo := uow.ParcelRepository()

	delivered, err := repo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	record, err := parcel.NewDeliveryRecord(delivered)
	if err != nil {
		return err
	}

	if err = uow.DeliveryLog().Append(ctx, record); err != nil {
		return err
	}

	if _, err = repo.Remove(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	action, err := parcel.NewAction(parcel.Delete, delivered)
	if err != nil {
		return err
	}

	if err = uow.ActionJournal().Push(ctx, action); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
