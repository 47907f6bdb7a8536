package commands

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
)

// UpdateParcelWeightCommandHandler handles weight changes on active parcels.
// The parcel's pre-update state is journaled before the overwrite so the
// change can be reversed field-exact.
type UpdateParcelWeightCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewUpdateParcelWeightCommandHandler creates a handler for weight updates.
func NewUpdateParcelWeightCommandHandler(uowFactory RegistryUoWFactory) UpdateParcelWeightCommandHandler {
	return UpdateParcelWeightCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. Resolves the first active parcel with
// the given id, records an UPDATE action carrying the pre-update snapshot,
// then overwrites only the weight field.
func (h *UpdateParcelWeightCommandHandler) Handle(ctx context.Context, cmd UpdateParcelWeightCommand) error {
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

	current, err := repo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	action, err := parcel.NewAction(parcel.Update, current)
	if err != nil {
		return err
	}

	updated := current
	if err = updated.ChangeWeight(cmd.NewWeight()); err != nil {
		return err
	}

	if err = repo.Update(ctx, updated); err != nil {
		return err
	}

	if err = uow.ActionJournal().Push(ctx, action); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
