package commands

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
)

// RegisterParcelCommandHandler handles the business logic for parcel
// registration: the parcel joins the end of the active set and an ADD action
// is recorded so the registration can be undone.
//
// Example:
//
//	handler := NewRegisterParcelCommandHandler(uowFactory)
//	cmd, _ := NewRegisterParcelCommand(42, "Ada", "Grace", "14-Fleet-St", 2.5, priority)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
type RegisterParcelCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewRegisterParcelCommandHandler creates a handler for parcel registration.
// Requires a RegistryUoWFactory for transactional access to the active set
// and the undo journal.
func NewRegisterParcelCommandHandler(uowFactory RegistryUoWFactory) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Appends the parcel to the
// active set and pushes an ADD action carrying the parcel as registered.
func (h *RegisterParcelCommandHandler) Handle(ctx context.Context, cmd RegisterParcelCommand) error {
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

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.Sender(),
		cmd.Recipient(),
		cmd.Address(),
		cmd.Weight(),
		cmd.Priority(),
	)
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	action, err := parcel.NewAction(parcel.Add, newParcel)
	if err != nil {
		return err
	}

	if err = uow.ActionJournal().Push(ctx, action); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
