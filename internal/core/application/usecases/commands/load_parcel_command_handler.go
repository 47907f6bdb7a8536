package commands

import (
	"context"
)

// LoadParcelCommandHandler handles staging parcels for dispatch. The parcel
// is copied into the priority-ordered loading queue; the active-set entry
// stays in place, so the same id can be active and queued at once.
//
// Loading is not journaled: it cannot be undone.
type LoadParcelCommandHandler struct {
	uowFactory LoadingUoWFactory
}

// NewLoadParcelCommandHandler creates a handler for load operations.
func NewLoadParcelCommandHandler(uowFactory LoadingUoWFactory) LoadParcelCommandHandler {
	return LoadParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the load command. Resolves the first active parcel with
// the given id and enqueues a copy in priority order.
func (h *LoadParcelCommandHandler) Handle(ctx context.Context, cmd LoadParcelCommand) error {
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

	staged, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = uow.LoadingQueue().Enqueue(ctx, staged); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
