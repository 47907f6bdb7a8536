package commands

import (
	"context"
)

// DispatchParcelCommandHandler handles dequeueing the most urgent parcel
// from the loading queue: lowest priority number first, insertion order
// among equals. An empty queue is an underflow and changes nothing.
//
// Dispatch is not journaled: it cannot be undone.
type DispatchParcelCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewDispatchParcelCommandHandler creates a handler for dispatch operations.
func NewDispatchParcelCommandHandler(uowFactory DispatchUoWFactory) DispatchParcelCommandHandler {
	return DispatchParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command and reports the dispatched parcel's
// identity and priority for the boundary to display.
func (h *DispatchParcelCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchParcelCommand,
) (DispatchParcelResponse, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchParcelResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DispatchParcelResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dispatched, err := uow.LoadingQueue().DequeueNext(ctx)
	if err != nil {
		return DispatchParcelResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DispatchParcelResponse{}, err
	}

	return DispatchParcelResponse{
		ParcelID:  dispatched.ID(),
		Recipient: dispatched.Recipient(),
		Priority:  dispatched.Priority(),
	}, nil
}
