package commands

import (
	"context"
	"errors"
	"fmt"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// UndoActionCommandHandler reverses the most recently journaled operation.
// Each undo consumes exactly one action; there is no redo.
//
// Reversal by action type:
//   - ADD: the registered parcel is removed from the active set
//   - UPDATE: the snapshot weight is restored on the active parcel
//   - DELETE: the snapshot is re-appended to the active set; the delivered
//     log keeps its audit entry, so delete/undo cycles accumulate records
//
// For ADD and UPDATE, a parcel that is no longer in the active set makes the
// reversal a silent no-op. The action is still consumed.
type UndoActionCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewUndoActionCommandHandler creates a handler for undo operations.
func NewUndoActionCommandHandler(uowFactory RegistryUoWFactory) UndoActionCommandHandler {
	return UndoActionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle pops the most recent action and reverses it, reporting what was
// undone for the boundary to display.
func (h *UndoActionCommandHandler) Handle(
	ctx context.Context,
	cmd UndoActionCommand,
) (UndoActionResponse, error) {
	if err := cmd.Validate(); err != nil {
		return UndoActionResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UndoActionResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	action, err := uow.ActionJournal().Pop(ctx)
	if err != nil {
		return UndoActionResponse{}, err
	}

	if err = h.reverse(ctx, uow.ParcelRepository(), action); err != nil {
		return UndoActionResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UndoActionResponse{}, err
	}

	return UndoActionResponse{
		ActionType: action.Type(),
		ParcelID:   action.Snapshot().ID(),
	}, nil
}

// reverse applies the inverse of a single journaled action to the active set.
func (h *UndoActionCommandHandler) reverse(
	ctx context.Context,
	repo ports.ParcelRepository,
	action parcel.Action,
) error {
	snapshot := action.Snapshot()

	switch action.Type() {
	case parcel.Add:
		if _, err := repo.Remove(ctx, snapshot.ID()); err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		return nil

	case parcel.Delete:
		// The snapshot rejoins the end of the active set. The delivered log
		// is append-only and keeps its entry.
		return repo.Add(ctx, snapshot)

	case parcel.Update:
		current, err := repo.Get(ctx, snapshot.ID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err = current.ChangeWeight(snapshot.Weight()); err != nil {
			return err
		}
		return repo.Update(ctx, current)

	default:
		return fmt.Errorf("cannot reverse action of type %s", action.Type())
	}
}
