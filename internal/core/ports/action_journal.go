package ports

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
)

// ActionJournal defines the contract for the undo stack. Mutating operations
// push exactly one Action; undo pops exactly one, in last-in-first-out
// order. There is no redo: a popped action is gone.
type ActionJournal interface {
	// Push records an action on top of the journal.
	Push(ctx context.Context, action parcel.Action) error

	// Pop removes and returns the most recently pushed action.
	// Returns a CollectionIsEmptyError when the journal is empty.
	Pop(ctx context.Context) (parcel.Action, error)

	// Size returns the number of recorded actions.
	Size(ctx context.Context) (int, error)
}
