package memory

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
)

// ActionJournal implements ports.ActionJournal as a LIFO stack over the
// store's journal slice.
type ActionJournal struct {
	store *Store
}

// NewActionJournal creates a journal bound to the given store.
func NewActionJournal(store *Store) *ActionJournal {
	return &ActionJournal{store: store}
}

// Push records an action on top of the journal.
func (j *ActionJournal) Push(_ context.Context, action parcel.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	j.store.journal = append(j.store.journal, action)
	return nil
}

// Pop removes and returns the most recently pushed action.
func (j *ActionJournal) Pop(_ context.Context) (parcel.Action, error) {
	n := len(j.store.journal)
	if n == 0 {
		return parcel.Action{}, errs.NewCollectionIsEmptyError("undo journal")
	}

	action := j.store.journal[n-1]
	j.store.journal = j.store.journal[:n-1]
	return action, nil
}

// Size returns the number of recorded actions.
func (j *ActionJournal) Size(_ context.Context) (int, error) {
	return len(j.store.journal), nil
}
