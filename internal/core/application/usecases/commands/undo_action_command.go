package commands

import (
	"errors"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/guard"
)

var ErrUndoActionCommandIsNotConstructed = errors.New(
	"UndoActionCommand must be created via NewUndoActionCommand constructor",
)

// UndoActionCommand triggers reversal of the most recently journaled
// operation. This is a parameterless command: the journal decides what is
// undone, in last-in-first-out order.
type UndoActionCommand struct {
	guard guard.ConstructorGuard
}

// NewUndoActionCommand creates a command to undo the last recorded action.
func NewUndoActionCommand() UndoActionCommand {
	return UndoActionCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrUndoActionCommandIsNotConstructed if validation fails.
func (c UndoActionCommand) Validate() error {
	return c.guard.Validate(ErrUndoActionCommandIsNotConstructed)
}

// UndoActionResponse reports which recorded operation was reversed.
type UndoActionResponse struct {
	ActionType parcel.ActionType
	ParcelID   int
}
