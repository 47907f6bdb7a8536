package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrDispatchParcelCommandIsNotConstructed = errors.New(
	"DispatchParcelCommand must be created via NewDispatchParcelCommand constructor",
)

// DispatchParcelCommand triggers dispatch of the most urgent queued parcel.
// This is a parameterless command: the loading queue decides which parcel
// leaves next.
type DispatchParcelCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchParcelCommand creates a command to dispatch the next parcel.
func NewDispatchParcelCommand() DispatchParcelCommand {
	return DispatchParcelCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchParcelCommandIsNotConstructed if validation fails.
func (c DispatchParcelCommand) Validate() error {
	return c.guard.Validate(ErrDispatchParcelCommandIsNotConstructed)
}

// DispatchParcelResponse reports which parcel left the loading queue.
type DispatchParcelResponse struct {
	ParcelID  int
	Recipient string
	Priority  kernel.Priority
}
