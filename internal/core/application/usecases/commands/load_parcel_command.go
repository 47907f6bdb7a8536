package commands

import (
	"errors"

	"parcels/internal/pkg/guard"
)

var ErrLoadParcelCommandIsNotConstructed = errors.New(
	"LoadParcelCommand must be created via NewLoadParcelCommand constructor",
)

// LoadParcelCommand represents a request to stage an active parcel for
// dispatch by copying it into the loading queue.
type LoadParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID int

	guard guard.ConstructorGuard
}

// NewLoadParcelCommand creates a command to load a parcel onto the truck.
func NewLoadParcelCommand(parcelID int) (LoadParcelCommand, error) {
	command := LoadParcelCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoadParcelCommandIsNotConstructed if validation fails.
func (c LoadParcelCommand) Validate() error {
	return c.guard.Validate(ErrLoadParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to load.
func (c LoadParcelCommand) ParcelID() int {
	return c.parcelID
}
