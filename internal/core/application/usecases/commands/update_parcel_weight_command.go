package commands

import (
	"errors"

	"parcels/internal/pkg/guard"
)

var ErrUpdateParcelWeightCommandIsNotConstructed = errors.New(
	"UpdateParcelWeightCommand must be created via NewUpdateParcelWeightCommand constructor",
)

// UpdateParcelWeightCommand represents a request to overwrite the weight of
// an active parcel. The weight is the only mutable parcel attribute.
type UpdateParcelWeightCommand struct { //nolint:recvcheck //using for validation
	parcelID  int
	newWeight float64

	guard guard.ConstructorGuard
}

// NewUpdateParcelWeightCommand creates a command to change a parcel's
// weight. The new weight is accepted as given; positivity is not checked.
func NewUpdateParcelWeightCommand(parcelID int, newWeight float64) (UpdateParcelWeightCommand, error) {
	command := UpdateParcelWeightCommand{
		parcelID:  parcelID,
		newWeight: newWeight,
		guard:     guard.NewConstructorGuard(),
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelWeightCommandIsNotConstructed if validation fails.
func (c UpdateParcelWeightCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelWeightCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateParcelWeightCommand) ParcelID() int {
	return c.parcelID
}

// NewWeight returns the weight that replaces the current value.
func (c UpdateParcelWeightCommand) NewWeight() float64 {
	return c.newWeight
}
