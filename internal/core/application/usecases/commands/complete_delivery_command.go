package commands

import (
	"errors"

	"parcels/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a request to mark an active parcel as
// delivered, moving it from the active set into the audit log.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	parcelID int

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
func NewCompleteDeliveryCommand(parcelID int) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveryCommandIsNotConstructed if validation fails.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to mark as delivered.
func (c CompleteDeliveryCommand) ParcelID() int {
	return c.parcelID
}
