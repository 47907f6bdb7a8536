package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var (
	ErrRegisterParcelCommandIsNotConstructed = errors.New(
		"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
	)
	ErrSenderIsRequired    = errors.New("sender is required")
	ErrRecipientIsRequired = errors.New("recipient is required")
	ErrAddressIsRequired   = errors.New("address is required")
)

// RegisterParcelCommand represents a request to register a new parcel in the
// active set. Encapsulates the parcel attributes entered at the boundary.
//
// Example:
//
//	priority, err := kernel.NewPriority(2)
//	if err != nil {
//	    return err // entered value was outside [1,5]
//	}
//	cmd, err := NewRegisterParcelCommand(42, "Ada", "Grace", "14-Fleet-St", 2.5, priority)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register parcel: %w", err)
//	}
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  int
	sender    string
	recipient string
	address   string
	weight    float64
	priority  kernel.Priority

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates a command to register a new parcel.
// Validates that the text fields are non-empty and the priority is valid.
// The weight is accepted as given; duplicate ids are not checked.
func NewRegisterParcelCommand(
	parcelID int,
	sender string,
	recipient string,
	address string,
	weight float64,
	priority kernel.Priority,
) (RegisterParcelCommand, error) {
	command := RegisterParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setSender(sender),
		command.setRecipient(recipient),
		command.setAddress(address),
		command.setWeight(weight),
		command.setPriority(priority),
	); err != nil {
		return RegisterParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterParcelCommandIsNotConstructed if validation fails.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

// ParcelID returns the caller-supplied parcel identifier.
func (c RegisterParcelCommand) ParcelID() int {
	return c.parcelID
}

// Sender returns the name of the sending party.
func (c RegisterParcelCommand) Sender() string {
	return c.sender
}

// Recipient returns the name of the receiving party.
func (c RegisterParcelCommand) Recipient() string {
	return c.recipient
}

// Address returns the delivery address.
func (c RegisterParcelCommand) Address() string {
	return c.address
}

// Weight returns the parcel weight in kilograms.
func (c RegisterParcelCommand) Weight() float64 {
	return c.weight
}

// Priority returns the delivery urgency.
func (c RegisterParcelCommand) Priority() kernel.Priority {
	return c.priority
}

func (c *RegisterParcelCommand) setParcelID(parcelID int) error {
	c.parcelID = parcelID
	return nil
}

func (c *RegisterParcelCommand) setSender(sender string) error {
	if sender == "" {
		return ErrSenderIsRequired
	}
	c.sender = sender
	return nil
}

func (c *RegisterParcelCommand) setRecipient(recipient string) error {
	if recipient == "" {
		return ErrRecipientIsRequired
	}
	c.recipient = recipient
	return nil
}

func (c *RegisterParcelCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *RegisterParcelCommand) setWeight(weight float64) error {
	c.weight = weight
	return nil
}

func (c *RegisterParcelCommand) setPriority(priority kernel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
