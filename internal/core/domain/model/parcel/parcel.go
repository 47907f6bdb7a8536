package parcel

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through the NewParcel factory method.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel represents a trackable parcel in the registry. It is copied by
// value into the loading queue, the undo journal, and the delivered log, so
// every snapshot stands on its own.
//
// Parcel follows these invariants:
//   - Sender, recipient, and address are non-empty
//   - Priority is within [1,5] at the moment of construction
//   - Can only be created through the NewParcel constructor
//
// The parcel identifier is a caller-supplied integer. Uniqueness among
// active parcels is assumed but deliberately not enforced; the registry
// resolves lookups to the first match in insertion order. Weight is likewise
// stored as given, without a positivity check.
type Parcel struct { //nolint:recvcheck //using for validation
	id        int
	sender    string
	recipient string
	address   string
	weight    float64
	priority  kernel.Priority

	guard guard.ConstructorGuard
}

// NewParcel creates a new Parcel with validation. This is the only way to
// create a valid Parcel.
//
// Parameters:
//   - id: Caller-supplied parcel identifier
//   - sender: Name of the sending party (must be non-empty)
//   - recipient: Name of the receiving party (must be non-empty)
//   - address: Delivery address (must be non-empty)
//   - weight: Parcel weight in kilograms (stored as given)
//   - priority: Delivery urgency (must be valid per kernel.Priority)
//
// Returns:
//   - Parcel: The created parcel if all validations pass
//   - error: Joined validation errors if any parameter is invalid
func NewParcel(
	id int,
	sender string,
	recipient string,
	address string,
	weight float64,
	priority kernel.Priority,
) (Parcel, error) {
	p := Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSender(sender),
		p.setRecipient(recipient),
		p.setAddress(address),
		p.setWeight(weight),
		p.setPriority(priority),
	); err != nil {
		return Parcel{}, err
	}

	return p, nil
}

// Validate ensures the Parcel instance was properly constructed through
// NewParcel. This prevents bypassing validation by directly instantiating
// the struct.
func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their identifiers.
func (p Parcel) IsEqual(other Parcel) bool {
	return p.id == other.id
}

// ID returns the parcel identifier.
func (p Parcel) ID() int {
	return p.id
}

// Sender returns the name of the sending party.
func (p Parcel) Sender() string {
	return p.sender
}

// Recipient returns the name of the receiving party.
func (p Parcel) Recipient() string {
	return p.recipient
}

// Address returns the delivery address.
func (p Parcel) Address() string {
	return p.address
}

// Weight returns the parcel weight in kilograms.
func (p Parcel) Weight() float64 {
	return p.weight
}

// Priority returns the delivery urgency.
func (p Parcel) Priority() kernel.Priority {
	return p.priority
}

// ChangeWeight overwrites the parcel weight. The weight is the only mutable
// field of a parcel; every other attribute is fixed at registration.
func (p *Parcel) ChangeWeight(weight float64) error {
	if err := p.Validate(); err != nil {
		return err
	}

	p.weight = weight
	return nil
}

func (p *Parcel) setID(id int) error {
	p.id = id
	return nil
}

func (p *Parcel) setSender(sender string) error {
	if sender == "" {
		return errs.NewValueIsRequiredError("sender")
	}
	p.sender = sender
	return nil
}

func (p *Parcel) setRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	p.recipient = recipient
	return nil
}

func (p *Parcel) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	p.address = address
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	// Positivity is intentionally not validated.
	p.weight = weight
	return nil
}

func (p *Parcel) setPriority(priority kernel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	p.priority = priority
	return nil
}
