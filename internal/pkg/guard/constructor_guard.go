package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error. It guarantees that validation of a zero-value
// object always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor function. Embedding a ConstructorGuard in a struct
// lets Validate methods distinguish properly constructed instances from
// zero values, which keeps domain invariants intact.
//
// Example usage:
//
//	var ErrParcelNotConstructed = errors.New("Parcel must be created via NewParcel")
//
//	type Parcel struct {
//	    id    int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewParcel(id int) Parcel {
//	    return Parcel{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (p Parcel) Validate() error {
//	    return p.guard.Validate(ErrParcelNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the owning object as
// properly constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
