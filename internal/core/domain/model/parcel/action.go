package parcel

import (
	"errors"
	"fmt"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// ActionType identifies the kind of mutating operation an Action records.
// It is a closed set of values validated before use.
type ActionType int

const (
	// UnknownAction represents an invalid or undefined action type.
	// This value (0) helps catch uninitialized ActionType values.
	UnknownAction ActionType = iota

	// Add records the registration of a new parcel.
	// Reversal removes the parcel from the active set.
	Add

	// Update records a weight change and snapshots the pre-update state.
	// Reversal restores the snapshot weight.
	Update

	// Delete records a completed delivery.
	// Reversal re-inserts the snapshot into the active set.
	Delete
)

// getActionTypeStrings returns a map of ActionType values to their string
// representations. All types are included for string conversion.
func getActionTypeStrings() map[ActionType]string {
	return map[ActionType]string{
		UnknownAction: "UNKNOWN",
		Add:           "ADD",
		Update:        "UPDATE",
		Delete:        "DELETE",
	}
}

// getValidActionTypeStrings returns a map of only valid ActionType values.
func getValidActionTypeStrings() map[ActionType]string {
	//nolint:exhaustive // UnknownAction is intentionally excluded as it's invalid
	return map[ActionType]string{
		Add:    "ADD",
		Update: "UPDATE",
		Delete: "DELETE",
	}
}

// Validate checks if the ActionType value is valid.
// Valid types are: Add, Update, Delete.
func (t ActionType) Validate() error {
	if _, ok := getValidActionTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action type is invalid",
			fmt.Errorf("%d is not a valid action type", t))
	}
	return nil
}

// String returns the upper-case name of the action type.
// Implements fmt.Stringer and is safe to call on invalid values.
func (t ActionType) String() string {
	if str, ok := getActionTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// ErrActionIsNotConstructed is returned when an Action instance was not
// created through the NewAction factory method.
var ErrActionIsNotConstructed = errors.New("Action must be created via NewAction constructor")

// Action records a single mutating operation together with the parcel
// snapshot required to reverse it. The snapshot is a full value copy rather
// than a delta:
//   - Add carries the parcel as it was registered
//   - Update carries the parcel state before the weight change
//   - Delete carries the parcel as it was delivered
//
// Actions are pushed onto the undo journal once per mutating operation and
// consumed exactly once, in last-in-first-out order.
type Action struct { //nolint:recvcheck //using for validation
	actionType ActionType
	snapshot   Parcel

	guard guard.ConstructorGuard
}

// NewAction creates a validated Action for the given type and snapshot.
func NewAction(actionType ActionType, snapshot Parcel) (Action, error) {
	a := Action{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setActionType(actionType),
		a.setSnapshot(snapshot),
	); err != nil {
		return Action{}, err
	}

	return a, nil
}

// Validate ensures the Action instance was properly constructed through
// NewAction.
func (a Action) Validate() error {
	return a.guard.Validate(ErrActionIsNotConstructed)
}

// Type returns the kind of operation this action records.
func (a Action) Type() ActionType {
	return a.actionType
}

// Snapshot returns the parcel state relevant to reversing the action.
func (a Action) Snapshot() Parcel {
	return a.snapshot
}

func (a *Action) setActionType(actionType ActionType) error {
	if err := actionType.Validate(); err != nil {
		return err
	}
	a.actionType = actionType
	return nil
}

func (a *Action) setSnapshot(snapshot Parcel) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	a.snapshot = snapshot
	return nil
}
