package kernel

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

const (
	// PriorityHighest is the most urgent delivery priority.
	PriorityHighest Priority = 1
	// PriorityLowest is the least urgent delivery priority.
	PriorityLowest Priority = 5
)

// Priority represents delivery urgency on a fixed scale from PriorityHighest
// to PriorityLowest, where a lower numeric value means a more urgent parcel.
//
// Priority is an immutable value object. The zero value is invalid and fails
// validation, so instances should be obtained through NewPriority.
//
// Example:
//
//	p, err := kernel.NewPriority(2)
//	if err != nil {
//	    // value was outside [1,5]
//	}
//	fmt.Println(p) // Output: P2
type Priority int

// NewPriority creates a Priority from a raw numeric value.
// Returns a ValueIsOutOfRangeError if the value is outside
// [PriorityHighest, PriorityLowest].
func NewPriority(value int) (Priority, error) {
	p := Priority(value)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

// Validate checks that the priority lies within the valid range.
// The zero value is invalid, which catches uninitialized priorities coming
// from direct struct construction.
func (p Priority) Validate() error {
	if p < PriorityHighest || p > PriorityLowest {
		return errs.NewValueIsOutOfRangeError("priority", int(p), int(PriorityHighest), int(PriorityLowest))
	}
	return nil
}

// Value returns the numeric priority value.
func (p Priority) Value() int {
	return int(p)
}

// HigherThan reports whether p is more urgent than other,
// meaning its numeric value is strictly smaller.
func (p Priority) HigherThan(other Priority) bool {
	return p < other
}

// String implements fmt.Stringer. Safe to call on invalid values.
func (p Priority) String() string {
	return fmt.Sprintf("P%d", int(p))
}
