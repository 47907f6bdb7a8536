// Package kernel contains shared value objects used across the parcel
// registry domain model.
//
// The package includes:
//   - Priority: validated delivery urgency in the range [1,5], 1 most urgent
//   - UUID: identity value object for audit records
//
// Value objects in this package are immutable and validate themselves at
// construction time, so any instance obtained through a constructor is
// guaranteed to be in a valid state.
package kernel
