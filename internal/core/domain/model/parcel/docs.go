// Package parcel provides domain entities and business logic for parcel
// tracking in the logistics registry.
//
// The package includes:
//   - Parcel: the aggregate root describing a trackable parcel
//   - Action: a recorded mutating operation with the snapshot needed to
//     reverse it
//   - DeliveryRecord: an immutable audit entry for a completed delivery
//
// Key business rules:
//   - Parcels must carry non-empty sender, recipient, and address values
//   - Priority is validated against the [1,5] scale at registration time only
//   - Weight is stored as given; positivity is intentionally not checked
//   - Actions snapshot the full parcel state so reversal needs no deltas
//
// The package follows Domain-Driven Design principles: value semantics,
// private fields, constructor validation, and ConstructorGuard protection
// against zero-value instances.
package parcel
