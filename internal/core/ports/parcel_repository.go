package ports

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
)

// ParcelRepository defines the storage contract for the active set: parcels
// registered but not yet delivered. Implementations preserve insertion order
// and resolve id lookups to the first match in that order.
type ParcelRepository interface {
	// Add appends a parcel to the end of the active set.
	// Id uniqueness is deliberately not enforced; registering a duplicate id
	// results in two records, and lookups resolve to the earlier one.
	Add(ctx context.Context, p parcel.Parcel) error

	// Get returns a copy of the first parcel with the given id.
	// Returns an ObjectNotFoundError when no parcel matches.
	Get(ctx context.Context, id int) (parcel.Parcel, error)

	// Update replaces the first parcel with a matching id.
	// Returns an ObjectNotFoundError when no parcel matches.
	Update(ctx context.Context, p parcel.Parcel) error

	// Remove deletes the first parcel with the given id and returns a copy.
	// Returns an ObjectNotFoundError when no parcel matches.
	Remove(ctx context.Context, id int) (parcel.Parcel, error)

	// GetAll returns copies of all active parcels in insertion order.
	GetAll(ctx context.Context) ([]parcel.Parcel, error)
}
