package memory

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
)

// ParcelRepository implements ports.ParcelRepository over the store's active
// set. Lookups are linear scans in insertion order, first match wins.
type ParcelRepository struct {
	store *Store
}

// NewParcelRepository creates a repository bound to the given store.
func NewParcelRepository(store *Store) *ParcelRepository {
	return &ParcelRepository{store: store}
}

// Add appends the parcel to the end of the active set. Duplicate ids are
// accepted; uniqueness is assumed but not enforced.
func (r *ParcelRepository) Add(_ context.Context, p parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.store.active = append(r.store.active, p)
	return nil
}

// Get returns a copy of the first parcel with the given id.
func (r *ParcelRepository) Get(_ context.Context, id int) (parcel.Parcel, error) {
	for _, p := range r.store.active {
		if p.ID() == id {
			return p, nil
		}
	}
	return parcel.Parcel{}, errs.NewObjectNotFoundError("parcelID", id)
}

// Update replaces the first parcel with a matching id.
func (r *ParcelRepository) Update(_ context.Context, p parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}

	for i := range r.store.active {
		if r.store.active[i].ID() == p.ID() {
			r.store.active[i] = p
			return nil
		}
	}
	return errs.NewObjectNotFoundError("parcelID", p.ID())
}

// Remove deletes the first parcel with the given id and returns a copy.
func (r *ParcelRepository) Remove(_ context.Context, id int) (parcel.Parcel, error) {
	for i := range r.store.active {
		if r.store.active[i].ID() == id {
			removed := r.store.active[i]
			r.store.active = append(r.store.active[:i], r.store.active[i+1:]...)
			return removed, nil
		}
	}
	return parcel.Parcel{}, errs.NewObjectNotFoundError("parcelID", id)
}

// GetAll returns copies of all active parcels in insertion order.
func (r *ParcelRepository) GetAll(_ context.Context) ([]parcel.Parcel, error) {
	return r.store.ActiveParcels(), nil
}
