package ports

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
)

// LoadingQueue defines the contract for the priority-ordered holding area of
// parcels awaiting dispatch. Entries are copies: enqueueing a parcel never
// removes it from the active set, so the same id can sit in both.
type LoadingQueue interface {
	// Enqueue adds a parcel copy to the queue in priority order.
	Enqueue(ctx context.Context, p parcel.Parcel) error

	// DequeueNext removes and returns the most urgent parcel: the one with
	// the lowest priority number, first-in-first-out among equal priorities.
	// Returns a CollectionIsEmptyError when the queue is empty.
	DequeueNext(ctx context.Context) (parcel.Parcel, error)

	// Size returns the number of queued parcels.
	Size(ctx context.Context) (int, error)
}
