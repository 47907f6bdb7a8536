package memory

import (
	"container/heap"
	"context"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
)

// LoadingQueue implements ports.LoadingQueue over the store's heap.
//
// Dequeue order is lowest priority number first. Equal priorities dequeue in
// insertion order via a monotonic sequence counter; a bare heap would leave
// tie order unspecified.
type LoadingQueue struct {
	store *Store
}

// NewLoadingQueue creates a queue bound to the given store.
func NewLoadingQueue(store *Store) *LoadingQueue {
	return &LoadingQueue{store: store}
}

// Enqueue adds a parcel copy to the queue.
func (q *LoadingQueue) Enqueue(_ context.Context, p parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}

	heap.Push(&q.store.queue, queuedParcel{parcel: p, seq: q.store.nextSeq()})
	return nil
}

// DequeueNext removes and returns the most urgent queued parcel.
func (q *LoadingQueue) DequeueNext(_ context.Context) (parcel.Parcel, error) {
	if q.store.queue.Len() == 0 {
		return parcel.Parcel{}, errs.NewCollectionIsEmptyError("loading queue")
	}

	item := heap.Pop(&q.store.queue).(queuedParcel)
	return item.parcel, nil
}

// Size returns the number of queued parcels.
func (q *LoadingQueue) Size(_ context.Context) (int, error) {
	return q.store.queue.Len(), nil
}
