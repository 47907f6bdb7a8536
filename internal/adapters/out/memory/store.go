package memory

import (
	"parcels/internal/core/domain/model/parcel"
)

// queuedParcel pairs a parcel copy with its insertion sequence number.
// The sequence breaks priority ties first-in-first-out, which keeps dequeue
// order deterministic where a plain heap would not be.
type queuedParcel struct {
	parcel parcel.Parcel
	seq    uint64
}

// loadingHeap is a min-heap over queued parcels: lowest priority number
// first, then lowest sequence number. It implements heap.Interface.
type loadingHeap []queuedParcel

func (h loadingHeap) Len() int { return len(h) }

func (h loadingHeap) Less(i, j int) bool {
	if h[i].parcel.Priority() != h[j].parcel.Priority() {
		return h[i].parcel.Priority().HigherThan(h[j].parcel.Priority())
	}
	return h[i].seq < h[j].seq
}

func (h loadingHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *loadingHeap) Push(x any) {
	*h = append(*h, x.(queuedParcel))
}

func (h *loadingHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Store owns the four registry containers. It is the single source of truth
// for all operations; repositories, queue, log, and journal returned by a
// unit of work all read and mutate this one instance.
type Store struct {
	active    []parcel.Parcel
	queue     loadingHeap
	delivered []parcel.DeliveryRecord
	journal   []parcel.Action
	seq       uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// ActiveParcels returns a copy of the active set in insertion order.
// Used by the read side, which bypasses the ports.
func (s *Store) ActiveParcels() []parcel.Parcel {
	out := make([]parcel.Parcel, len(s.active))
	copy(out, s.active)
	return out
}

// DeliveredRecords returns a copy of the delivered log in append order.
func (s *Store) DeliveredRecords() []parcel.DeliveryRecord {
	out := make([]parcel.DeliveryRecord, len(s.delivered))
	copy(out, s.delivered)
	return out
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// storeSnapshot is a full value copy of the store state. Parcels, records,
// and actions are value types, so copying the slices is a deep copy.
type storeSnapshot struct {
	active    []parcel.Parcel
	queue     loadingHeap
	delivered []parcel.DeliveryRecord
	journal   []parcel.Action
	seq       uint64
}

func (s *Store) snapshot() storeSnapshot {
	snap := storeSnapshot{
		active:    make([]parcel.Parcel, len(s.active)),
		queue:     make(loadingHeap, len(s.queue)),
		delivered: make([]parcel.DeliveryRecord, len(s.delivered)),
		journal:   make([]parcel.Action, len(s.journal)),
		seq:       s.seq,
	}
	copy(snap.active, s.active)
	copy(snap.queue, s.queue)
	copy(snap.delivered, s.delivered)
	copy(snap.journal, s.journal)
	return snap
}

func (s *Store) restore(snap storeSnapshot) {
	s.active = snap.active
	s.queue = snap.queue
	s.delivered = snap.delivered
	s.journal = snap.journal
	s.seq = snap.seq
}
