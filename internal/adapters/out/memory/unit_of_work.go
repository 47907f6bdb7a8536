package memory

import (
	"context"
	"errors"

	"parcels/internal/core/ports"
)

var (
	// ErrTransactionAlreadyStarted is returned by Begin when the unit of
	// work already has an open transaction.
	ErrTransactionAlreadyStarted = errors.New("transaction already started")

	// ErrNoActiveTransaction is returned by Commit when Begin was never
	// called or the transaction was already completed.
	ErrNoActiveTransaction = errors.New("no active transaction")
)

// UnitOfWorkFactory creates snapshot-based units of work over one store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work for a single command.
func (f *UnitOfWorkFactory) Create() *UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements ports.UnitOfWork with store snapshots. Begin copies
// the full store state; Rollback restores that copy; Commit discards it.
// Snapshots are cheap because all container elements are value types.
type UnitOfWork struct {
	store  *Store
	snap   storeSnapshot
	active bool
}

// Begin starts a transaction by snapshotting the store.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return ErrTransactionAlreadyStarted
	}

	u.snap = u.store.snapshot()
	u.active = true
	return nil
}

// Commit keeps all mutations made since Begin.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}

	u.active = false
	u.snap = storeSnapshot{}
	return nil
}

// Rollback restores the store to its state at Begin. After Commit, or
// without Begin, it is a no-op, which makes the deferred-rollback pattern in
// command handlers safe.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}

	u.store.restore(u.snap)
	u.active = false
	u.snap = storeSnapshot{}
	return nil
}

// ParcelRepository returns the active-set repository bound to the store.
func (u *UnitOfWork) ParcelRepository() ports.ParcelRepository {
	return NewParcelRepository(u.store)
}

// LoadingQueue returns the loading queue bound to the store.
func (u *UnitOfWork) LoadingQueue() ports.LoadingQueue {
	return NewLoadingQueue(u.store)
}

// DeliveryLog returns the delivered-parcel log bound to the store.
func (u *UnitOfWork) DeliveryLog() ports.DeliveryLog {
	return NewDeliveryLog(u.store)
}

// ActionJournal returns the undo journal bound to the store.
func (u *UnitOfWork) ActionJournal() ports.ActionJournal {
	return NewActionJournal(u.store)
}
