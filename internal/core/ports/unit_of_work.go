package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures each operation gets its own transaction boundary.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the registry
// containers. Every command runs inside one: Begin, mutate through the
// repositories, then Commit, with Rollback restoring the pre-Begin state on
// any failure. This is what guarantees that an operation reporting an error
// leaves no partial mutation behind.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit makes all changes since Begin permanent.
	// Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards all changes since Begin.
	// Calling Rollback after Commit is a no-op, so it is safe to defer.
	Rollback(ctx context.Context) error

	// ParcelRepository returns the active-set repository bound to the
	// current transaction.
	ParcelRepository() ParcelRepository

	// LoadingQueue returns the loading queue bound to the current transaction.
	LoadingQueue() LoadingQueue

	// DeliveryLog returns the delivered-parcel log bound to the current
	// transaction.
	DeliveryLog() DeliveryLog

	// ActionJournal returns the undo journal bound to the current transaction.
	ActionJournal() ActionJournal
}
