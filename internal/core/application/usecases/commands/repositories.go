// Package commands contains business operations that modify registry state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and mutation through the ports.
package commands

import (
	"context"

	"parcels/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each command declares the narrowest combination of containers it
// touches.
type (
	// TxManager handles transaction lifecycle.
	// Ensures an operation either applies completely or not at all.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the active set within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// LoadingQueueFactory provides access to the loading queue within a transaction.
	LoadingQueueFactory interface {
		LoadingQueue() ports.LoadingQueue
	}

	// DeliveryLogFactory provides access to the delivered log within a transaction.
	DeliveryLogFactory interface {
		DeliveryLog() ports.DeliveryLog
	}

	// ActionJournalFactory provides access to the undo journal within a transaction.
	ActionJournalFactory interface {
		ActionJournal() ports.ActionJournal
	}

	// RegistryUoW manages transactions touching the active set and the undo
	// journal. Used by register, update-weight, and undo.
	RegistryUoW interface {
		TxManager
		ParcelRepoFactory
		ActionJournalFactory
	}

	// RegistryUoWFactory creates new registry unit of work instances.
	RegistryUoWFactory interface {
		Create() RegistryUoW
	}

	// LoadingUoW manages transactions touching the active set and the
	// loading queue. Used by the load operation.
	LoadingUoW interface {
		TxManager
		ParcelRepoFactory
		LoadingQueueFactory
	}

	// LoadingUoWFactory creates new loading unit of work instances.
	LoadingUoWFactory interface {
		Create() LoadingUoW
	}

	// DispatchUoW manages transactions touching only the loading queue.
	DispatchUoW interface {
		TxManager
		LoadingQueueFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// DeliveryUoW manages transactions across the active set, the delivered
	// log, and the undo journal. Used by complete-delivery.
	DeliveryUoW interface {
		TxManager
		ParcelRepoFactory
		DeliveryLogFactory
		ActionJournalFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
