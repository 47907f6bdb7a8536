// Package memory implements the registry ports over process-local state.
//
// A single Store owns the four containers of the registry: the
// insertion-ordered active set, the priority-ordered loading queue, the
// append-only delivered log, and the LIFO undo journal. All state is lost
// when the process exits.
//
// The UnitOfWork implementation snapshots the whole store on Begin and
// restores it on Rollback. Commands rely on this to satisfy the rule that an
// operation which reports an error leaves no partial mutation behind.
//
// The store is not safe for concurrent use. The registry is driven by a
// single synchronous menu loop, so no locking is applied.
package memory
