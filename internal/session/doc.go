// Package session implements Component A of the core: the per-virtual-user
// execution context (Session) and the per-executor shared-state fabric
// (ThreadData) that co-located sessions use to coordinate through counters,
// queues, and named locks.
//
// Everything in this package is scoped to exactly one single-threaded
// executor (spec.md §5) and is therefore deliberately unsynchronized: the
// phase scheduler and the executor's event loop guarantee serial access.
package session
