package service

import (
	"context"

	"github.com/airdash/airdash/models"
)

// MergeResolver decides which copy of a record survives when the local and
// remote stores diverge.
type MergeResolver interface {
	// Resolve returns the winning record. The record with the greater
	// LastModified wins; on an exact tie the local copy is kept so that a
	// device never discards its own write for an equally old remote one.
	Resolve(local, remote models.Record) models.Record

	// MergeSnapshot merges a full remote collection into the local one and
	// returns the combined result. Keys present only on one side are always
	// kept; keys present on both go through Resolve.
	MergeSnapshot(local, remote map[string]models.Record) map[string]models.Record
}

// SyncQueue is one collection's durable FIFO of outbound mutations. Entries
// survive restarts via the durable cache and are replayed in order by Drain.
type SyncQueue interface {
	// EnqueueSave appends a pending save. The record must pass validation.
	EnqueueSave(ctx context.Context, record models.Record) error

	// EnqueueDelete appends a pending delete.
	EnqueueDelete(ctx context.Context, key string) error

	// Drain replays due entries against the remote store, oldest first.
	// A failed entry keeps later mutations of the same key queued behind it
	// so per-key order is never inverted; other keys proceed. Entries whose
	// retry budget is exhausted are dropped and reported exactly once.
	//
	// An unauthorized response aborts the pass without charging the entry a
	// retry: that is a session problem, not an entry problem.
	Drain(ctx context.Context) (models.DrainReport, error)

	// Pending reports the number of queued entries.
	Pending() int

	// Entries returns a copy of the queue in replay order.
	Entries() []models.QueueEntry

	// Restore reloads the queue from the durable cache. Called once at
	// startup before any Enqueue.
	Restore(ctx context.Context) error
}

// SyncEngine is the per-collection coordinator: local reads and writes,
// durable caching, queueing, and replay. Local mutations always succeed
// immediately; the network is only ever touched by Drain and Refresh.
type SyncEngine interface {
	// Put stores the record locally, persists the collection snapshot, and
	// queues the save for replay. A zero LastModified is stamped with the
	// current time.
	Put(ctx context.Context, record models.Record) error

	// Delete removes the record locally and queues the delete for replay.
	// Deleting an absent key still queues, keeping devices convergent.
	Delete(ctx context.Context, key string) error

	// Get reads one record from the local store only.
	Get(ctx context.Context, key string) (models.Record, error)

	// All returns a copy of the local collection.
	All(ctx context.Context) map[string]models.Record

	// Refresh pulls the remote collection, merges it into the local copy
	// through the merge resolver, and persists the result. Requires the
	// online-authenticated state.
	Refresh(ctx context.Context) error

	// Drain flushes the outbound queue. Requires the online-authenticated
	// state; at most one drain runs at a time per engine.
	Drain(ctx context.Context) (models.DrainReport, error)

	// TryDrainAsync starts a background drain if none is running and the
	// monitor allows syncing. It never blocks the caller.
	TryDrainAsync()

	// Restore loads records and queue from the durable cache. Called once at
	// startup.
	Restore(ctx context.Context) error

	// PendingCount reports the queue backlog.
	PendingCount() int

	// Collection names the collection this engine owns.
	Collection() string
}

// SessionService manages the client's authenticated session: sign-up,
// sign-in, restoring a persisted session at startup, and sign-out.
type SessionService interface {
	// Register creates an account on the record server and signs in.
	Register(ctx context.Context, login, password string) (models.Session, error)

	// Login signs in to an existing account.
	Login(ctx context.Context, login, password string) (models.Session, error)

	// Restore installs the session persisted in the durable cache, if any.
	// Returns [ErrNoSession] when none is stored.
	Restore(ctx context.Context) (models.Session, error)

	// SignOut clears the session from the adapter, the durable cache, and
	// the monitor.
	SignOut(ctx context.Context) error
}
