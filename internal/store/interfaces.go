package store

import (
	"context"

	"github.com/airdash/airdash/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_store_mock.go -package=mock

// DurableCache persists the per-collection record snapshots, the outbound
// sync queues, and the restored session to local non-volatile storage. It is
// a derived, rebuildable projection of in-memory state: the record store is
// authoritative while the process runs, the cache is authoritative across
// restarts until a remote merge happens.
//
// Restore methods never fail on absent, corrupt, or foreign data — such slots
// are logged and treated as empty.
type DurableCache interface {
	// PersistRecords overwrites the record snapshot slot for a collection.
	PersistRecords(ctx context.Context, collection string, records map[string]models.Record) error

	// RestoreRecords loads the record snapshot for a collection. A missing
	// slot, a format-version mismatch, or an undecodable payload yields an
	// empty map and a nil error.
	RestoreRecords(ctx context.Context, collection string) (map[string]models.Record, error)

	// PersistQueue overwrites the queue snapshot slot for a collection.
	PersistQueue(ctx context.Context, collection string, entries []models.QueueEntry) error

	// RestoreQueue loads the queue snapshot for a collection, empty on any
	// miss or corruption.
	RestoreQueue(ctx context.Context, collection string) ([]models.QueueEntry, error)

	// PersistSession stores the signed-in session so a restart does not need
	// the network to re-establish identity.
	PersistSession(ctx context.Context, session models.Session) error

	// RestoreSession returns the stored session or ErrSessionNotFound.
	RestoreSession(ctx context.Context) (models.Session, error)

	// ClearSession removes the stored session on sign-out. The queue slots
	// are untouched so pending local edits survive a sign-out/sign-in cycle.
	ClearSession(ctx context.Context) error

	// Close releases the underlying storage handle.
	Close() error
}

// UserRepository is the server-side account store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// RecordRepository is the server-side authoritative record store, scoped by
// account and collection. Upsert applies last-writer-wins on last_modified.
type RecordRepository interface {
	Upsert(ctx context.Context, userID int64, collection string, record models.Record) error
	Get(ctx context.Context, userID int64, collection, key string) (models.Record, error)
	List(ctx context.Context, userID int64, collection, keyPrefix string) (map[string]models.Record, error)
	Delete(ctx context.Context, userID int64, collection, key string) error
}
