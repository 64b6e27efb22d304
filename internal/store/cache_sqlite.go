package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/models"
)

// CacheFormatVersion tags every persisted snapshot. Bump it whenever the
// payload encoding changes; snapshots with a foreign version restore as
// empty instead of being misread.
const CacheFormatVersion = 1

const (
	recordSnapshotsTable = "record_snapshots"
	queueSnapshotsTable  = "queue_snapshots"
)

// queueSnapshot is the persisted queue slot payload.
type queueSnapshot struct {
	Entries []models.QueueEntry `json:"entries"`
}

// recordSnapshot is the persisted record slot payload.
type recordSnapshot struct {
	Data map[string]models.Record `json:"data"`
}

// sqliteCache implements [DurableCache] on a local SQLite file. Each persist
// is a full overwrite of one slot row: {collection, format_version, payload,
// written_at}. Restores treat a missing row, a format-version mismatch, or
// an undecodable payload as an empty cache — corrupt local data must never
// take the dashboard down.
type sqliteCache struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteCache wraps an already-opened (and migrated) cache database.
func NewSQLiteCache(db *sql.DB, log *logger.Logger) DurableCache {
	return &sqliteCache{db: db, logger: log}
}

// PersistRecords implements [DurableCache].
func (c *sqliteCache) PersistRecords(ctx context.Context, collection string, records map[string]models.Record) error {
	if records == nil {
		records = map[string]models.Record{}
	}
	return c.persistSlot(ctx, recordSnapshotsTable, collection, recordSnapshot{Data: records})
}

// RestoreRecords implements [DurableCache].
func (c *sqliteCache) RestoreRecords(ctx context.Context, collection string) (map[string]models.Record, error) {
	var snap recordSnapshot
	ok := c.restoreSlot(ctx, recordSnapshotsTable, collection, &snap)
	if !ok || snap.Data == nil {
		return map[string]models.Record{}, nil
	}
	return snap.Data, nil
}

// PersistQueue implements [DurableCache].
func (c *sqliteCache) PersistQueue(ctx context.Context, collection string, entries []models.QueueEntry) error {
	if entries == nil {
		entries = []models.QueueEntry{}
	}
	return c.persistSlot(ctx, queueSnapshotsTable, collection, queueSnapshot{Entries: entries})
}

// RestoreQueue implements [DurableCache].
func (c *sqliteCache) RestoreQueue(ctx context.Context, collection string) ([]models.QueueEntry, error) {
	var snap queueSnapshot
	ok := c.restoreSlot(ctx, queueSnapshotsTable, collection, &snap)
	if !ok || snap.Entries == nil {
		return []models.QueueEntry{}, nil
	}
	return snap.Entries, nil
}

// PersistSession implements [DurableCache]. The session lives in a
// single-row table so that at most one identity is ever restored.
func (c *sqliteCache) PersistSession(ctx context.Context, session models.Session) error {
	const upsertSession = `INSERT INTO sessions (id, identity, token, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET identity = excluded.identity,
			token = excluded.token, saved_at = excluded.saved_at`

	if _, err := c.db.ExecContext(ctx, upsertSession, session.Identity, session.Token, session.SavedAt); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// RestoreSession implements [DurableCache].
func (c *sqliteCache) RestoreSession(ctx context.Context) (models.Session, error) {
	const selectSession = `SELECT identity, token, saved_at FROM sessions WHERE id = 1`

	var session models.Session
	row := c.db.QueryRowContext(ctx, selectSession)
	if err := row.Scan(&session.Identity, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// ClearSession implements [DurableCache].
func (c *sqliteCache) ClearSession(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = 1`); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Close implements [DurableCache].
func (c *sqliteCache) Close() error {
	return c.db.Close()
}

func (c *sqliteCache) persistSlot(ctx context.Context, table, collection string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s slot for %q: %w", table, collection, err)
	}

	query, args, err := buildUpsertSnapshotQuery(table, collection, CacheFormatVersion, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// restoreSlot loads one slot into dst and reports whether usable data was
// found. Every failure path is a cache miss by design: the slot may be
// absent (first run), written by a newer build, or torn by a crash.
func (c *sqliteCache) restoreSlot(ctx context.Context, table, collection string, dst any) bool {
	query, args, err := buildSelectSnapshotQuery(table, collection)
	if err != nil {
		c.logger.Err(err).Str("table", table).Str("collection", collection).Msg("building snapshot select failed")
		return false
	}

	var (
		version int
		payload []byte
	)
	row := c.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&version, &payload); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			c.logger.Warn().Err(err).Str("table", table).Str("collection", collection).Msg("unreadable cache slot, treating as empty")
		}
		return false
	}

	if version != CacheFormatVersion {
		c.logger.Warn().
			Int("found", version).
			Int("want", CacheFormatVersion).
			Str("table", table).
			Str("collection", collection).
			Msg("cache format version mismatch, treating as empty")
		return false
	}

	if err = json.Unmarshal(payload, dst); err != nil {
		c.logger.Warn().Err(err).Str("table", table).Str("collection", collection).Msg("corrupt cache slot, treating as empty")
		return false
	}

	return true
}
