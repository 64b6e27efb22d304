package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Raw queries for the server-side users table. These are static enough that
// a builder would only obscure them.
const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`
)

// psql builds parameterised queries for PostgreSQL ($N placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpsertRecordQuery builds the last-writer-wins upsert for the server
// records table. The DO UPDATE branch only fires when the incoming
// last_modified is not older than the stored one, so a stale replay can
// never clobber a newer remote copy; the statement still succeeds with zero
// affected rows.
func buildUpsertRecordQuery(userID int64, collection, key string, fields []byte, lastModified int64) (string, []any, error) {
	return psql.Insert("records").
		Columns("user_id", "collection", "key", "fields", "last_modified", "updated_at").
		Values(userID, collection, key, fields, lastModified, time.Now().UTC()).
		Suffix(`ON CONFLICT (user_id, collection, key) DO UPDATE
			SET fields = excluded.fields,
			    last_modified = excluded.last_modified,
			    updated_at = excluded.updated_at
			WHERE records.last_modified <= excluded.last_modified`).
		ToSql()
}

func buildGetRecordQuery(userID int64, collection, key string) (string, []any, error) {
	return psql.Select("key", "fields", "last_modified").
		From("records").
		Where(sq.Eq{"user_id": userID, "collection": collection, "key": key}).
		ToSql()
}

// buildListRecordsQuery selects a whole collection, optionally narrowed by a
// coarse key prefix (e.g. "2024-" for one year of monthly bills).
func buildListRecordsQuery(userID int64, collection, keyPrefix string) (string, []any, error) {
	b := psql.Select("key", "fields", "last_modified").
		From("records").
		Where(sq.Eq{"user_id": userID, "collection": collection})

	if keyPrefix != "" {
		b = b.Where(sq.Like{"key": keyPrefix + "%"})
	}

	return b.OrderBy("key").ToSql()
}

func buildDeleteRecordQuery(userID int64, collection, key string) (string, []any, error) {
	return psql.Delete("records").
		Where(sq.Eq{"user_id": userID, "collection": collection, "key": key}).
		ToSql()
}

// Cache-slot builders target SQLite and use its default ? placeholders.

// buildUpsertSnapshotQuery overwrites one snapshot slot (records or queue) of
// a collection in the local cache.
func buildUpsertSnapshotQuery(table, collection string, formatVersion int, payload []byte, writtenAt time.Time) (string, []any, error) {
	return sq.Insert(table).
		Columns("collection", "format_version", "payload", "written_at").
		Values(collection, formatVersion, payload, writtenAt).
		Suffix(`ON CONFLICT (collection) DO UPDATE
			SET format_version = excluded.format_version,
			    payload = excluded.payload,
			    written_at = excluded.written_at`).
		ToSql()
}

func buildSelectSnapshotQuery(table, collection string) (string, []any, error) {
	return sq.Select("format_version", "payload").
		From(table).
		Where(sq.Eq{"collection": collection}).
		ToSql()
}
