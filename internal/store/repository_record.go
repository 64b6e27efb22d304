package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/models"
)

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository]. It executes all record operations against the
// "records" table using the embedded [*DB] connection.
//
// Writes apply the same last-writer-wins rule the client-side merge resolver
// uses: an upsert whose last_modified is older than the stored row leaves
// the row untouched, so a delayed queue replay from one device can never
// roll back a fresher write from another.
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert implements [RecordRepository]. Zero affected rows is a success: it
// means the stored copy was newer and won.
func (r *recordRepository) Upsert(ctx context.Context, userID int64, collection string, record models.Record) error {
	log := logger.FromContext(ctx)

	fields, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("encode record fields: %w", err)
	}

	query, args, err := buildUpsertRecordQuery(userID, collection, record.Key, fields, record.LastModified)
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.Upsert").
			Int64("user_id", userID).
			Str("collection", collection).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*recordRepository.Upsert").
			Int64("user_id", userID).
			Str("collection", collection).
			Str("key", record.Key).
			Msg("failed to execute record upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get implements [RecordRepository].
func (r *recordRepository) Get(ctx context.Context, userID int64, collection, key string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(userID, collection, key)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.QueryRowContext(ctx, query, args...)

	record, err := scanRecord(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}

		log.Err(err).
			Str("func", "*recordRepository.Get").
			Int64("user_id", userID).
			Str("collection", collection).
			Str("key", key).
			Msg("failed to read record")
		return models.Record{}, err
	}

	return record, nil
}

// List implements [RecordRepository]. An empty keyPrefix selects the whole
// collection.
func (r *recordRepository) List(ctx context.Context, userID int64, collection, keyPrefix string) (map[string]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(userID, collection, keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.List").
			Int64("user_id", userID).
			Str("collection", collection).
			Msg("failed to execute record list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make(map[string]models.Record)
	for rows.Next() {
		record, scanErr := scanRecord(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		results[record.Key] = record
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// Delete implements [RecordRepository]. Deleting an absent record is a
// no-op, mirroring the idempotency of queued delete replays.
func (r *recordRepository) Delete(ctx context.Context, userID int64, collection, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(userID, collection, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*recordRepository.Delete").
			Int64("user_id", userID).
			Str("collection", collection).
			Str("key", key).
			Msg("failed to execute record delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// scanRecord reads one records row via the given scan function and decodes
// the JSONB fields column.
func scanRecord(scan func(dest ...any) error) (models.Record, error) {
	var (
		record models.Record
		fields []byte
	)
	if err := scan(&record.Key, &fields, &record.LastModified); err != nil {
		return models.Record{}, err
	}

	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &record.Fields); err != nil {
			return models.Record{}, fmt.Errorf("decode record fields: %w", err)
		}
	}

	return record, nil
}
