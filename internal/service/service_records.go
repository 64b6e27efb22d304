package service

import (
	"context"
	"fmt"

	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/store"
	"github.com/airdash/airdash/models"
)

type recordService struct {
	records store.RecordRepository
	logger  *logger.Logger
}

// NewRecordService constructs the server-side [RecordService].
func NewRecordService(records store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{records: records, logger: logger}
}

// Upsert implements [RecordService]. The repository applies last-writer-wins,
// so storing a record older than the authoritative copy is a silent no-op.
func (s *recordService) Upsert(ctx context.Context, userID int64, collection, key string, record models.Record) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if record.Key != key {
		return ErrKeyMismatch
	}
	if record.LastModified == 0 {
		record.LastModified = models.NowMillis()
	}

	if err := s.records.Upsert(ctx, userID, collection, record); err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int64("user_id", userID).
		Str("collection", collection).
		Str("key", key).
		Msg("record upserted")

	return nil
}

// Get implements [RecordService].
func (s *recordService) Get(ctx context.Context, userID int64, collection, key string) (models.Record, error) {
	record, err := s.records.Get(ctx, userID, collection, key)
	if err != nil {
		return models.Record{}, err
	}
	return record, nil
}

// List implements [RecordService].
func (s *recordService) List(ctx context.Context, userID int64, collection, keyPrefix string) (models.RecordListResponse, error) {
	records, err := s.records.List(ctx, userID, collection, keyPrefix)
	if err != nil {
		return models.RecordListResponse{}, fmt.Errorf("list records: %w", err)
	}

	return models.RecordListResponse{Records: records, Length: len(records)}, nil
}

// Delete implements [RecordService]. Deleting an absent record succeeds so a
// replayed queue entry cannot wedge a client.
func (s *recordService) Delete(ctx context.Context, userID int64, collection, key string) error {
	if err := s.records.Delete(ctx, userID, collection, key); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
