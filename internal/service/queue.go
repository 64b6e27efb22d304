package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/airdash/airdash/internal/adapter"
	"github.com/airdash/airdash/internal/bus"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/store"
	"github.com/airdash/airdash/models"
)

// retryBackoffBase is the delay before the first retransmission of a failed
// entry; each further failure doubles it.
const retryBackoffBase = 5 * time.Second

type syncQueue struct {
	collection string
	cache      store.DurableCache
	remote     adapter.RemoteStore
	bus        *bus.Bus
	retryCap   int
	logger     *logger.Logger

	// now is swappable so tests can steer the backoff clock.
	now func() time.Time

	mu      sync.Mutex
	entries []models.QueueEntry
	nextID  int64
}

// NewSyncQueue constructs a [SyncQueue] for one collection. retryCap is the
// number of replay attempts an entry gets before it is dropped; values below
// one are raised to one.
func NewSyncQueue(collection string, cache store.DurableCache, remote adapter.RemoteStore, eventBus *bus.Bus, retryCap int, logger *logger.Logger) SyncQueue {
	if retryCap < 1 {
		retryCap = 1
	}
	return &syncQueue{
		collection: collection,
		cache:      cache,
		remote:     remote,
		bus:        eventBus,
		retryCap:   retryCap,
		logger:     logger,
		now:        time.Now,
	}
}

// EnqueueSave implements [SyncQueue].
func (q *syncQueue) EnqueueSave(ctx context.Context, record models.Record) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	payload := record.Clone()
	return q.append(ctx, models.QueueEntry{
		Op:         models.OpSave,
		Collection: q.collection,
		Key:        record.Key,
		Payload:    &payload,
	})
}

// EnqueueDelete implements [SyncQueue].
func (q *syncQueue) EnqueueDelete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, models.ErrEmptyKey)
	}

	return q.append(ctx, models.QueueEntry{
		Op:         models.OpDelete,
		Collection: q.collection,
		Key:        key,
	})
}

func (q *syncQueue) append(ctx context.Context, entry models.QueueEntry) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	entry.ID = q.nextID
	entry.EnqueuedAt = q.now().UTC()
	q.entries = append(q.entries, entry)

	if err := q.cache.PersistQueue(ctx, q.collection, q.entries); err != nil {
		// The entry stays queued in memory; replay is still possible until
		// the process exits.
		q.logger.Err(err).
			Str("func", "*syncQueue.append").
			Str("collection", q.collection).
			Str("key", entry.Key).
			Msg("failed to persist queue snapshot")
		return fmt.Errorf("persist queue: %w", err)
	}

	return nil
}

// Drain implements [SyncQueue]. One pass gives every due entry at most one
// attempt; a failed entry blocks later entries for the same key so that a
// save enqueued before a delete can never be replayed after it.
func (q *syncQueue) Drain(ctx context.Context) (models.DrainReport, error) {
	log := logger.FromContext(ctx)

	snapshot := q.Entries()
	report := models.DrainReport{Collection: q.collection}

	var (
		finished []int64            // acknowledged or dropped, to be removed
		retried  = make(map[int64]models.QueueEntry)
		droppedE []models.DroppedEntry
		blocked  = make(map[string]bool)
		abortErr error
	)

	now := q.now().UTC()
	for _, entry := range snapshot {
		if blocked[entry.Key] {
			continue
		}
		if !entry.NextAttemptAt.IsZero() && now.Before(entry.NextAttemptAt) {
			blocked[entry.Key] = true
			continue
		}

		report.Attempted++
		err := q.send(ctx, entry)
		if err == nil {
			report.Succeeded++
			finished = append(finished, entry.ID)
			continue
		}

		if errors.Is(err, adapter.ErrUnauthorized) {
			// Session problem, not an entry problem: stop the pass without
			// charging the entry a retry.
			abortErr = fmt.Errorf("drain aborted: %w", err)
			break
		}

		entry.RetryCount++
		if entry.RetryCount >= q.retryCap {
			log.Warn().
				Str("collection", q.collection).
				Str("key", entry.Key).
				Str("op", string(entry.Op)).
				Int("retries", entry.RetryCount).
				Msg("queue entry exhausted its retry budget, dropping")

			report.Dropped++
			finished = append(finished, entry.ID)
			droppedE = append(droppedE, models.DroppedEntry{
				Entry:   entry,
				Reason:  err.Error(),
				Retries: entry.RetryCount,
			})
			continue
		}

		entry.NextAttemptAt = now.Add(q.backoffDelay(entry.RetryCount))
		retried[entry.ID] = entry
		blocked[entry.Key] = true
	}

	report.Remaining = q.reconcile(ctx, finished, retried)

	for _, dropped := range droppedE {
		q.bus.Publish(models.EventQueueEntryDropped, dropped)
	}
	if report.Attempted > 0 {
		q.bus.Publish(models.EventQueueDrained, report)
	}

	return report, abortErr
}

func (q *syncQueue) send(ctx context.Context, entry models.QueueEntry) error {
	switch entry.Op {
	case models.OpSave:
		return q.remote.Save(ctx, q.collection, *entry.Payload)
	case models.OpDelete:
		err := q.remote.Delete(ctx, q.collection, entry.Key)
		if errors.Is(err, adapter.ErrNotFound) {
			return nil
		}
		return err
	default:
		return fmt.Errorf("unknown queue operation %q", entry.Op)
	}
}

// reconcile applies the outcome of a drain pass to the live queue and
// persists the result. Entries enqueued while the pass was running are
// untouched. Returns the number of entries still queued.
func (q *syncQueue) reconcile(ctx context.Context, finished []int64, retried map[int64]models.QueueEntry) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	done := make(map[int64]bool, len(finished))
	for _, id := range finished {
		done[id] = true
	}

	kept := q.entries[:0]
	for _, entry := range q.entries {
		if done[entry.ID] {
			continue
		}
		if updated, ok := retried[entry.ID]; ok {
			entry = updated
		}
		kept = append(kept, entry)
	}
	q.entries = kept

	if err := q.cache.PersistQueue(ctx, q.collection, q.entries); err != nil {
		q.logger.Err(err).
			Str("func", "*syncQueue.reconcile").
			Str("collection", q.collection).
			Msg("failed to persist queue snapshot after drain")
	}

	return len(q.entries)
}

func (q *syncQueue) backoffDelay(retryCount int) time.Duration {
	delay := retryBackoffBase
	for i := 1; i < retryCount; i++ {
		delay *= 2
	}
	return delay
}

// Pending implements [SyncQueue].
func (q *syncQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Entries implements [SyncQueue].
func (q *syncQueue) Entries() []models.QueueEntry {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.QueueEntry, len(q.entries))
	copy(out, q.entries)
	return out
}

// Restore implements [SyncQueue].
func (q *syncQueue) Restore(ctx context.Context) error {
	entries, err := q.cache.RestoreQueue(ctx, q.collection)
	if err != nil {
		return fmt.Errorf("restore queue: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = entries
	q.nextID = 0
	for _, entry := range entries {
		if entry.ID > q.nextID {
			q.nextID = entry.ID
		}
	}

	return nil
}
