package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airdash/airdash/internal/bus"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/models"
)

type queueFixture struct {
	queue    *syncQueue
	remote   *fakeRemote
	cache    *fakeCache
	recorder *eventRecorder
	clock    time.Time
}

func newQueueFixture(t *testing.T, retryCap int) *queueFixture {
	t.Helper()

	f := &queueFixture{
		remote:   newFakeRemote(),
		cache:    newFakeCache(),
		recorder: &eventRecorder{},
		clock:    time.Unix(1_700_000_000, 0).UTC(),
	}

	eventBus := bus.New(logger.Nop())
	eventBus.Subscribe(f.recorder.listen)

	q := NewSyncQueue(models.CollectionBills, f.cache, f.remote, eventBus, retryCap, logger.Nop())
	f.queue = q.(*syncQueue)
	f.queue.now = func() time.Time { return f.clock }

	return f
}

func (f *queueFixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

func rec(key string, lastModified int64) models.Record {
	return models.Record{
		Key:          key,
		Fields:       map[string]any{"amount": float64(1)},
		LastModified: lastModified,
	}
}

func TestSyncQueue_EnqueueValidation(t *testing.T) {
	f := newQueueFixture(t, 3)
	ctx := context.Background()

	require.ErrorIs(t, f.queue.EnqueueSave(ctx, models.Record{Fields: map[string]any{"a": 1.0}}), ErrInvalidRecord)
	require.ErrorIs(t, f.queue.EnqueueSave(ctx, models.Record{Key: "k"}), ErrInvalidRecord)
	require.ErrorIs(t, f.queue.EnqueueDelete(ctx, ""), ErrInvalidRecord)
	assert.Zero(t, f.queue.Pending())

	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-03", 1)))
	require.NoError(t, f.queue.EnqueueDelete(ctx, "2024-02"))
	assert.Equal(t, 2, f.queue.Pending())
}

func TestSyncQueue_EnqueuePersistsSnapshot(t *testing.T) {
	f := newQueueFixture(t, 3)
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-03", 1)))

	persisted, err := f.cache.RestoreQueue(ctx, models.CollectionBills)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, models.OpSave, persisted[0].Op)
	assert.Equal(t, "2024-03", persisted[0].Key)
	require.NotNil(t, persisted[0].Payload)
	assert.Equal(t, int64(1), persisted[0].Payload.LastModified)
}

func TestSyncQueue_DrainEmptyQueue(t *testing.T) {
	f := newQueueFixture(t, 3)

	report, err := f.queue.Drain(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.DrainReport{Collection: models.CollectionBills}, report)
	assert.Empty(t, f.recorder.byEvent(models.EventQueueDrained))
}

func TestSyncQueue_DrainReplaysInOrder(t *testing.T) {
	f := newQueueFixture(t, 3)
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-03", 1)))
	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-04", 2)))
	require.NoError(t, f.queue.EnqueueDelete(ctx, "2024-03"))

	report, err := f.queue.Drain(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 3, report.Succeeded)
	assert.Zero(t, report.Remaining)
	assert.Equal(t, []string{"save:2024-03", "save:2024-04", "delete:2024-03"}, f.remote.opLog())

	// the delete replayed after its save, so the key is gone remotely
	_, ok := f.remote.records[models.CollectionBills]["2024-03"]
	assert.False(t, ok)
	assert.Equal(t, int64(2), f.remote.records[models.CollectionBills]["2024-04"].LastModified)
}

// A save that fails must hold back the delete queued behind it for the same
// key; replaying the delete first would resurrect order inversion.
func TestSyncQueue_FailedEntryBlocksItsKey(t *testing.T) {
	f := newQueueFixture(t, 5)
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-03", 1)))
	require.NoError(t, f.queue.EnqueueDelete(ctx, "2024-03"))
	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-04", 2)))

	f.remote.failNext("2024-03", 1)

	report, err := f.queue.Drain(ctx)
	require.NoError(t, err)

	// the blocked delete was never attempted; the unrelated key proceeded
	assert.Equal(t, 2, report.Attempted)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 2, report.Remaining)
	assert.Equal(t, []string{"save:2024-03", "save:2024-04"}, f.remote.opLog())

	// after the backoff window the pair replays in order
	f.advance(retryBackoffBase)
	report, err = f.queue.Drain(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Succeeded)
	assert.Zero(t, report.Remaining)
	assert.Equal(t, []string{"save:2024-03", "save:2024-04", "save:2024-03", "delete:2024-03"}, f.remote.opLog())
}

func TestSyncQueue_BackoffDefersRetry(t *testing.T) {
	f := newQueueFixture(t, 5)
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-03", 1)))
	f.remote.failNext("2024-03", 1)

	_, err := f.queue.Drain(ctx)
	require.NoError(t, err)

	// immediately draining again attempts nothing: the entry is backing off
	report, err := f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Attempted)
	assert.Equal(t, 1, report.Remaining)

	f.advance(retryBackoffBase)
	report, err = f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Zero(t, report.Remaining)
}

func TestSyncQueue_RetryCapDropsEntryOnce(t *testing.T) {
	f := newQueueFixture(t, 3)
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-03", 1)))
	f.remote.failForever("2024-03")

	// each pass charges one attempt; the third exhausts the budget
	for n := 0; n < 3; n++ {
		_, err := f.queue.Drain(ctx)
		require.NoError(t, err)
		f.advance(time.Hour)
	}

	assert.Zero(t, f.queue.Pending())

	dropped := f.recorder.byEvent(models.EventQueueEntryDropped)
	require.Len(t, dropped, 1)
	payload, ok := dropped[0].payload.(models.DroppedEntry)
	require.True(t, ok)
	assert.Equal(t, "2024-03", payload.Entry.Key)
	assert.Equal(t, 3, payload.Retries)
	assert.Contains(t, payload.Reason, "remote boom")

	// a fourth pass has nothing left to try and publishes nothing new
	report, err := f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Attempted)
	assert.Len(t, f.recorder.byEvent(models.EventQueueEntryDropped), 1)
}

// A dropped entry must not keep blocking later mutations of its key.
func TestSyncQueue_DroppedEntryUnblocksKey(t *testing.T) {
	f := newQueueFixture(t, 1)
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-03", 1)))
	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-03", 2)))

	f.remote.failNext("2024-03", 1)

	report, err := f.queue.Drain(ctx)
	require.NoError(t, err)

	// first entry dropped (cap 1), second replayed in the same pass
	assert.Equal(t, 2, report.Attempted)
	assert.Equal(t, 1, report.Dropped)
	assert.Equal(t, 1, report.Succeeded)
	assert.Zero(t, report.Remaining)
	assert.Equal(t, int64(2), f.remote.records[models.CollectionBills]["2024-03"].LastModified)
}

func TestSyncQueue_UnauthorizedAbortsWithoutCharge(t *testing.T) {
	f := newQueueFixture(t, 3)
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-03", 1)))
	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-04", 2)))
	f.remote.unauthorized = true

	report, err := f.queue.Drain(ctx)
	require.Error(t, err)

	assert.Equal(t, 1, report.Attempted)
	assert.Equal(t, 2, report.Remaining)

	// no retry was charged: both entries are still pristine
	for _, entry := range f.queue.Entries() {
		assert.Zero(t, entry.RetryCount)
		assert.True(t, entry.NextAttemptAt.IsZero())
	}

	// once the session is valid again everything replays immediately
	f.remote.unauthorized = false
	report, err = f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Succeeded)
	assert.Zero(t, report.Remaining)
}

func TestSyncQueue_DrainPublishesReport(t *testing.T) {
	f := newQueueFixture(t, 3)
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-03", 1)))

	report, err := f.queue.Drain(ctx)
	require.NoError(t, err)

	drained := f.recorder.byEvent(models.EventQueueDrained)
	require.Len(t, drained, 1)
	assert.Equal(t, report, drained[0].payload)
}

func TestSyncQueue_DeleteOfAbsentRemoteKeySucceeds(t *testing.T) {
	f := newQueueFixture(t, 3)
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueDelete(ctx, "never-uploaded"))

	report, err := f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Zero(t, report.Remaining)
}

func TestSyncQueue_RestoreRoundTrip(t *testing.T) {
	f := newQueueFixture(t, 3)
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueSave(ctx, rec("2024-03", 1)))
	require.NoError(t, f.queue.EnqueueDelete(ctx, "2024-02"))

	// a second queue over the same cache simulates a process restart
	rebuilt := NewSyncQueue(models.CollectionBills, f.cache, f.remote, bus.New(logger.Nop()), 3, logger.Nop()).(*syncQueue)
	rebuilt.now = f.queue.now
	require.NoError(t, rebuilt.Restore(ctx))

	require.Equal(t, 2, rebuilt.Pending())
	entries := rebuilt.Entries()
	assert.Equal(t, models.OpSave, entries[0].Op)
	assert.Equal(t, models.OpDelete, entries[1].Op)

	// new entries continue the ID sequence instead of colliding
	require.NoError(t, rebuilt.EnqueueSave(ctx, rec("2024-05", 5)))
	entries = rebuilt.Entries()
	assert.Greater(t, entries[2].ID, entries[1].ID)
}

func TestSyncQueue_PersistFailureKeepsEntryQueued(t *testing.T) {
	f := newQueueFixture(t, 3)
	ctx := context.Background()

	f.cache.persistQueueErr = errRemoteBoom

	err := f.queue.EnqueueSave(ctx, rec("2024-03", 1))
	require.Error(t, err)

	// still replayable within this process lifetime
	assert.Equal(t, 1, f.queue.Pending())
}
