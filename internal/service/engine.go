package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/airdash/airdash/internal/adapter"
	"github.com/airdash/airdash/internal/bus"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/store"
	"github.com/airdash/airdash/models"
)

type syncEngine struct {
	collection string
	records    *store.RecordStore
	cache      store.DurableCache
	queue      SyncQueue
	remote     adapter.RemoteStore
	resolver   MergeResolver
	monitor    *SyncMonitor
	bus        *bus.Bus
	logger     *logger.Logger

	// mu serializes local mutations; drainMu admits one drain at a time.
	// They are separate so a slow network pass never blocks a local write.
	mu      sync.Mutex
	drainMu sync.Mutex
}

// NewSyncEngine constructs the [SyncEngine] for one collection and subscribes
// it to the bus so that going online or signing in immediately flushes any
// backlog.
func NewSyncEngine(collection string, cache store.DurableCache, remote adapter.RemoteStore, monitor *SyncMonitor, eventBus *bus.Bus, retryCap int, logger *logger.Logger) SyncEngine {
	e := &syncEngine{
		collection: collection,
		records:    store.NewRecordStore(),
		cache:      cache,
		queue:      NewSyncQueue(collection, cache, remote, eventBus, retryCap, logger),
		remote:     remote,
		resolver:   NewMergeResolver(),
		monitor:    monitor,
		bus:        eventBus,
		logger:     logger,
	}

	eventBus.Subscribe(e.onBusEvent)

	return e
}

// onBusEvent reacts to monitor transitions: reaching the online-authenticated
// state is the moment queued offline work becomes sendable.
func (e *syncEngine) onBusEvent(event models.Event, _ any) {
	switch event {
	case models.EventConnectivityChanged, models.EventIdentityChanged:
		e.TryDrainAsync()
	}
}

// Collection implements [SyncEngine].
func (e *syncEngine) Collection() string {
	return e.collection
}

// Put implements [SyncEngine]. The local store and durable cache are updated
// before any network activity; the save reaches the remote store through the
// queue.
func (e *syncEngine) Put(ctx context.Context, record models.Record) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if record.LastModified == 0 {
		record.LastModified = models.NowMillis()
	}

	e.mu.Lock()
	e.records.Put(record)
	err := e.queue.EnqueueSave(ctx, record)
	if persistErr := e.cache.PersistRecords(ctx, e.collection, e.records.All()); persistErr != nil && err == nil {
		err = fmt.Errorf("persist records: %w", persistErr)
	}
	e.mu.Unlock()

	e.TryDrainAsync()
	return err
}

// Delete implements [SyncEngine].
func (e *syncEngine) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, models.ErrEmptyKey)
	}

	e.mu.Lock()
	e.records.Delete(key)
	err := e.queue.EnqueueDelete(ctx, key)
	if persistErr := e.cache.PersistRecords(ctx, e.collection, e.records.All()); persistErr != nil && err == nil {
		err = fmt.Errorf("persist records: %w", persistErr)
	}
	e.mu.Unlock()

	e.TryDrainAsync()
	return err
}

// Get implements [SyncEngine]. It never touches the network.
func (e *syncEngine) Get(_ context.Context, key string) (models.Record, error) {
	record, ok := e.records.Get(key)
	if !ok {
		return models.Record{}, store.ErrRecordNotFound
	}
	return record, nil
}

// All implements [SyncEngine].
func (e *syncEngine) All(_ context.Context) map[string]models.Record {
	return e.records.All()
}

// Refresh implements [SyncEngine].
func (e *syncEngine) Refresh(ctx context.Context) error {
	if !e.monitor.ShouldSync() {
		return ErrNotSyncable
	}

	remoteRecords, err := e.remote.LoadCollection(ctx, e.collection, "")
	if err != nil {
		return fmt.Errorf("load remote collection: %w", err)
	}

	e.mu.Lock()
	merged := e.resolver.MergeSnapshot(e.records.All(), remoteRecords)
	e.records.Replace(merged)
	err = e.cache.PersistRecords(ctx, e.collection, merged)
	e.mu.Unlock()
	if err != nil {
		return fmt.Errorf("persist merged records: %w", err)
	}

	e.bus.Publish(models.EventRecordSynced, models.SyncedPayload{
		Collection: e.collection,
		Records:    len(merged),
	})

	return nil
}

// Drain implements [SyncEngine].
func (e *syncEngine) Drain(ctx context.Context) (models.DrainReport, error) {
	if !e.monitor.ShouldSync() {
		return models.DrainReport{Collection: e.collection}, ErrNotSyncable
	}

	e.drainMu.Lock()
	defer e.drainMu.Unlock()

	return e.queue.Drain(ctx)
}

// TryDrainAsync implements [SyncEngine]. The drain mutex doubles as the
// "already running" flag; losing the TryLock race means a drain is in flight
// and will pick up this work anyway.
func (e *syncEngine) TryDrainAsync() {
	if !e.monitor.ShouldSync() {
		return
	}
	if !e.drainMu.TryLock() {
		return
	}

	go func() {
		defer e.drainMu.Unlock()

		ctx := e.logger.WithContext(context.Background())
		if _, err := e.queue.Drain(ctx); err != nil {
			e.logger.Warn().
				Err(err).
				Str("collection", e.collection).
				Msg("background drain aborted")
		}
	}()
}

// Restore implements [SyncEngine].
func (e *syncEngine) Restore(ctx context.Context) error {
	records, err := e.cache.RestoreRecords(ctx, e.collection)
	if err != nil {
		return fmt.Errorf("restore records: %w", err)
	}

	e.mu.Lock()
	e.records.Replace(records)
	e.mu.Unlock()

	if err = e.queue.Restore(ctx); err != nil {
		return err
	}

	e.logger.Info().
		Str("collection", e.collection).
		Int("records", len(records)).
		Int("pending", e.queue.Pending()).
		Msg("collection restored from durable cache")

	return nil
}

// PendingCount implements [SyncEngine].
func (e *syncEngine) PendingCount() int {
	return e.queue.Pending()
}
