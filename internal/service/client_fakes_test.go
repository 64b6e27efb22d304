package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/airdash/airdash/internal/adapter"
	"github.com/airdash/airdash/internal/store"
	"github.com/airdash/airdash/models"
)

var errRemoteBoom = errors.New("remote boom")

// fakeRemote is an in-memory stand-in for the record server. Failures are
// scripted per key: a positive count fails that many calls, failAlways fails
// every call for the key.
type fakeRemote struct {
	mu sync.Mutex

	records    map[string]map[string]models.Record
	failures   map[string]int
	failAlways map[string]bool
	failErr    error

	unauthorized bool
	pingErr      error

	ops []string
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		records:    make(map[string]map[string]models.Record),
		failures:   make(map[string]int),
		failAlways: make(map[string]bool),
		failErr:    errRemoteBoom,
	}
}

func (f *fakeRemote) failNext(key string, times int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[key] = times
}

func (f *fakeRemote) failForever(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAlways[key] = true
}

func (f *fakeRemote) seed(collection string, records ...models.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.records[collection] == nil {
		f.records[collection] = make(map[string]models.Record)
	}
	for _, r := range records {
		f.records[collection][r.Key] = r
	}
}

func (f *fakeRemote) opLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.ops))
	copy(out, f.ops)
	return out
}

func (f *fakeRemote) checkFailure(key string) error {
	if f.unauthorized {
		return adapter.ErrUnauthorized
	}
	if f.failAlways[key] {
		return f.failErr
	}
	if f.failures[key] > 0 {
		f.failures[key]--
		return f.failErr
	}
	return nil
}

func (f *fakeRemote) Save(_ context.Context, collection string, record models.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ops = append(f.ops, "save:"+record.Key)
	if err := f.checkFailure(record.Key); err != nil {
		return err
	}

	if f.records[collection] == nil {
		f.records[collection] = make(map[string]models.Record)
	}
	// same LWW rule as the real server
	if stored, ok := f.records[collection][record.Key]; !ok || stored.LastModified <= record.LastModified {
		f.records[collection][record.Key] = record.Clone()
	}
	return nil
}

func (f *fakeRemote) Load(_ context.Context, collection, key string) (models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ops = append(f.ops, "load:"+key)
	if err := f.checkFailure(key); err != nil {
		return models.Record{}, err
	}

	record, ok := f.records[collection][key]
	if !ok {
		return models.Record{}, adapter.ErrNotFound
	}
	return record.Clone(), nil
}

func (f *fakeRemote) LoadCollection(_ context.Context, collection, keyPrefix string) (map[string]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ops = append(f.ops, "loadCollection:"+collection)
	if f.unauthorized {
		return nil, adapter.ErrUnauthorized
	}
	if f.pingErr != nil {
		return nil, f.pingErr
	}

	out := make(map[string]models.Record)
	for key, record := range f.records[collection] {
		if keyPrefix == "" || strings.HasPrefix(key, keyPrefix) {
			out[key] = record.Clone()
		}
	}
	return out, nil
}

func (f *fakeRemote) Delete(_ context.Context, collection, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ops = append(f.ops, "delete:"+key)
	if err := f.checkFailure(key); err != nil {
		return err
	}

	delete(f.records[collection], key)
	return nil
}

func (f *fakeRemote) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

// fakeCache is an in-memory DurableCache used to keep service tests free of
// database plumbing. The store package tests cover the real SQLite cache.
type fakeCache struct {
	mu sync.Mutex

	records map[string]map[string]models.Record
	queues  map[string][]models.QueueEntry
	session *models.Session

	persistQueueErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		records: make(map[string]map[string]models.Record),
		queues:  make(map[string][]models.QueueEntry),
	}
}

func (f *fakeCache) PersistRecords(_ context.Context, collection string, records map[string]models.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := make(map[string]models.Record, len(records))
	for key, record := range records {
		snapshot[key] = record.Clone()
	}
	f.records[collection] = snapshot
	return nil
}

func (f *fakeCache) RestoreRecords(_ context.Context, collection string) (map[string]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]models.Record, len(f.records[collection]))
	for key, record := range f.records[collection] {
		out[key] = record.Clone()
	}
	return out, nil
}

func (f *fakeCache) PersistQueue(_ context.Context, collection string, entries []models.QueueEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.persistQueueErr != nil {
		return f.persistQueueErr
	}

	snapshot := make([]models.QueueEntry, len(entries))
	copy(snapshot, entries)
	f.queues[collection] = snapshot
	return nil
}

func (f *fakeCache) RestoreQueue(_ context.Context, collection string) ([]models.QueueEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.QueueEntry, len(f.queues[collection]))
	copy(out, f.queues[collection])
	return out, nil
}

func (f *fakeCache) PersistSession(_ context.Context, session models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = &session
	return nil
}

func (f *fakeCache) RestoreSession(context.Context) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.session == nil {
		return models.Session{}, store.ErrSessionNotFound
	}
	return *f.session, nil
}

func (f *fakeCache) ClearSession(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = nil
	return nil
}

func (f *fakeCache) Close() error { return nil }

// fakeSessions is an in-memory SessionClient.
type fakeSessions struct {
	mu sync.Mutex

	session  models.Session
	authErr  error
	accounts map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{accounts: make(map[string]string)}
}

func (f *fakeSessions) Register(_ context.Context, login, password string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.authErr != nil {
		return models.Session{}, f.authErr
	}
	if _, exists := f.accounts[login]; exists {
		return models.Session{}, adapter.ErrConflict
	}
	f.accounts[login] = password

	f.session = models.Session{Identity: "1", Token: "token-" + login}
	return f.session, nil
}

func (f *fakeSessions) Login(_ context.Context, login, password string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.authErr != nil {
		return models.Session{}, f.authErr
	}
	if stored, ok := f.accounts[login]; !ok || stored != password {
		return models.Session{}, adapter.ErrUnauthorized
	}

	f.session = models.Session{Identity: "1", Token: "token-" + login}
	return f.session, nil
}

func (f *fakeSessions) SetSession(session models.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = session
}

func (f *fakeSessions) Session() models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

func (f *fakeSessions) ClearSession() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = models.Session{}
}

// eventRecorder captures bus publications for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	event   models.Event
	payload any
}

func (r *eventRecorder) listen(event models.Event, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{event: event, payload: payload})
}

func (r *eventRecorder) byEvent(event models.Event) []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []recordedEvent
	for _, e := range r.events {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}
