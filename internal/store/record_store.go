package store

import (
	"sync"

	"github.com/airdash/airdash/models"
)

// RecordStore is the in-memory keyed collection behind one sync engine. It
// owns record lifetime for the running process; the durable cache is only a
// projection of it.
//
// Put always overwrites regardless of the existing LastModified — the merge
// resolver is the single place that decides which copy wins, and it only
// calls Put with records it has already decided should win. There are no
// error conditions: this is pure in-memory state with no I/O.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]models.Record
}

// NewRecordStore constructs an empty RecordStore.
func NewRecordStore() *RecordStore {
	return &RecordStore{records: make(map[string]models.Record)}
}

// Put stores the record under its key, overwriting any existing record.
func (s *RecordStore) Put(record models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Key] = record.Clone()
}

// Get returns the record for key and whether it exists. The returned record
// is a copy; mutating it does not affect the store.
func (s *RecordStore) Get(key string) (models.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[key]
	if !ok {
		return models.Record{}, false
	}
	return rec.Clone(), true
}

// Delete removes the record for key. Deleting an absent key is a no-op.
func (s *RecordStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
}

// All returns a copy of the whole collection keyed by record key.
func (s *RecordStore) All() map[string]models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.Record, len(s.records))
	for k, rec := range s.records {
		out[k] = rec.Clone()
	}
	return out
}

// Replace swaps the entire collection for the given one. Used after a remote
// merge re-primes the store.
func (s *RecordStore) Replace(records map[string]models.Record) {
	next := make(map[string]models.Record, len(records))
	for k, rec := range records {
		next[k] = rec.Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = next
}

// Len returns the number of records currently held.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
