package models

import (
	"errors"
	"time"
)

// Collection identifiers used by the dashboard. Each collection gets its own
// sync engine, durable cache slot, and outbound queue.
const (
	CollectionBills    = "bills"
	CollectionActivity = "activity"
	CollectionPower    = "power"
)

// Collections lists every collection the dashboard syncs.
func Collections() []string {
	return []string{CollectionBills, CollectionActivity, CollectionPower}
}

var (
	// ErrEmptyKey is returned when a record without a key is offered to the
	// engine. Keys address records both locally and in the remote store, so a
	// keyless record can never be synced.
	ErrEmptyKey = errors.New("record key is empty")

	// ErrEmptyFields is returned when a save carries no payload at all.
	ErrEmptyFields = errors.New("record has no fields")
)

// Record is a single keyed, timestamped dashboard data item: one monthly
// bill, one activity-log entry, or one daily power summary. Records are
// treated as immutable once handed out; an edit always produces a
// replacement record with a fresh LastModified stamp.
type Record struct {
	// Key is unique within its collection (e.g. "2024-03" for a monthly
	// bill, "2024-03-14" for a daily power summary).
	Key string `json:"key"`

	// Fields holds the application payload as named scalar values
	// (amounts, kilowatt-hours, labels). The engine never interprets them.
	Fields map[string]any `json:"fields"`

	// LastModified is a millisecond unix timestamp. The greater timestamp
	// wins whenever local and remote copies of the same key diverge.
	LastModified int64 `json:"last_modified"`
}

// Validate reports whether the record is complete enough to be stored and
// queued for sync.
func (r Record) Validate() error {
	if r.Key == "" {
		return ErrEmptyKey
	}
	if len(r.Fields) == 0 {
		return ErrEmptyFields
	}
	return nil
}

// Clone returns a deep-enough copy of the record so that callers holding the
// original cannot mutate what the store has accepted. Field values are scalars
// by contract, so copying the map itself is sufficient.
func (r Record) Clone() Record {
	cp := r
	if r.Fields != nil {
		cp.Fields = make(map[string]any, len(r.Fields))
		for k, v := range r.Fields {
			cp.Fields[k] = v
		}
	}
	return cp
}

// NowMillis returns the current time in the unit used by
// [Record.LastModified].
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
