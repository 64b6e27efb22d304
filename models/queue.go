package models

import "time"

// Operation is the kind of mutation held in the sync queue.
type Operation string

const (
	OpSave   Operation = "save"
	OpDelete Operation = "delete"
)

// QueueEntry is one pending outbound mutation. Entries are owned by the sync
// queue from the moment they are accepted until the remote store acknowledges
// them or the retry cap drops them.
type QueueEntry struct {
	// ID is monotonic per queue and only used for ordering and removal.
	ID int64 `json:"id"`

	Op         Operation `json:"op"`
	Collection string    `json:"collection"`
	Key        string    `json:"key"`

	// Payload is set for saves and nil for deletes.
	Payload *Record `json:"payload,omitempty"`

	EnqueuedAt time.Time `json:"enqueued_at"`

	// RetryCount starts at 0 and is bumped on every failed transmission.
	// Once it reaches the configured cap the entry is dropped and reported.
	RetryCount int `json:"retry_count"`

	// NextAttemptAt delays retransmission of an already-failed entry.
	// Zero means the entry is due immediately.
	NextAttemptAt time.Time `json:"next_attempt_at,omitzero"`
}
