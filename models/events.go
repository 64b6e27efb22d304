package models

// Event names published on the notification bus. Fan-out is synchronous and
// per-listener isolated; payload types are documented per event.
type Event string

const (
	// EventRecordSynced fires after a remote refresh has been merged into the
	// local store. Payload: [SyncedPayload].
	EventRecordSynced Event = "recordSynced"

	// EventIdentityChanged fires on sign-in and sign-out.
	// Payload: the identity id string, empty on sign-out.
	EventIdentityChanged Event = "identityChanged"

	// EventConnectivityChanged fires on every online/offline transition.
	// Payload: bool, true when online.
	EventConnectivityChanged Event = "connectivityChanged"

	// EventQueueDrained fires after every drain pass that attempted at least
	// one entry. Payload: [DrainReport].
	EventQueueDrained Event = "queueDrained"

	// EventQueueEntryDropped fires exactly once per entry that exhausted its
	// retry budget. Payload: [DroppedEntry]. This is a non-fatal warning, not
	// an error: the local copy of the record is untouched.
	EventQueueEntryDropped Event = "queueEntryDropped"
)

// SyncedPayload describes a completed remote merge for one collection.
type SyncedPayload struct {
	Collection string `json:"collection"`
	Records    int    `json:"records"`
}

// DrainReport summarises one drain pass over a collection's queue.
type DrainReport struct {
	Collection string `json:"collection"`
	Attempted  int    `json:"attempted"`
	Succeeded  int    `json:"succeeded"`
	Dropped    int    `json:"dropped"`
	Remaining  int    `json:"remaining"`
}

// DroppedEntry reports a permanently failed queue entry.
type DroppedEntry struct {
	Entry   QueueEntry `json:"entry"`
	Reason  string     `json:"reason"`
	Retries int        `json:"retries"`
}
