package models

// ConnState is the network/session state machine position.
type ConnState string

const (
	StateOffline               ConnState = "offline"
	StateOnlineUnauthenticated ConnState = "online_unauthenticated"
	StateOnlineAuthenticated   ConnState = "online_authenticated"
)

// SyncState is a point-in-time snapshot of the engine's connectivity and
// backlog, as shown in the dashboard status strip. It lives for the process
// lifetime and is only ever mutated through the network/session monitor.
type SyncState struct {
	Online bool `json:"online"`

	// Identity is the authenticated identity id, empty when signed out.
	Identity string `json:"identity,omitempty"`

	// PendingCount is the number of not-yet-acknowledged queue entries.
	PendingCount int `json:"pending_count"`
}
