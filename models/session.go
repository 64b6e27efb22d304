package models

import "time"

// Session is the client-side authentication state persisted in the durable
// cache so that a restart restores the signed-in identity without a network
// round trip.
type Session struct {
	// Identity is the identity id used in remote store paths.
	Identity string `json:"identity"`

	// Token is the compact JWT accepted by the remote store.
	Token string `json:"token"`

	// SavedAt records when the session was last written.
	SavedAt time.Time `json:"saved_at"`
}
