package models

// RecordListResponse is the server's reply to a collection (or prefix) load.
// The client merges Records into its local copy through the merge resolver.
type RecordListResponse struct {
	// Records maps record key to the authoritative remote copy.
	Records map[string]Record `json:"records"`

	// Length is the number of entries in Records, provided so the client can
	// validate the response without iterating the map.
	Length int `json:"length"`
}
