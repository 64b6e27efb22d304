package models

import "time"

// User represents a dashboard account used for authentication against the
// remote store. Credential fields must never leave trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the account.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique account login, typically an e-mail address.
	Login string `json:"login"`

	// Password carries the plaintext password on register/login requests
	// only. The server stores a bcrypt hash, never this value.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash kept at the persistence layer.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
