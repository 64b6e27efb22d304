// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the airdash record server.
//
// The primary abstractions are [RemoteStore] for keyed record operations and
// [SessionClient] for account and session management. Both decouple the sync
// engine from the underlying protocol; the package currently ships a single
// HTTP/REST implementation ([NewHTTPRemoteAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/airdash/airdash/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteStore defines transport-agnostic access to the authoritative record
// store. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Every operation addresses a record by collection and key; the identity
// segment of the remote path is derived server-side from the bearer token.
type RemoteStore interface {
	// Save uploads one record. The server applies its own last-writer-wins
	// check, so saving a stale record succeeds without overwriting a newer
	// remote copy.
	Save(ctx context.Context, collection string, record models.Record) error

	// Load fetches the authoritative copy of a single record. Returns
	// [ErrNotFound] if the remote store has no record under that key.
	Load(ctx context.Context, collection, key string) (models.Record, error)

	// LoadCollection fetches every record of the collection whose key starts
	// with keyPrefix. An empty prefix fetches the whole collection.
	LoadCollection(ctx context.Context, collection, keyPrefix string) (map[string]models.Record, error)

	// Delete removes a record. Deleting an absent key succeeds, matching the
	// idempotency of queued delete replays.
	Delete(ctx context.Context, collection, key string) error

	// Ping checks whether the record server is reachable and healthy. It
	// needs no session and is used by the connectivity probe worker.
	Ping(ctx context.Context) error
}

// SessionClient defines account registration and sign-in against the record
// server, plus management of the bearer session attached to all subsequent
// [RemoteStore] calls.
type SessionClient interface {
	// Register creates a new account and returns the signed-in session. On
	// success the session is also stored via SetSession.
	Register(ctx context.Context, login, password string) (models.Session, error)

	// Login authenticates an existing account and returns the signed-in
	// session. On success the session is also stored via SetSession.
	Login(ctx context.Context, login, password string) (models.Session, error)

	// SetSession installs a previously obtained session (e.g. one restored
	// from the durable cache) for use by authenticated requests.
	SetSession(session models.Session)

	// Session returns the currently installed session. The zero value means
	// no session is installed.
	Session() models.Session

	// ClearSession drops the installed session. Subsequent authenticated
	// requests will fail with [ErrUnauthorized].
	ClearSession()
}
