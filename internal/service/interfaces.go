package service

import (
	"context"

	"github.com/airdash/airdash/models"
)

// AuthService is the server-side account and token service.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RecordService is the server-side record store service. All operations are
// scoped to the authenticated user's identity.
type RecordService interface {
	// Upsert stores a record under the given collection and key, applying
	// the last-writer-wins rule against any stored copy.
	Upsert(ctx context.Context, userID int64, collection, key string, record models.Record) error

	// Get returns the authoritative copy of one record.
	Get(ctx context.Context, userID int64, collection, key string) (models.Record, error)

	// List returns every record of the collection whose key starts with
	// keyPrefix. An empty prefix selects the whole collection.
	List(ctx context.Context, userID int64, collection, keyPrefix string) (models.RecordListResponse, error)

	// Delete removes a record. Deleting an absent key is a no-op.
	Delete(ctx context.Context, userID int64, collection, key string) error
}
