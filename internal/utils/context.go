// Package utils holds small helpers shared by the transport and service
// layers: type-safe context keys, JSON response writing, JWT generation and
// validation, and trace-id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values stored by this
// package cannot collide with string-based keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key under which the auth middleware stores the
// account id extracted from the bearer token.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the account id placed in the context by the
// auth middleware. ok is false when the value is absent or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
