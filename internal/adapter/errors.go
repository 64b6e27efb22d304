package adapter

import "errors"

// Sentinel errors mapped from server responses. Callers match them with
// [errors.Is] instead of inspecting status codes.
var (
	// ErrBadRequest corresponds to HTTP 400.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized corresponds to HTTP 401: the session is missing,
	// expired, or rejected.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden corresponds to HTTP 403.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound corresponds to HTTP 404: no record under the requested key.
	ErrNotFound = errors.New("record not found")
	// ErrConflict corresponds to HTTP 409 (e.g. registering a taken login).
	ErrConflict = errors.New("conflict")
	// ErrServerUnavailable corresponds to HTTP 5xx and gateway failures.
	ErrServerUnavailable = errors.New("server unavailable")
)
