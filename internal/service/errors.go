package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrInvalidRecord wraps the record validation failures returned by
	// [models.Record.Validate].
	ErrInvalidRecord = errors.New("invalid record")

	// ErrKeyMismatch is returned when a record's key does not match the key
	// it is being stored under.
	ErrKeyMismatch = errors.New("record key does not match requested key")

	// ErrNotSyncable is returned when a drain or refresh is requested while
	// the monitor is not in the online-authenticated state.
	ErrNotSyncable = errors.New("sync requires an online, authenticated session")

	// ErrNoSession is returned when a session restore finds nothing in the
	// durable cache.
	ErrNoSession = errors.New("no stored session")
)
