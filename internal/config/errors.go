package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid client sync settings
	// (for example, missing server URL, zero timeout, or a retry cap
	// below one).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// required by the client (for example, an empty namespace).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero flush or probe interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
