// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The shared structured config stays permissive: the client never sets a
// database DSN and the server never sets cache settings, so role-specific
// checks live on the derived views instead.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Remote.ServerURL == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Remote.RetryCap < 1 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.App.Namespace == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.FlushInterval == 0 || cfg.Workers.ProbeInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
