package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_EarlierSourceWins(t *testing.T) {
	// Arrange
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "from-env:8080"}},
		&StructuredConfig{
			Server: Server{HTTPAddress: "from-flags:8081", RequestTimeout: 30 * time.Second},
		},
	)

	// Act
	cfg, err := b.build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "from-env:8080", cfg.Server.HTTPAddress)
	// fields left zero by the first source still come from the second
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestConfigBuilder_DefaultsFillGaps(t *testing.T) {
	// Arrange
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Client: Client{ServerURL: "http://sync.example.com"},
	})
	b.withDefaults()

	// Act
	cfg, err := b.build()

	// Assert
	require.NoError(t, err)

	// explicit value survives
	assert.Equal(t, "http://sync.example.com", cfg.Client.ServerURL)

	// everything else comes from defaults
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "airdash", cfg.App.Namespace)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 3, cfg.Client.RetryCap)
	assert.Equal(t, 30*time.Second, cfg.Workers.FlushInterval)
	assert.Equal(t, 15*time.Second, cfg.Workers.ProbeInterval)
}

func TestConfigBuilder_PropagatesSourceError(t *testing.T) {
	// Arrange
	b := newConfigBuilder()
	b.err = errors.New("boom")

	// Act
	cfg, err := b.build()

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			App: ClientApp{Namespace: "airdash"},
			Remote: ClientRemote{
				ServerURL:      "http://localhost:8080",
				RequestTimeout: 10 * time.Second,
				RetryCap:       3,
			},
			Workers: ClientWorkers{
				FlushInterval: 30 * time.Second,
				ProbeInterval: 15 * time.Second,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *ClientConfig) {}},
		{
			name:    "missing server url",
			mutate:  func(cfg *ClientConfig) { cfg.Remote.ServerURL = "" },
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Remote.RequestTimeout = 0 },
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "retry cap below one",
			mutate:  func(cfg *ClientConfig) { cfg.Remote.RetryCap = 0 },
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "empty namespace",
			mutate:  func(cfg *ClientConfig) { cfg.App.Namespace = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero flush interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.FlushInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "zero probe interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.ProbeInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
