package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Namespace is the top-level segment of every remote record path.
	Namespace string
	// Version is the application version string.
	Version string
}

// ClientRemote holds network settings used by the client sync transport.
type ClientRemote struct {
	// ServerURL is the base URL of the record server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound sync requests.
	RequestTimeout time.Duration
	// RetryCap is the number of replay attempts a queued mutation gets
	// before it is dropped.
	RetryCap int
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Cache holds the local durable cache settings.
	Cache Cache
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// FlushInterval defines how often the flush worker drains pending
	// queues.
	FlushInterval time.Duration
	// ProbeInterval defines how often the connectivity probe runs.
	ProbeInterval time.Duration
}

// ClientDashboard holds settings for the client's local HTTP surface.
type ClientDashboard struct {
	// Address is the TCP address the dashboard API listens on.
	Address string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Remote contains record server address, timeout, and retry settings.
	Remote ClientRemote
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Dashboard contains local HTTP surface settings.
	Dashboard ClientDashboard
	// LogPath is the optional client log file path.
	LogPath string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the dashboard runtime, and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Namespace: cfg.App.Namespace,
			Version:   cfg.App.Version,
		},
		Remote: ClientRemote{
			ServerURL:      cfg.Client.ServerURL,
			RequestTimeout: cfg.Client.RequestTimeout,
			RetryCap:       cfg.Client.RetryCap,
		},
		Storage: ClientStorage{
			Cache: cfg.Storage.Cache,
		},
		Workers: ClientWorkers{
			FlushInterval: cfg.Workers.FlushInterval,
			ProbeInterval: cfg.Workers.ProbeInterval,
		},
		Dashboard: ClientDashboard{
			Address: cfg.Client.DashboardAddress,
		},
		LogPath: cfg.Client.LogPath,
	}

	return clientCfg, clientCfg.validate()
}
