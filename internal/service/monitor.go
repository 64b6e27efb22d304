package service

import (
	"sync"

	"github.com/airdash/airdash/internal/bus"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/models"
)

// SyncMonitor tracks the two inputs that gate syncing — connectivity and the
// signed-in identity — and publishes a bus event on every transition. It is
// the only writer of that state; the probe worker feeds connectivity and the
// session service feeds identity.
type SyncMonitor struct {
	bus    *bus.Bus
	logger *logger.Logger

	mu       sync.RWMutex
	online   bool
	identity string
}

// NewSyncMonitor constructs a monitor starting offline and signed out.
func NewSyncMonitor(eventBus *bus.Bus, logger *logger.Logger) *SyncMonitor {
	return &SyncMonitor{bus: eventBus, logger: logger}
}

// SetConnectivity records the probe result. Repeating the current value is a
// no-op; a transition is logged and published as
// [models.EventConnectivityChanged].
func (m *SyncMonitor) SetConnectivity(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	m.mu.Unlock()

	m.logger.Info().Bool("online", online).Msg("connectivity changed")
	m.bus.Publish(models.EventConnectivityChanged, online)
}

// SetIdentity records a sign-in (non-empty id) or sign-out (empty id).
// Repeating the current value is a no-op; a transition is published as
// [models.EventIdentityChanged].
func (m *SyncMonitor) SetIdentity(identity string) {
	m.mu.Lock()
	if m.identity == identity {
		m.mu.Unlock()
		return
	}
	m.identity = identity
	m.mu.Unlock()

	m.logger.Info().Str("identity", identity).Msg("identity changed")
	m.bus.Publish(models.EventIdentityChanged, identity)
}

// Online reports the last probe result.
func (m *SyncMonitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Identity returns the signed-in identity id, empty when signed out.
func (m *SyncMonitor) Identity() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity
}

// ShouldSync reports whether drains and refreshes may touch the network:
// only in the online, authenticated state.
func (m *SyncMonitor) ShouldSync() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online && m.identity != ""
}

// State returns the position in the connectivity/session state machine.
func (m *SyncMonitor) State() models.ConnState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch {
	case !m.online:
		return models.StateOffline
	case m.identity == "":
		return models.StateOnlineUnauthenticated
	default:
		return models.StateOnlineAuthenticated
	}
}

// Snapshot assembles the status-strip view of the monitor plus the given
// queue backlog.
func (m *SyncMonitor) Snapshot(pendingCount int) models.SyncState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return models.SyncState{
		Online:       m.online,
		Identity:     m.identity,
		PendingCount: pendingCount,
	}
}
