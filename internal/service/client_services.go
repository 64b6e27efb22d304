package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/airdash/airdash/internal/adapter"
	"github.com/airdash/airdash/internal/bus"
	"github.com/airdash/airdash/internal/config"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/store"
	"github.com/airdash/airdash/models"
)

// ClientServices bundles everything the dashboard side runs on: the
// connectivity/session monitor, the session service, and one sync engine per
// collection.
type ClientServices struct {
	Monitor *SyncMonitor
	Session SessionService
	Engines map[string]SyncEngine
}

// NewClientServices wires the client service graph onto one durable cache and
// one remote adapter. Every engine shares the bus and the monitor, so a single
// connectivity or sign-in transition wakes all of them.
func NewClientServices(cache store.DurableCache, remote adapter.HTTPRemoteAdapter, eventBus *bus.Bus, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	monitor := NewSyncMonitor(eventBus, logger)

	engines := make(map[string]SyncEngine, len(models.Collections()))
	for _, collection := range models.Collections() {
		engines[collection] = NewSyncEngine(collection, cache, remote, monitor, eventBus, cfg.Remote.RetryCap, logger)
	}

	return &ClientServices{
		Monitor: monitor,
		Session: NewSessionService(remote, cache, monitor, logger),
		Engines: engines,
	}
}

// Restore reloads every engine from the durable cache and reinstalls the
// persisted session, if any. Called once at startup, before the workers run.
func (s *ClientServices) Restore(ctx context.Context) error {
	for _, engine := range s.Engines {
		if err := engine.Restore(ctx); err != nil {
			return fmt.Errorf("restore %s: %w", engine.Collection(), err)
		}
	}

	if _, err := s.Session.Restore(ctx); err != nil && !errors.Is(err, ErrNoSession) {
		return fmt.Errorf("restore session: %w", err)
	}

	return nil
}

// PendingTotal sums the queue backlog across all engines for the status strip.
func (s *ClientServices) PendingTotal() int {
	total := 0
	for _, engine := range s.Engines {
		total += engine.PendingCount()
	}
	return total
}

// Engine returns the engine owning the collection, or nil for an unknown one.
func (s *ClientServices) Engine(collection string) SyncEngine {
	return s.Engines[collection]
}
