package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/airdash/airdash/internal/adapter"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/store"
	"github.com/airdash/airdash/models"
)

type sessionService struct {
	sessions adapter.SessionClient
	cache    store.DurableCache
	monitor  *SyncMonitor
	logger   *logger.Logger
}

// NewSessionService constructs the [SessionService]. Signing in feeds the
// monitor, which in turn lets the engines start flushing their queues.
func NewSessionService(sessions adapter.SessionClient, cache store.DurableCache, monitor *SyncMonitor, logger *logger.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		cache:    cache,
		monitor:  monitor,
		logger:   logger,
	}
}

// Register implements [SessionService].
func (s *sessionService) Register(ctx context.Context, login, password string) (models.Session, error) {
	if login == "" || password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	session, err := s.sessions.Register(ctx, login, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("register: %w", err)
	}

	return s.install(ctx, session)
}

// Login implements [SessionService].
func (s *sessionService) Login(ctx context.Context, login, password string) (models.Session, error) {
	if login == "" || password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	session, err := s.sessions.Login(ctx, login, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	return s.install(ctx, session)
}

// Restore implements [SessionService]. The token is installed as-is; if it has
// expired the first sync attempt comes back unauthorized and the caller signs
// in again.
func (s *sessionService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.cache.RestoreSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNoSession
		}
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	s.sessions.SetSession(session)
	s.monitor.SetIdentity(session.Identity)

	s.logger.Info().Str("identity", session.Identity).Msg("session restored")
	return session, nil
}

// SignOut implements [SessionService]. Queued offline work is kept: it belongs
// to the device, not the session, and replays after the next sign-in.
func (s *sessionService) SignOut(ctx context.Context) error {
	s.sessions.ClearSession()
	s.monitor.SetIdentity("")

	if err := s.cache.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.logger.Info().Msg("signed out")
	return nil
}

// install persists the fresh session and announces the identity. A persist
// failure is not fatal: the session works for this process lifetime, it just
// will not survive a restart.
func (s *sessionService) install(ctx context.Context, session models.Session) (models.Session, error) {
	session.SavedAt = time.Now()

	if err := s.cache.PersistSession(ctx, session); err != nil {
		s.logger.Warn().Err(err).Msg("session not persisted, sign-in required after restart")
	}

	s.monitor.SetIdentity(session.Identity)

	s.logger.Info().Str("identity", session.Identity).Msg("signed in")
	return session, nil
}
