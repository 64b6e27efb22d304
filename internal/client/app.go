// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/airdash/airdash/internal/config"
	"github.com/airdash/airdash/internal/handler/dashboard"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/service"
	"github.com/airdash/airdash/internal/workers"
)

const shutdownTimeout = 5 * time.Second

// App is the dashboard daemon runtime. It restores cached state, starts the
// background flush and probe workers, and serves the local dashboard API
// until a stop signal arrives.
type App struct {
	services  *service.ClientServices
	handler   *dashboard.Handler
	workers   *workers.Workers
	dashboard config.ClientDashboard
	logger    *logger.Logger
}

func NewApp(services *service.ClientServices, handler *dashboard.Handler, wrk *workers.Workers, cfg config.ClientDashboard, log *logger.Logger) (*App, error) {
	if services == nil || handler == nil || wrk == nil {
		return nil, errors.New("client app requires services, handler and workers")
	}
	if cfg.Address == "" {
		return nil, errors.New("dashboard address is not configured")
	}

	return &App{
		services:  services,
		handler:   handler,
		workers:   wrk,
		dashboard: cfg,
		logger:    log,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// Reload cached records, queued mutations and the persisted session
	// before anything touches the engines. A restore failure means the
	// local database is unusable, not merely stale.
	if err := a.services.Restore(ctx); err != nil {
		return err
	}
	a.logger.Info().Int("pending", a.services.PendingTotal()).Msg("restored local state")

	a.workers.Start(ctx)
	defer a.workers.Stop()

	srv := &http.Server{
		Addr:    a.dashboard.Address,
		Handler: a.handler.Init(),
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info().Str("address", a.dashboard.Address).Msg("dashboard API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err, ok := <-serveErr:
		if ok {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("dashboard API shutdown")
	}
	a.logger.Info().Msg("dashboard daemon stopped")

	return nil
}
