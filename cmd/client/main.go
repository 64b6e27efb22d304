package main

import (
	"context"
	"fmt"

	"github.com/airdash/airdash/internal/adapter"
	"github.com/airdash/airdash/internal/bus"
	"github.com/airdash/airdash/internal/client"
	"github.com/airdash/airdash/internal/config"
	"github.com/airdash/airdash/internal/handler/dashboard"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/service"
	"github.com/airdash/airdash/internal/store"
	"github.com/airdash/airdash/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("airdash-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("airdash-client", cfg.LogPath)

	// NewConnectSQLite applies the client migrations itself.
	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open local cache database")
	}
	cache := store.NewSQLiteCache(db, log)

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Remote, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote adapter")
	}

	eventBus := bus.New(log)
	services := service.NewClientServices(cache, remote, eventBus, *cfg, log)

	drainers := make([]workers.Drainer, 0, len(services.Engines))
	for _, engine := range services.Engines {
		drainers = append(drainers, engine)
	}
	jobs := workers.NewWorkers(drainers, remote, services.Monitor, cfg.Workers.FlushInterval, cfg.Workers.ProbeInterval, log)

	app, err := client.NewApp(services, dashboard.NewHandler(services, log), jobs, cfg.Dashboard, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init dashboard daemon")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("dashboard daemon run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
