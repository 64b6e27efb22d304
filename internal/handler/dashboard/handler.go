// Package dashboard is the client-local HTTP surface the browser UI talks
// to. It runs on the loopback address, fronts the per-collection sync
// engines, and never blocks a local edit on the network: saves and deletes
// are acknowledged as soon as they are durably cached and queued.
package dashboard

import (
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/service"
)

type Handler struct {
	services *service.ClientServices

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, logger *logger.Logger) *Handler {
	logger.Info().Msg("dashboard handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
