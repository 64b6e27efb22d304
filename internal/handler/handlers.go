package handler

import (
	"github.com/airdash/airdash/internal/config"
	"github.com/airdash/airdash/internal/handler/http"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}, nil
}
