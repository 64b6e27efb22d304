package http

import (
	"github.com/airdash/airdash/internal/config"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
