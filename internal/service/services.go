package service

import (
	"github.com/airdash/airdash/internal/config"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/store"
)

type Services struct {
	AuthService   AuthService
	RecordService RecordService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		RecordService: NewRecordService(storages.RecordRepository, logger),
	}
}
