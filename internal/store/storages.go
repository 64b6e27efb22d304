package store

import "github.com/airdash/airdash/internal/logger"

// Storages bundles the server-side repositories handed to the service layer.
type Storages struct {
	UserRepository   UserRepository
	RecordRepository RecordRepository
}

// NewStorages wires all repositories onto one database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		RecordRepository: NewRecordRepository(db, log),
	}
}
