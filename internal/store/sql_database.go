package store

import (
	"database/sql"

	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/migrations"
)

// DB wraps the shared *sql.DB handle used by the server-side repositories
// together with the error classifier for the active driver.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded server migrations to the wrapped database.
func (db *DB) Migrate() error {
	return migrations.MigrateServer(db.DB)
}
