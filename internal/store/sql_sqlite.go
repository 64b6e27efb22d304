package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/airdash/airdash/internal/config"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/migrations"
)

// NewConnectSQLite opens (or creates) the local durable cache database and
// applies the embedded client migrations. An empty path falls back to an
// in-memory database, which is useful in tests and throwaway runs.
//
// The cache file is exclusively owned by one daemon process at a time;
// concurrent writers to the same file are not arbitrated here.
func NewConnectSQLite(ctx context.Context, cfg config.Cache, log *logger.Logger) (*sql.DB, error) {
	dsn := cfg.Path
	if dsn == "" {
		dsn = ":memory:"
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening local cache database")
		return nil, fmt.Errorf("open local cache database: %w", err)
	}

	// sqlite handles one writer at a time; a larger pool only causes
	// SQLITE_BUSY churn.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error pinging local cache database")
		return nil, fmt.Errorf("ping local cache database: %w", err)
	}

	if err = migrations.MigrateClient(conn); err != nil {
		return nil, fmt.Errorf("migrate local cache database: %w", err)
	}

	log.Info().Str("func", "NewConnectSQLite").Str("path", dsn).Msg("local cache database ready")
	return conn, nil
}
