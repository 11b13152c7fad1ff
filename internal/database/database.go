package database

import (
	"context"
	"fmt"

	"puntos-store/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // embedded sqlite driver
)

// schema mirrors the two tables of the rewards store. Customers carry a
// rowid alongside the unique identity so the uniqueness constraint is an
// index violation rather than a primary-key conflict.
const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	identity   TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	balance    INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS products (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	price      INTEGER NOT NULL,
	image_url  TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Open opens the embedded store, verifies the connection, and applies the
// schema. The returned handle is long-lived and shared by all
// repositories.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*sqlx.DB, error) {
	logger.Info().
		Str("path", cfg.Path).
		Int("busy_timeout_ms", cfg.BusyTimeout).
		Msg("opening embedded database")

	db, err := sqlx.Open("sqlite", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite allows a single writer; funnel everything through one
	// connection to avoid busy errors under concurrent requests.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info().Msg("embedded database ready")

	return db, nil
}
