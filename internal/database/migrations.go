package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the key-value schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Migrate runs the schema migrations on an already opened database.
// Used by tests that open ":memory:" databases directly.
func Migrate(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db)
}
