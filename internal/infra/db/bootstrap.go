package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Bootstrap creates the user_data table if it does not exist yet.
func Bootstrap(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS user_data (
    id         SERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    value      TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return fmt.Errorf("create user_data table: %w", err)
	}

	if _, err := database.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_user_data_name ON user_data(name)`); err != nil {
		return fmt.Errorf("create user_data index: %w", err)
	}
	return nil
}
