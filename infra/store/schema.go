package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// The DDL is shared by PostgreSQL and SQLite. Ids are assigned by the stores, never by the engine.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		category_id BIGINT PRIMARY KEY,
		category_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		item_id BIGINT PRIMARY KEY,
		item_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS item_category (
		item_id BIGINT NOT NULL REFERENCES items(item_id) ON DELETE CASCADE,
		category_id BIGINT NOT NULL REFERENCES categories(category_id) ON DELETE CASCADE,
		PRIMARY KEY (item_id, category_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_item_category_category ON item_category(category_id)`,
}

// Migrate creates the catalog tables when they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}
	return nil
}
