package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Deleting a store removes its menu items, and deleting a menu item removes
// its inventory row: the cascades are part of the data model, not cleanup
// left to application code.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stores (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id SERIAL PRIMARY KEY,
		store_id INT NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inventories (
		menu_item_id INT PRIMARY KEY REFERENCES menu_items(id) ON DELETE CASCADE,
		quantity INT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_menu_items_store_id ON menu_items (store_id)`,
}

func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
