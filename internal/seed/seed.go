package seed

import (
	"context"
	"fmt"

	"foodcourt-system/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

type itemSpec struct {
	name     string
	price    string
	isActive bool
	quantity int // -1 leaves the item without an inventory row
}

type storeSpec struct {
	name  string
	items []itemSpec
}

// Sample data for manual testing: covers almost-gone stock (1, 2, 3 and the
// threshold 5), zero stock, a missing inventory row, and inactive items
// that still hold stock.
var stores = []storeSpec{
	{
		name: "Downtown Food Court",
		items: []itemSpec{
			{"Veg Burger", "129.00", true, 3},
			{"Margherita Pizza", "199.00", true, 15},
			{"Penne Pasta", "149.00", true, 5},
			{"Grilled Sandwich", "89.00", true, 0},
			{"French Fries", "79.00", false, 10},
			{"Caesar Salad", "119.00", true, -1},
		},
	},
	{
		name: "Campus Cafeteria",
		items: []itemSpec{
			{"Cappuccino", "59.00", true, 50},
			{"Samosa", "25.00", true, 2},
			{"Masala Dosa", "89.00", true, 8},
			{"Orange Juice", "49.00", true, 1},
			{"Chocolate Milkshake", "99.00", false, 3},
		},
	},
}

// Run wipes the catalog and repopulates it with the sample stores.
func Run(ctx context.Context, pool *pgxpool.Pool, lg *logger.Logger) error {
	lg.Info("seed_started", nil)

	// deleting stores cascades through menu items into inventories
	if _, err := pool.Exec(ctx, `DELETE FROM stores`); err != nil {
		return fmt.Errorf("failed to clear stores: %w", err)
	}

	itemCount, inventoryCount := 0, 0
	for _, s := range stores {
		var storeID int
		if err := pool.QueryRow(ctx,
			`INSERT INTO stores (name) VALUES ($1) RETURNING id`, s.name,
		).Scan(&storeID); err != nil {
			return fmt.Errorf("failed to seed store %s: %w", s.name, err)
		}

		for _, it := range s.items {
			var itemID int
			if err := pool.QueryRow(ctx, `
				INSERT INTO menu_items (store_id, name, price, is_active)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`, storeID, it.name, it.price, it.isActive).Scan(&itemID); err != nil {
				return fmt.Errorf("failed to seed item %s: %w", it.name, err)
			}
			itemCount++

			if it.quantity >= 0 {
				if _, err := pool.Exec(ctx, `
					INSERT INTO inventories (menu_item_id, quantity) VALUES ($1, $2)
				`, itemID, it.quantity); err != nil {
					return fmt.Errorf("failed to seed inventory for %s: %w", it.name, err)
				}
				inventoryCount++
			}
		}
		lg.Info("store_seeded", map[string]any{"store_id": storeID, "name": s.name, "items": len(s.items)})
	}

	lg.Info("seed_complete", map[string]any{
		"stores":      len(stores),
		"menu_items":  itemCount,
		"inventories": inventoryCount,
	})
	return nil
}
