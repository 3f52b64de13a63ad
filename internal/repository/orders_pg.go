package repository

import (
	"context"
	"errors"
	"fmt"

	"foodcourt-system/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepositoryInterface {
	return &OrderRepository{pool: pool}
}

// PlaceOrder runs the whole validate-then-deduct flow in one transaction.
// Each line's menu item row is locked with FOR UPDATE during validation and
// the lock is held until commit, so a concurrent order racing on the same
// item waits here and then re-reads the already-deducted quantity. Any
// returned error rolls the transaction back with no partial deductions.
func (r *OrderRepository) PlaceOrder(ctx context.Context, storeID int, lines []domain.OrderLine) ([]domain.PlacedLine, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM stores WHERE id = $1)`, storeID,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check store: %w", err)
	}
	if !exists {
		return nil, &domain.NotFoundError{Resource: "store"}
	}

	// Validation pass: lock and check every line before touching anything.
	// The first failing line aborts the order. Repeated lines for the same
	// item validate against the remainder left by earlier lines, so a pair
	// of lines cannot jointly overdraw a quantity each passes alone.
	placed := make([]domain.PlacedLine, 0, len(lines))
	items := make(map[int]domain.MenuItem)
	remaining := make(map[int]int)
	for _, line := range lines {
		item, seen := items[line.MenuItemID]
		if !seen {
			err := tx.QueryRow(ctx, `
				SELECT id, name, is_active
				FROM menu_items
				WHERE id = $1 AND store_id = $2
				FOR UPDATE
			`, line.MenuItemID, storeID).Scan(&item.ID, &item.Name, &item.IsActive)
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, &domain.NotFoundError{Resource: "menu item"}
			}
			if err != nil {
				return nil, fmt.Errorf("failed to fetch menu item %d: %w", line.MenuItemID, err)
			}

			// The inventory row is locked separately: it sits on the
			// nullable side of the menu join and may not exist at all, in
			// which case the menu item lock above still serializes writers.
			quantity := 0
			err = tx.QueryRow(ctx,
				`SELECT quantity FROM inventories WHERE menu_item_id = $1 FOR UPDATE`, item.ID,
			).Scan(&quantity)
			if err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("failed to fetch inventory for %s: %w", item.Name, err)
			}
			items[item.ID] = item
			remaining[item.ID] = quantity
		}

		if err := domain.CheckOrderLine(item, remaining[item.ID], line.Quantity); err != nil {
			return nil, err
		}
		remaining[item.ID] -= line.Quantity
		placed = append(placed, domain.PlacedLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   line.Quantity,
			Remaining:  remaining[item.ID],
		})
	}

	// Commit pass: every line validated, apply all deductions.
	for _, p := range placed {
		tag, err := tx.Exec(ctx, `
			UPDATE inventories
			SET quantity = quantity - $1, updated_at = NOW()
			WHERE menu_item_id = $2
		`, p.Quantity, p.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("failed to deduct inventory for %s: %w", p.Name, err)
		}
		if tag.RowsAffected() == 0 {
			return nil, fmt.Errorf("inventory row vanished for %s", p.Name)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}
	return placed, nil
}
