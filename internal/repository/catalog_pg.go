package repository

import (
	"context"
	"errors"
	"fmt"

	"foodcourt-system/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) CatalogRepositoryInterface {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) CreateStore(ctx context.Context, name string) (domain.Store, error) {
	var s domain.Store
	s.Name = name
	err := r.pool.QueryRow(ctx,
		`INSERT INTO stores (name) VALUES ($1) RETURNING id`, name,
	).Scan(&s.ID)
	if err != nil {
		return domain.Store{}, fmt.Errorf("failed to insert store: %w", err)
	}
	return s, nil
}

func (r *CatalogRepository) DeleteStore(ctx context.Context, storeID int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM stores WHERE id = $1`, storeID)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "store"}
	}
	return nil
}

func (r *CatalogRepository) StoreExists(ctx context.Context, storeID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM stores WHERE id = $1)`, storeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check store: %w", err)
	}
	return exists, nil
}

func (r *CatalogRepository) CreateMenuItem(ctx context.Context, storeID int, name string, price decimal.Decimal, isActive bool) (domain.MenuItem, error) {
	exists, err := r.StoreExists(ctx, storeID)
	if err != nil {
		return domain.MenuItem{}, err
	}
	if !exists {
		return domain.MenuItem{}, &domain.NotFoundError{Resource: "store"}
	}

	item := domain.MenuItem{StoreID: storeID, Name: name, Price: price, IsActive: isActive}
	err = r.pool.QueryRow(ctx, `
		INSERT INTO menu_items (store_id, name, price, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, storeID, name, price.StringFixed(2), isActive).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("failed to insert menu item %s: %w", name, err)
	}
	return item, nil
}

func (r *CatalogRepository) ListMenu(ctx context.Context, storeID int) ([]domain.MenuRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT mi.id, mi.name, mi.price::text, mi.is_active, COALESCE(inv.quantity, 0)
		FROM menu_items mi
		LEFT JOIN inventories inv ON inv.menu_item_id = mi.id
		WHERE mi.store_id = $1
		ORDER BY mi.id
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}
	defer rows.Close()

	out := make([]domain.MenuRow, 0)
	for rows.Next() {
		var row domain.MenuRow
		var priceText string
		if err := rows.Scan(&row.Item.ID, &row.Item.Name, &priceText, &row.Item.IsActive, &row.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan menu row: %w", err)
		}
		row.Item.StoreID = storeID
		row.Item.Price, err = decimal.NewFromString(priceText)
		if err != nil {
			return nil, fmt.Errorf("failed to parse price %q: %w", priceText, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) SetQuantity(ctx context.Context, menuItemID, quantity int) (domain.MenuRow, error) {
	var row domain.MenuRow
	var priceText string
	err := r.pool.QueryRow(ctx, `
		SELECT id, store_id, name, price::text, is_active
		FROM menu_items WHERE id = $1
	`, menuItemID).Scan(&row.Item.ID, &row.Item.StoreID, &row.Item.Name, &priceText, &row.Item.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.MenuRow{}, &domain.NotFoundError{Resource: "menu item"}
	}
	if err != nil {
		return domain.MenuRow{}, fmt.Errorf("failed to fetch menu item: %w", err)
	}
	row.Item.Price, err = decimal.NewFromString(priceText)
	if err != nil {
		return domain.MenuRow{}, fmt.Errorf("failed to parse price %q: %w", priceText, err)
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO inventories (menu_item_id, quantity, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (menu_item_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			updated_at = NOW()
		RETURNING quantity
	`, menuItemID, quantity).Scan(&row.Quantity)
	if err != nil {
		return domain.MenuRow{}, fmt.Errorf("failed to upsert inventory: %w", err)
	}
	return row, nil
}
