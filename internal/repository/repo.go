package repository

import (
	"context"

	"foodcourt-system/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type CatalogRepositoryInterface interface {
	CreateStore(ctx context.Context, name string) (domain.Store, error)
	// DeleteStore removes the store; menu items and inventories go with it
	// via the schema's cascading foreign keys.
	DeleteStore(ctx context.Context, storeID int) error
	StoreExists(ctx context.Context, storeID int) (bool, error)
	CreateMenuItem(ctx context.Context, storeID int, name string, price decimal.Decimal, isActive bool) (domain.MenuItem, error)
	// ListMenu fetches every item of the store joined with its inventory in
	// a single query.
	ListMenu(ctx context.Context, storeID int) ([]domain.MenuRow, error)
	// SetQuantity upserts the inventory row and refreshes updated_at.
	SetQuantity(ctx context.Context, menuItemID, quantity int) (domain.MenuRow, error)
}

type OrderRepositoryInterface interface {
	// PlaceOrder validates every line and applies all deductions inside one
	// transaction; row locks taken at validation time are held through
	// commit, so no other writer can change a validated quantity underneath
	// the deduction.
	PlaceOrder(ctx context.Context, storeID int, lines []domain.OrderLine) ([]domain.PlacedLine, error)
}

type Repository struct {
	Catalog CatalogRepositoryInterface
	Orders  OrderRepositoryInterface
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		Catalog: NewCatalogRepository(pool),
		Orders:  NewOrderRepository(pool),
	}
}
