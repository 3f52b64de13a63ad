package service

import (
	"context"

	"foodcourt-system/internal/domain"
	"foodcourt-system/internal/logger"
	"foodcourt-system/internal/repository"
)

type CatalogServiceInterface interface {
	ListMenu(ctx context.Context, storeID int) ([]domain.MenuItemView, error)
	CreateStore(ctx context.Context, req domain.CreateStoreRequest) (domain.StoreView, error)
	DeleteStore(ctx context.Context, storeID int) error
	CreateMenuItem(ctx context.Context, storeID int, req domain.CreateMenuItemRequest) (domain.MenuItemView, error)
}

type InventoryServiceInterface interface {
	SetQuantity(ctx context.Context, menuItemID int, req domain.SetQuantityRequest) (domain.InventoryView, error)
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) error
}

// EventPublisher pushes domain events to the broker. A nil publisher
// disables eventing; state changes never depend on a publish succeeding.
type EventPublisher interface {
	Publish(ctx context.Context, key string, body []byte) error
}

type Service struct {
	Catalog   CatalogServiceInterface
	Inventory InventoryServiceInterface
	Order     OrderServiceInterface
}

func New(repo *repository.Repository, pub EventPublisher, lg *logger.Logger) *Service {
	return &Service{
		Catalog:   NewCatalogService(repo.Catalog),
		Inventory: NewInventoryService(repo.Catalog, pub, lg),
		Order:     NewOrderService(repo.Orders, pub, lg),
	}
}
