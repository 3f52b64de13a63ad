package service

import (
	"context"
	"strings"

	"foodcourt-system/internal/domain"
	"foodcourt-system/internal/repository"
)

type CatalogService struct {
	repo repository.CatalogRepositoryInterface
}

func NewCatalogService(repo repository.CatalogRepositoryInterface) CatalogServiceInterface {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListMenu(ctx context.Context, storeID int) ([]domain.MenuItemView, error) {
	exists, err := s.repo.StoreExists(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &domain.NotFoundError{Resource: "store"}
	}

	rows, err := s.repo.ListMenu(ctx, storeID)
	if err != nil {
		return nil, err
	}
	views := make([]domain.MenuItemView, 0, len(rows))
	for _, row := range rows {
		views = append(views, domain.NewMenuItemView(row))
	}
	return views, nil
}

func (s *CatalogService) CreateStore(ctx context.Context, req domain.CreateStoreRequest) (domain.StoreView, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.StoreView{}, &domain.ValidationError{Reason: "name is required"}
	}
	store, err := s.repo.CreateStore(ctx, name)
	if err != nil {
		return domain.StoreView{}, err
	}
	return domain.StoreView{ID: store.ID, Name: store.Name}, nil
}

func (s *CatalogService) DeleteStore(ctx context.Context, storeID int) error {
	return s.repo.DeleteStore(ctx, storeID)
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, storeID int, req domain.CreateMenuItemRequest) (domain.MenuItemView, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.MenuItemView{}, &domain.ValidationError{Reason: "name is required"}
	}
	if req.Price.IsNegative() {
		return domain.MenuItemView{}, &domain.ValidationError{Reason: "price must be >= 0"}
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	item, err := s.repo.CreateMenuItem(ctx, storeID, name, req.Price, isActive)
	if err != nil {
		return domain.MenuItemView{}, err
	}
	// a fresh item has no inventory row yet
	return domain.NewMenuItemView(domain.MenuRow{Item: item, Quantity: 0}), nil
}
