package service

import (
	"context"
	"encoding/json"
	"time"

	"foodcourt-system/internal/domain"
	"foodcourt-system/internal/logger"
	"foodcourt-system/internal/repository"
)

type InventoryService struct {
	repo repository.CatalogRepositoryInterface
	pub  EventPublisher
	lg   *logger.Logger
}

func NewInventoryService(repo repository.CatalogRepositoryInterface, pub EventPublisher, lg *logger.Logger) InventoryServiceInterface {
	return &InventoryService{repo: repo, pub: pub, lg: lg}
}

func (s *InventoryService) SetQuantity(ctx context.Context, menuItemID int, req domain.SetQuantityRequest) (domain.InventoryView, error) {
	// validation comes before any lookup so a bad request never touches
	// or creates an inventory row
	if req.Quantity == nil || *req.Quantity < 0 {
		return domain.InventoryView{}, &domain.ValidationError{Reason: "Quantity must be >= 0"}
	}

	row, err := s.repo.SetQuantity(ctx, menuItemID, *req.Quantity)
	if err != nil {
		return domain.InventoryView{}, err
	}

	view := domain.NewInventoryView(row.Item.IsActive, row.Quantity)
	if view.AlmostGone {
		s.publishStockLow(ctx, row)
	}
	return view, nil
}

func (s *InventoryService) publishStockLow(ctx context.Context, row domain.MenuRow) {
	if s.pub == nil {
		return
	}
	msg := domain.StockLowMessage{
		MenuItemID: row.Item.ID,
		Name:       row.Item.Name,
		Quantity:   row.Quantity,
		UpdatedAt:  time.Now().UTC(),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		s.lg.Error("stock_low_marshal_failed", err, map[string]any{"menu_item_id": row.Item.ID})
		return
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.pub.Publish(pctx, "inventory.low", body); err != nil {
		// the update already committed; a lost event is log-only
		s.lg.Error("stock_low_publish_failed", err, map[string]any{"menu_item_id": row.Item.ID})
		return
	}
	s.lg.Debug("stock_low_published", map[string]any{"menu_item_id": row.Item.ID, "quantity": row.Quantity})
}
