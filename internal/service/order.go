package service

import (
	"context"
	"encoding/json"
	"time"

	"foodcourt-system/internal/domain"
	"foodcourt-system/internal/logger"
	"foodcourt-system/internal/repository"
)

type OrderService struct {
	repo repository.OrderRepositoryInterface
	pub  EventPublisher
	lg   *logger.Logger
}

func NewOrderService(repo repository.OrderRepositoryInterface, pub EventPublisher, lg *logger.Logger) OrderServiceInterface {
	return &OrderService{repo: repo, pub: pub, lg: lg}
}

// PlaceOrder checks the request shape, then hands the whole
// validate-then-deduct flow to the repository transaction. It is not
// idempotent: the same request twice deducts twice.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) error {
	if req.StoreID <= 0 {
		return &domain.ValidationError{Reason: "store_id is required"}
	}
	if len(req.Items) == 0 {
		return &domain.ValidationError{Reason: "at least one item is required"}
	}
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return &domain.ValidationError{Reason: "quantity must be a positive integer"}
		}
	}

	placed, err := s.repo.PlaceOrder(ctx, req.StoreID, req.Items)
	if err != nil {
		return err
	}

	s.lg.Info("order_placed", map[string]any{"store_id": req.StoreID, "lines": len(placed)})
	s.publishOrderPlaced(ctx, req.StoreID, placed)
	return nil
}

func (s *OrderService) publishOrderPlaced(ctx context.Context, storeID int, placed []domain.PlacedLine) {
	if s.pub == nil {
		return
	}
	msg := domain.OrderPlacedMessage{StoreID: storeID, PlacedAt: time.Now().UTC()}
	for _, p := range placed {
		msg.Items = append(msg.Items, domain.OrderPlacedItem{
			MenuItemID: p.MenuItemID,
			Name:       p.Name,
			Quantity:   p.Quantity,
		})
	}
	body, err := json.Marshal(msg)
	if err != nil {
		s.lg.Error("order_placed_marshal_failed", err, map[string]any{"store_id": storeID})
		return
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.pub.Publish(pctx, "orders.placed", body); err != nil {
		// deductions are already committed; the order stands either way
		s.lg.Error("order_placed_publish_failed", err, map[string]any{"store_id": storeID})
	}
}
