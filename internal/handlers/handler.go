package handlers

import (
	"foodcourt-system/internal/logger"
	"foodcourt-system/internal/service"
)

type Handler struct {
	Store     *StoreHandler
	Menu      *MenuHandler
	Inventory *InventoryHandler
	Order     *OrderHandler
}

func New(s *service.Service, lg *logger.Logger) *Handler {
	return &Handler{
		Store:     NewStoreHandler(s.Catalog, lg),
		Menu:      NewMenuHandler(s.Catalog, lg),
		Inventory: NewInventoryHandler(s.Inventory, lg),
		Order:     NewOrderHandler(s.Order, lg),
	}
}
