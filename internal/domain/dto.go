package domain

import "github.com/shopspring/decimal"

type OrderLine struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type PlaceOrderRequest struct {
	StoreID int         `json:"store_id"`
	Items   []OrderLine `json:"items"`
}

// SetQuantityRequest keeps Quantity as a pointer so a missing field can be
// told apart from an explicit zero.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type CreateStoreRequest struct {
	Name string `json:"name"`
}

type CreateMenuItemRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	IsActive *bool           `json:"is_active,omitempty"`
}

type StoreView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MenuItemView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	IsAvailable bool   `json:"is_available"`
	AlmostGone  bool   `json:"almost_gone"`
}

type InventoryView struct {
	Quantity    int  `json:"quantity"`
	IsAvailable bool `json:"is_available"`
	AlmostGone  bool `json:"almost_gone"`
}

// NewMenuItemView projects a joined menu row into its response shape.
// The listing and inventory-update paths both derive their flags here so
// the two can never disagree.
func NewMenuItemView(row MenuRow) MenuItemView {
	return MenuItemView{
		ID:          row.Item.ID,
		Name:        row.Item.Name,
		Price:       row.Item.Price.StringFixed(2),
		Quantity:    row.Quantity,
		IsAvailable: IsAvailable(row.Item.IsActive, row.Quantity),
		AlmostGone:  AlmostGone(row.Quantity),
	}
}

func NewInventoryView(isActive bool, quantity int) InventoryView {
	return InventoryView{
		Quantity:    quantity,
		IsAvailable: IsAvailable(isActive, quantity),
		AlmostGone:  AlmostGone(quantity),
	}
}
