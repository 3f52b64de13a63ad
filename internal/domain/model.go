package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Store struct {
	ID   int
	Name string
}

type MenuItem struct {
	ID        int
	StoreID   int
	Name      string
	Price     decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
}

type Inventory struct {
	MenuItemID int
	Quantity   int
	UpdatedAt  time.Time
}

// MenuRow is one menu item joined with its inventory quantity.
// An item without an inventory record carries Quantity = 0.
type MenuRow struct {
	Item     MenuItem
	Quantity int
}

// PlacedLine is one committed order line: what was deducted and what is left.
type PlacedLine struct {
	MenuItemID int
	Name       string
	Quantity   int
	Remaining  int
}
