package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDerivedFlags(t *testing.T) {
	cases := []struct {
		name          string
		isActive      bool
		quantity      int
		wantAvailable bool
		wantAlmost    bool
	}{
		{"active with stock", true, 10, true, false},
		{"active at threshold", true, 5, true, true},
		{"active with one left", true, 1, true, true},
		{"active out of stock", true, 0, false, false},
		{"inactive with stock", false, 10, false, false},
		{"inactive in threshold keeps almost_gone", false, 3, false, true},
		{"inactive out of stock", false, 0, false, false},
		{"just above threshold", true, 6, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantAvailable, IsAvailable(tc.isActive, tc.quantity))
			assert.Equal(t, tc.wantAlmost, AlmostGone(tc.quantity))
		})
	}
}

func TestAlmostGoneImpliesPositiveQuantity(t *testing.T) {
	for q := -2; q <= 10; q++ {
		if AlmostGone(q) {
			assert.Greater(t, q, 0)
			assert.LessOrEqual(t, q, AlmostGoneThreshold)
		}
		if q == 0 {
			assert.False(t, IsAvailable(true, q))
			assert.False(t, AlmostGone(q))
		}
	}
}

func TestCheckOrderLine(t *testing.T) {
	active := MenuItem{ID: 1, Name: "Veg Burger", IsActive: true}
	inactive := MenuItem{ID: 2, Name: "French Fries", IsActive: false}

	t.Run("enough stock", func(t *testing.T) {
		assert.NoError(t, CheckOrderLine(active, 10, 10))
	})

	t.Run("insufficient stock", func(t *testing.T) {
		err := CheckOrderLine(active, 3, 4)
		var stock *InsufficientStockError
		assert.ErrorAs(t, err, &stock)
		assert.EqualError(t, err, "Insufficient quantity for Veg Burger")
	})

	t.Run("missing inventory behaves as zero", func(t *testing.T) {
		err := CheckOrderLine(active, 0, 1)
		var stock *InsufficientStockError
		assert.ErrorAs(t, err, &stock)
	})

	t.Run("inactive item beats stock check", func(t *testing.T) {
		err := CheckOrderLine(inactive, 100, 1)
		var inact *InactiveItemError
		assert.ErrorAs(t, err, &inact)
		assert.EqualError(t, err, "Menu item French Fries is inactive")
	})
}

func TestMenuItemViewProjection(t *testing.T) {
	row := MenuRow{
		Item: MenuItem{
			ID:       7,
			Name:     "Penne Pasta",
			Price:    decimal.RequireFromString("149"),
			IsActive: true,
		},
		Quantity: 5,
	}
	view := NewMenuItemView(row)

	assert.Equal(t, 7, view.ID)
	assert.Equal(t, "Penne Pasta", view.Name)
	assert.Equal(t, "149.00", view.Price)
	assert.Equal(t, 5, view.Quantity)
	assert.True(t, view.IsAvailable)
	assert.True(t, view.AlmostGone)
}

// The listing and inventory-update paths must never disagree on the flags.
func TestViewFlagsAgree(t *testing.T) {
	for _, active := range []bool{true, false} {
		for q := 0; q <= 7; q++ {
			item := NewMenuItemView(MenuRow{Item: MenuItem{IsActive: active, Price: decimal.Zero}, Quantity: q})
			inv := NewInventoryView(active, q)
			assert.Equal(t, item.IsAvailable, inv.IsAvailable)
			assert.Equal(t, item.AlmostGone, inv.AlmostGone)
			assert.Equal(t, item.Quantity, inv.Quantity)
		}
	}
}
