package domain

// AlmostGoneThreshold is the largest quantity still reported as "almost gone".
const AlmostGoneThreshold = 5

// IsAvailable reports whether an item can currently be ordered.
func IsAvailable(isActive bool, quantity int) bool {
	return isActive && quantity > 0
}

// AlmostGone reports whether stock is low but not exhausted.
// It does not depend on the item being active.
func AlmostGone(quantity int) bool {
	return quantity > 0 && quantity <= AlmostGoneThreshold
}

// CheckOrderLine applies the per-line ordering rules to an item with the
// given available quantity. The active check runs before the stock check,
// so an inactive item is reported as inactive even when out of stock.
func CheckOrderLine(item MenuItem, available, requested int) error {
	if !item.IsActive {
		return &InactiveItemError{ItemName: item.Name}
	}
	if available < requested {
		return &InsufficientStockError{ItemName: item.Name}
	}
	return nil
}
