package domain

import "fmt"

// NotFoundError covers a missing store or a menu item that does not exist
// (or does not belong to the addressed store).
type NotFoundError struct {
	Resource string // "store" | "menu item"
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// ValidationError is a malformed or out-of-range request input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// InactiveItemError means the order named an item that is switched off.
type InactiveItemError struct {
	ItemName string
}

func (e *InactiveItemError) Error() string {
	return fmt.Sprintf("Menu item %s is inactive", e.ItemName)
}

// InsufficientStockError means the requested quantity exceeds what is left.
type InsufficientStockError struct {
	ItemName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient quantity for %s", e.ItemName)
}
