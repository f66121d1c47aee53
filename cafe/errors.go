package cafe

import "fmt"

// ItemNotFoundError reports a menu lookup failure during order placement.
type ItemNotFoundError struct {
	ItemID int
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("menu item not found: %d", e.ItemID)
}

// InsufficientStockError reports missing or insufficient inventory during
// order placement.
type InsufficientStockError struct {
	ItemID    int
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("no inventory for item %d", e.ItemID)
	}
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.Name, e.Requested, e.Available)
}

// InvalidQuantityError reports a non-positive line quantity.
type InvalidQuantityError struct {
	ItemID   int
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for item %d", e.Quantity, e.ItemID)
}
