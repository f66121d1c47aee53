package domain

import "github.com/shopspring/decimal"

// MenuItem is a sellable item on the menu. The menu hash table owns these;
// re-inserting an existing id updates the stored entry in place.
type MenuItem struct {
	ID    int
	Name  string
	Price decimal.Decimal
}

// InventoryItem is a stocked ingredient or product. The inventory tree owns
// these; stock is deducted by the dispatcher when orders are processed and
// never goes below zero.
type InventoryItem struct {
	ID               int
	Name             string
	Stock            int
	ReorderThreshold int
}

// LowStock reports whether the item is at or below its reorder threshold.
func (it InventoryItem) LowStock() bool {
	return it.Stock <= it.ReorderThreshold
}
