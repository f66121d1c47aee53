package domain

import "time"

// OrderLine is one (item, quantity) entry on an order.
// Lines are immutable once attached to an Order.
type OrderLine struct {
	ItemID   int
	Quantity int
}

// Order represents a customer order waiting in one of the dispatch queues.
// Exactly one queue owns an order at a time; after it is popped and billed
// no structure retains it.
type Order struct {
	ID         int
	Customer   string
	Lines      []OrderLine
	IsPriority bool
	CreatedAt  time.Time
}

// NewOrder builds an order with its own copy of the line slice, so callers
// cannot mutate lines after placement.
func NewOrder(id int, customer string, lines []OrderLine, isPriority bool, createdAt time.Time) *Order {
	copied := make([]OrderLine, len(lines))
	copy(copied, lines)
	return &Order{
		ID:         id,
		Customer:   customer,
		Lines:      copied,
		IsPriority: isPriority,
		CreatedAt:  createdAt,
	}
}
