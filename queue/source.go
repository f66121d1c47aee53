package queue

import "cafe-ops/domain"

// Source yields orders in dispatch sequence. Both queue kinds implement it,
// so the dispatcher can drain them through one interface.
type Source interface {
	// Next removes and returns the next order, or false when empty.
	Next() (*domain.Order, bool)

	// Len returns the number of queued orders.
	Len() int
}
