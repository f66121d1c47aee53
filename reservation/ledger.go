package reservation

import (
	"cafe-ops/domain"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"
)

// Ledger owns one interval tree per table, created lazily on the first
// booking. Tables live in a red-black tree keyed by table id, so listings
// come out ordered. Trees are never shared between tables.
type Ledger struct {
	tables *rbt.Tree[int, *IntervalTree]
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{tables: rbt.New[int, *IntervalTree]()}
}

// Book reserves [start, end) on the given table for the customer. Returns
// false on conflict; a rejected booking leaves the ledger unchanged.
func (l *Ledger) Book(tableID, start, end int, customer string) bool {
	tree, ok := l.tables.Get(tableID)
	if !ok {
		tree = NewIntervalTree()
		l.tables.Put(tableID, tree)
	}
	return tree.Book(domain.Reservation{
		TableID:  tableID,
		Start:    start,
		End:      end,
		Customer: customer,
	})
}

// Overlaps returns the reservations on the table overlapping [start, end).
// A table with no bookings yields nil.
func (l *Ledger) Overlaps(tableID, start, end int) []domain.Reservation {
	tree, ok := l.tables.Get(tableID)
	if !ok {
		return nil
	}
	return tree.FindOverlaps(start, end)
}

// Tables returns the ids of all tables with at least one booking attempt,
// ascending.
func (l *Ledger) Tables() []int {
	return l.tables.Keys()
}

// Count returns the number of reservations booked on the table.
func (l *Ledger) Count(tableID int) int {
	tree, ok := l.tables.Get(tableID)
	if !ok {
		return 0
	}
	return tree.Len()
}
