package menu

import (
	"sort"

	"cafe-ops/domain"

	"github.com/shopspring/decimal"
)

// DefaultCapacity is the bucket count used when no capacity is given.
// Prime, to spread sequential ids across buckets.
const DefaultCapacity = 127

// entry is a chained slot in the table. Collisions at the same bucket form
// a singly linked chain, newest first.
type entry struct {
	item domain.MenuItem
	next *entry
}

// Table is a fixed-capacity hash table of menu items with chaining.
// Capacity is fixed at construction; there is no resizing, so average O(1)
// lookup holds only while the load factor stays low.
type Table struct {
	buckets []*entry
	size    int
}

// NewTable creates a table with the given bucket count.
// Non-positive capacities fall back to DefaultCapacity.
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table{buckets: make([]*entry, capacity)}
}

// bucket maps an id to a bucket index. Absolute value keeps negative ids
// from producing negative indices.
func (t *Table) bucket(id int) int {
	if id < 0 {
		id = -id
	}
	return id % len(t.buckets)
}

// Insert adds a menu item, or updates name and price in place when the id
// is already present. Average O(1), worst case O(chain length).
func (t *Table) Insert(id int, name string, price decimal.Decimal) {
	idx := t.bucket(id)
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.item.ID == id {
			e.item.Name = name
			e.item.Price = price
			return
		}
	}
	t.buckets[idx] = &entry{
		item: domain.MenuItem{ID: id, Name: name, Price: price},
		next: t.buckets[idx],
	}
	t.size++
}

// Search returns the item with the given id. Average O(1).
func (t *Table) Search(id int) (domain.MenuItem, bool) {
	for e := t.buckets[t.bucket(id)]; e != nil; e = e.next {
		if e.item.ID == id {
			return e.item, true
		}
	}
	return domain.MenuItem{}, false
}

// Delete removes the item with the given id and reports whether one existed.
// Average O(1).
func (t *Table) Delete(id int) bool {
	idx := t.bucket(id)
	var prev *entry
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.item.ID == id {
			if prev == nil {
				t.buckets[idx] = e.next
			} else {
				prev.next = e.next
			}
			t.size--
			return true
		}
		prev = e
	}
	return false
}

// All returns every item sorted by id for stable listing. O(n log n).
// The table itself is not mutated.
func (t *Table) All() []domain.MenuItem {
	items := make([]domain.MenuItem, 0, t.size)
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			items = append(items, e.item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Len returns the number of stored items.
func (t *Table) Len() int {
	return t.size
}
