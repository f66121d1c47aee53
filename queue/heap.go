package queue

import "cafe-ops/domain"

// heapEntry wraps a queued order with its ordering key. seq is assigned from
// the heap's own monotonic counter at push time, so two orders with equal
// priority pop in push order.
type heapEntry struct {
	order    *domain.Order
	priority int
	seq      uint64
}

// Heap is a binary min-heap of priority orders in compact array form.
// Ordering is (priority ascending, sequence ascending): a lower priority
// value and an earlier arrival both mean more urgent. Push and pop are
// O(log n).
type Heap struct {
	entries []heapEntry
	seq     uint64
}

// Ensure Heap implements Source.
var _ Source = (*Heap)(nil)

// NewHeap creates an empty priority heap.
func NewHeap() *Heap {
	return &Heap{}
}

// less reports whether entry i orders strictly before entry j.
func (h *Heap) less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

func (h *Heap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

// Push adds an order with the given priority rank and sifts it up until the
// heap property holds. O(log n).
func (h *Heap) Push(order *domain.Order, priority int) {
	h.entries = append(h.entries, heapEntry{order: order, priority: priority, seq: h.seq})
	h.seq++

	i := len(h.entries) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// Pop removes and returns the most urgent order, or false when empty.
// The last entry moves to the root and sifts down against the smaller
// child. O(log n).
func (h *Heap) Pop() (*domain.Order, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	order := h.entries[0].order

	last := len(h.entries) - 1
	h.entries[0] = h.entries[last]
	h.entries[last] = heapEntry{} // release the order reference
	h.entries = h.entries[:last]
	h.siftDown(0)

	return order, true
}

func (h *Heap) siftDown(i int) {
	n := len(h.entries)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// Next implements Source.
func (h *Heap) Next() (*domain.Order, bool) {
	return h.Pop()
}

// IsEmpty reports whether the heap holds no orders. O(1).
func (h *Heap) IsEmpty() bool {
	return len(h.entries) == 0
}

// Len returns the number of queued orders. O(1).
func (h *Heap) Len() int {
	return len(h.entries)
}
