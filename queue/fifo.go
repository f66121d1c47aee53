package queue

import "cafe-ops/domain"

// fifoNode is a link in the singly linked queue.
type fifoNode struct {
	order *domain.Order
	next  *fifoNode
}

// FIFO is a strict first-in-first-out queue of normal orders, singly linked
// with head and tail references. Enqueue and dequeue are O(1); there is no
// capacity bound.
type FIFO struct {
	head *fifoNode
	tail *fifoNode
	size int
}

// Ensure FIFO implements Source.
var _ Source = (*FIFO)(nil)

// NewFIFO creates an empty queue.
func NewFIFO() *FIFO {
	return &FIFO{}
}

// Enqueue appends an order at the tail. O(1).
func (q *FIFO) Enqueue(order *domain.Order) {
	n := &fifoNode{order: order}
	if q.tail == nil {
		q.head = n
		q.tail = n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
}

// Dequeue removes and returns the head order, or false when empty. O(1).
func (q *FIFO) Dequeue() (*domain.Order, bool) {
	if q.head == nil {
		return nil, false
	}
	order := q.head.order
	q.head = q.head.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return order, true
}

// Next implements Source.
func (q *FIFO) Next() (*domain.Order, bool) {
	return q.Dequeue()
}

// IsEmpty reports whether the queue holds no orders. O(1).
func (q *FIFO) IsEmpty() bool {
	return q.head == nil
}

// Len returns the number of queued orders. O(1).
func (q *FIFO) Len() int {
	return q.size
}
