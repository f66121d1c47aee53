package reservation

import "cafe-ops/domain"

// intervalNode is a BST node ordered by reservation start, augmented with
// maxEnd, the largest interval end in its subtree. The augmentation lets
// overlap queries prune whole subtrees.
type intervalNode struct {
	res    domain.Reservation
	maxEnd int
	left   *intervalNode
	right  *intervalNode
}

// IntervalTree stores one table's reservations. Intervals are half-open
// [start, end): touching endpoints do not conflict.
//
// The tree is a plain BST, not height-balanced: adversarial insertion order
// (e.g. strictly increasing start times) degrades insert and query to
// linear time. Acceptable for per-table reservation counts; a balanced
// variant would combine this augmentation with the inventory tree's
// rotations.
type IntervalTree struct {
	root *intervalNode
	size int
}

// NewIntervalTree creates an empty tree.
func NewIntervalTree() *IntervalTree {
	return &IntervalTree{}
}

// Book inserts the reservation unless it overlaps a stored one. Returns
// false and leaves the tree unchanged on conflict or on an empty/inverted
// interval. O(log n) average.
func (t *IntervalTree) Book(res domain.Reservation) bool {
	if res.Start >= res.End {
		return false
	}
	if t.anyOverlap(t.root, res.Start, res.End) {
		return false
	}
	t.root = insert(t.root, res)
	t.size++
	return true
}

// insert places res by start time; equal starts go right. Every node on the
// path absorbs res.End into its maxEnd on the way down.
func insert(n *intervalNode, res domain.Reservation) *intervalNode {
	if n == nil {
		return &intervalNode{res: res, maxEnd: res.End}
	}
	if res.Start < n.res.Start {
		n.left = insert(n.left, res)
	} else {
		n.right = insert(n.right, res)
	}
	if res.End > n.maxEnd {
		n.maxEnd = res.End
	}
	return n
}

// anyOverlap reports whether any stored interval overlaps [s, e). Classic
// single-path interval search: when the left subtree's maxEnd exceeds the
// query start an overlap, if one exists anywhere, exists on the left.
func (t *IntervalTree) anyOverlap(n *intervalNode, s, e int) bool {
	if n == nil {
		return false
	}
	if s < n.res.End && e > n.res.Start {
		return true
	}
	if n.left != nil && n.left.maxEnd > s {
		return t.anyOverlap(n.left, s, e)
	}
	return t.anyOverlap(n.right, s, e)
}

// FindOverlaps collects every stored reservation overlapping [s, e) via a
// pruned traversal: the left subtree is visited only when its maxEnd exceeds
// the query start, the right only when the node's start precedes the query
// end. O(log n + k) average for k results.
func (t *IntervalTree) FindOverlaps(s, e int) []domain.Reservation {
	var out []domain.Reservation
	collectOverlaps(t.root, s, e, &out)
	return out
}

func collectOverlaps(n *intervalNode, s, e int, out *[]domain.Reservation) {
	if n == nil {
		return
	}
	if s < n.res.End && e > n.res.Start {
		*out = append(*out, n.res)
	}
	if n.left != nil && n.left.maxEnd > s {
		collectOverlaps(n.left, s, e, out)
	}
	if n.right != nil && n.res.Start < e {
		collectOverlaps(n.right, s, e, out)
	}
}

// Len returns the number of booked reservations.
func (t *IntervalTree) Len() int {
	return t.size
}
