package inventory

import "cafe-ops/domain"

// node is an AVL tree node keyed by item id. height is the height of the
// subtree rooted here (leaf = 1).
type node struct {
	key    int
	item   domain.InventoryItem
	left   *node
	right  *node
	height int
}

// Tree is a height-balanced (AVL) binary search tree of inventory items
// keyed by id. Every structural change rebalances the whole path back to
// the root, so search, insert, and delete stay O(log n).
type Tree struct {
	root *node
	size int
}

// NewTree creates an empty inventory tree.
func NewTree() *Tree {
	return &Tree{}
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func update(n *node) {
	hl, hr := height(n.left), height(n.right)
	if hl > hr {
		n.height = hl + 1
	} else {
		n.height = hr + 1
	}
}

func rotateRight(y *node) *node {
	x := y.left
	t2 := x.right
	x.right = y
	y.left = t2
	update(y)
	update(x)
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	t2 := y.left
	y.left = x
	x.right = t2
	update(x)
	update(y)
	return y
}

// rebalance restores the AVL invariant at n after a structural change below
// it, handling the left-left, left-right, right-right, and right-left cases.
func rebalance(n *node) *node {
	update(n)
	bf := balanceFactor(n)
	if bf > 1 {
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}
	if bf < -1 {
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

// Insert adds an item keyed by its ID, overwriting the stored value when the
// key already exists. O(log n).
func (t *Tree) Insert(item domain.InventoryItem) {
	var added bool
	t.root, added = insertRec(t.root, item)
	if added {
		t.size++
	}
}

func insertRec(n *node, item domain.InventoryItem) (*node, bool) {
	if n == nil {
		return &node{key: item.ID, item: item, height: 1}, true
	}
	var added bool
	switch {
	case item.ID < n.key:
		n.left, added = insertRec(n.left, item)
	case item.ID > n.key:
		n.right, added = insertRec(n.right, item)
	default:
		n.item = item
		return n, false
	}
	return rebalance(n), added
}

// Search returns the item with the given id. O(log n), no mutation.
func (t *Tree) Search(id int) (domain.InventoryItem, bool) {
	n := t.root
	for n != nil {
		switch {
		case id < n.key:
			n = n.left
		case id > n.key:
			n = n.right
		default:
			return n.item, true
		}
	}
	return domain.InventoryItem{}, false
}

// Delete removes the item with the given id; deleting an absent key is a
// no-op. Uses successor replacement when both children are present, then
// rebalances the whole deletion path. O(log n).
func (t *Tree) Delete(id int) {
	var removed bool
	t.root, removed = deleteRec(t.root, id)
	if removed {
		t.size--
	}
}

func deleteRec(n *node, id int) (*node, bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case id < n.key:
		n.left, removed = deleteRec(n.left, id)
	case id > n.key:
		n.right, removed = deleteRec(n.right, id)
	default:
		removed = true
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key = succ.key
		n.item = succ.item
		n.right, _ = deleteRec(n.right, succ.key)
	}
	return rebalance(n), removed
}

// InOrder returns all items ascending by id. O(n).
func (t *Tree) InOrder() []domain.InventoryItem {
	items := make([]domain.InventoryItem, 0, t.size)
	inorderRec(t.root, &items)
	return items
}

func inorderRec(n *node, out *[]domain.InventoryItem) {
	if n == nil {
		return
	}
	inorderRec(n.left, out)
	*out = append(*out, n.item)
	inorderRec(n.right, out)
}

// LowStock returns the items at or below their reorder threshold, ascending
// by id. O(n).
func (t *Tree) LowStock() []domain.InventoryItem {
	var low []domain.InventoryItem
	for _, item := range t.InOrder() {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low
}

// Len returns the number of stored items.
func (t *Tree) Len() int {
	return t.size
}
