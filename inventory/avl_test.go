package inventory

import (
	"math/rand"
	"testing"

	"cafe-ops/domain"
)

func item(id, stock, threshold int) domain.InventoryItem {
	return domain.InventoryItem{ID: id, Name: "item", Stock: stock, ReorderThreshold: threshold}
}

// checkAVL walks the whole tree verifying the height bookkeeping and the
// balance invariant at every node. Returns the verified height.
func checkAVL(t *testing.T, n *node) int {
	t.Helper()
	if n == nil {
		return 0
	}
	hl := checkAVL(t, n.left)
	hr := checkAVL(t, n.right)
	want := hl + 1
	if hr >= hl {
		want = hr + 1
	}
	if n.height != want {
		t.Fatalf("node %d: stored height %d, actual %d", n.key, n.height, want)
	}
	bf := hl - hr
	if bf < -1 || bf > 1 {
		t.Fatalf("node %d: balance factor %d violates AVL invariant", n.key, bf)
	}
	return want
}

// checkAscending verifies in-order output is strictly increasing by id.
func checkAscending(t *testing.T, tree *Tree) {
	t.Helper()
	items := tree.InOrder()
	for i := 1; i < len(items); i++ {
		if items[i-1].ID >= items[i].ID {
			t.Fatalf("in-order not strictly ascending: %d before %d", items[i-1].ID, items[i].ID)
		}
	}
}

// TestInsertSearch verifies a basic round trip and overwrite semantics.
func TestInsertSearch(t *testing.T) {
	tree := NewTree()

	tree.Insert(item(1, 50, 10))

	got, ok := tree.Search(1)
	if !ok {
		t.Fatal("expected item 1 to exist")
	}
	if got.Stock != 50 {
		t.Errorf("expected stock 50, got %d", got.Stock)
	}

	// Overwrite, not duplicate.
	tree.Insert(item(1, 48, 10))
	if tree.Len() != 1 {
		t.Fatalf("expected size 1 after overwrite, got %d", tree.Len())
	}
	got, _ = tree.Search(1)
	if got.Stock != 48 {
		t.Errorf("expected overwritten stock 48, got %d", got.Stock)
	}
}

// TestInsertKeepsBalance inserts ascending keys, the classic worst case for
// an unbalanced BST, and checks the invariant after every insert.
func TestInsertKeepsBalance(t *testing.T) {
	tree := NewTree()
	for id := 1; id <= 64; id++ {
		tree.Insert(item(id, 10, 2))
		checkAVL(t, tree.root)
		checkAscending(t, tree)
	}
	if h := height(tree.root); h > 7 {
		t.Errorf("expected logarithmic height for 64 keys, got %d", h)
	}
}

// TestDeleteCases exercises leaf, one-child, and two-children deletion.
func TestDeleteCases(t *testing.T) {
	tree := NewTree()
	for _, id := range []int{50, 30, 70, 20, 40, 60, 80, 35} {
		tree.Insert(item(id, 10, 2))
	}

	tree.Delete(20) // leaf
	tree.Delete(30) // one child (35) after previous delete
	tree.Delete(50) // two children, successor replacement
	checkAVL(t, tree.root)
	checkAscending(t, tree)

	for _, id := range []int{20, 30, 50} {
		if _, ok := tree.Search(id); ok {
			t.Errorf("expected id %d to be deleted", id)
		}
	}
	for _, id := range []int{35, 40, 60, 70, 80} {
		if _, ok := tree.Search(id); !ok {
			t.Errorf("expected id %d to survive", id)
		}
	}
	if tree.Len() != 5 {
		t.Errorf("expected size 5, got %d", tree.Len())
	}

	// Deleting an absent key is a no-op.
	tree.Delete(999)
	if tree.Len() != 5 {
		t.Errorf("expected size unchanged by absent delete, got %d", tree.Len())
	}
}

// TestRandomOperations runs a randomized insert/delete sequence and checks
// the AVL invariant after every operation.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tree := NewTree()
	live := map[int]bool{}

	for i := 0; i < 500; i++ {
		id := rng.Intn(100)
		if rng.Intn(3) == 0 {
			tree.Delete(id)
			delete(live, id)
		} else {
			tree.Insert(item(id, rng.Intn(50), 5))
			live[id] = true
		}
		checkAVL(t, tree.root)
		checkAscending(t, tree)
		if tree.Len() != len(live) {
			t.Fatalf("size %d does not match expected %d", tree.Len(), len(live))
		}
	}
}

// TestLowStock verifies the threshold filter.
func TestLowStock(t *testing.T) {
	tree := NewTree()
	tree.Insert(item(1, 50, 10))
	tree.Insert(item(2, 8, 8))  // at threshold counts as low
	tree.Insert(item(3, 2, 5))  // below threshold
	tree.Insert(item(4, 20, 5))

	low := tree.LowStock()
	if len(low) != 2 {
		t.Fatalf("expected 2 low-stock items, got %d", len(low))
	}
	if low[0].ID != 2 || low[1].ID != 3 {
		t.Errorf("expected low-stock ids [2 3], got [%d %d]", low[0].ID, low[1].ID)
	}
}
