package inventory

import (
	"math/rand"
	"testing"

	"cafe-ops/domain"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"
)

// Compares the hand-built AVL tree against the gods red-black tree for the
// inventory workload: keyed inserts with overwrites, point lookups, and
// ordered scans. Run with: go test -bench=. ./inventory

const benchKeys = 1024

func benchItems() []domain.InventoryItem {
	rng := rand.New(rand.NewSource(42))
	items := make([]domain.InventoryItem, benchKeys)
	for i := range items {
		items[i] = domain.InventoryItem{
			ID:               rng.Intn(benchKeys * 4),
			Name:             "item",
			Stock:            rng.Intn(100),
			ReorderThreshold: 10,
		}
	}
	return items
}

func BenchmarkAVLInsert(b *testing.B) {
	items := benchItems()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := NewTree()
		for _, it := range items {
			tree.Insert(it)
		}
	}
}

func BenchmarkRedBlackInsert(b *testing.B) {
	items := benchItems()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := rbt.New[int, domain.InventoryItem]()
		for _, it := range items {
			tree.Put(it.ID, it)
		}
	}
}

func BenchmarkAVLSearch(b *testing.B) {
	items := benchItems()
	tree := NewTree()
	for _, it := range items {
		tree.Insert(it)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Search(items[i%len(items)].ID)
	}
}

func BenchmarkRedBlackSearch(b *testing.B) {
	items := benchItems()
	tree := rbt.New[int, domain.InventoryItem]()
	for _, it := range items {
		tree.Put(it.ID, it)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Get(items[i%len(items)].ID)
	}
}

func BenchmarkAVLInOrder(b *testing.B) {
	items := benchItems()
	tree := NewTree()
	for _, it := range items {
		tree.Insert(it)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := tree.InOrder(); len(got) == 0 {
			b.Fatal("empty scan")
		}
	}
}

func BenchmarkRedBlackInOrder(b *testing.B) {
	items := benchItems()
	tree := rbt.New[int, domain.InventoryItem]()
	for _, it := range items {
		tree.Put(it.ID, it)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := tree.Values(); len(got) == 0 {
			b.Fatal("empty scan")
		}
	}
}
