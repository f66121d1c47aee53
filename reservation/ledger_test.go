package reservation

import "testing"

// TestLedgerPerTableIsolation verifies bookings on one table never conflict
// with another table's.
func TestLedgerPerTableIsolation(t *testing.T) {
	l := NewLedger()

	if !l.Book(1, 540, 600, "Ayesha") {
		t.Fatal("expected table 1 booking to succeed")
	}
	if !l.Book(2, 540, 600, "Bilal") {
		t.Error("expected identical slot on table 2 to succeed")
	}
	if l.Book(1, 550, 610, "Danish") {
		t.Error("expected overlapping slot on table 1 to fail")
	}

	if got := l.Count(1); got != 1 {
		t.Errorf("expected 1 reservation on table 1, got %d", got)
	}
	if got := l.Count(2); got != 1 {
		t.Errorf("expected 1 reservation on table 2, got %d", got)
	}
}

// TestLedgerOverlapsQuery verifies query results and the unknown-table case.
func TestLedgerOverlapsQuery(t *testing.T) {
	l := NewLedger()
	l.Book(1, 540, 600, "Ayesha")
	l.Book(1, 630, 690, "Danish")

	got := l.Overlaps(1, 590, 640)
	if len(got) != 2 {
		t.Fatalf("expected 2 overlaps, got %d", len(got))
	}

	if l.Overlaps(99, 0, 1000) != nil {
		t.Error("expected nil for a table with no bookings")
	}
}

// TestLedgerTablesOrdered verifies the table listing is ascending.
func TestLedgerTablesOrdered(t *testing.T) {
	l := NewLedger()
	l.Book(7, 0, 10, "a")
	l.Book(2, 0, 10, "b")
	l.Book(5, 0, 10, "c")

	want := []int{2, 5, 7}
	got := l.Tables()
	if len(got) != len(want) {
		t.Fatalf("expected %d tables, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected table %d at position %d, got %d", want[i], i, got[i])
		}
	}
}
