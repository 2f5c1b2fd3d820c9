package bag

import "testing"

func TestAddTakeDrainsAllItems(t *testing.T) {
	b, err := New[int](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	const n = 50
	for i := 0; i < n; i++ {
		if err := b.Add(i); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}
	if got, want := b.Len(), n; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	seen := make(map[int]bool, n)
	for !b.IsEmpty() {
		v, err := b.Take()
		if err != nil {
			t.Fatalf("Take: %v", err)
		}
		if seen[v] {
			t.Fatalf("Take() returned %d twice", v)
		}
		seen[v] = true
	}
	if len(seen) != n {
		t.Fatalf("drained %d distinct items, want %d", len(seen), n)
	}
}
