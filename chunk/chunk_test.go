package chunk

import (
	"testing"

	"github.com/gopherseq/chunkseq/measure"
)

func newIntRing(t *testing.T, cap int) *Chunk[int, int] {
	t.Helper()
	c, err := New[int, int](cap, Ring, measure.Size[int]{}, measure.Size[int]{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func newIntStack(t *testing.T, cap int) *Chunk[int, int] {
	t.Helper()
	c, err := New[int, int](cap, Stack, measure.Size[int]{}, measure.Size[int]{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func newIntBag(t *testing.T, cap int) *Chunk[int, int] {
	t.Helper()
	c, err := New[int, int](cap, Bag, measure.Size[int]{}, measure.Size[int]{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func wantItems[S comparable, T any](t *testing.T, c *Chunk[S, T], want []S) {
	t.Helper()
	if c.Size() != len(want) {
		t.Fatalf("Size() = %d, want %d", c.Size(), len(want))
	}
	for i, w := range want {
		got, err := c.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != w {
			t.Fatalf("At(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestRingPushPopBothEnds(t *testing.T) {
	c := newIntRing(t, 4)
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	must(c.PushBack(2))
	must(c.PushBack(3))
	must(c.PushFront(1))
	must(c.PushFront(0))
	wantItems(t, c, []int{0, 1, 2, 3})
	if c.Measure() != 4 {
		t.Fatalf("Measure() = %d, want 4", c.Measure())
	}
	if err := c.PushBack(4); err != ErrChunkFull {
		t.Fatalf("PushBack on full chunk: got %v, want ErrChunkFull", err)
	}

	x, err := c.PopFront()
	must(err)
	if x != 0 {
		t.Fatalf("PopFront() = %d, want 0", x)
	}
	y, err := c.PopBack()
	must(err)
	if y != 3 {
		t.Fatalf("PopBack() = %d, want 3", y)
	}
	wantItems(t, c, []int{1, 2})
	if c.Measure() != 2 {
		t.Fatalf("Measure() = %d, want 2", c.Measure())
	}
}

func TestRingWrapsAround(t *testing.T) {
	c := newIntRing(t, 4)
	for _, x := range []int{1, 2, 3, 4} {
		if err := c.PushBack(x); err != nil {
			t.Fatalf("PushBack(%d): %v", x, err)
		}
	}
	if _, err := c.PopFront(); err != nil {
		t.Fatalf("PopFront: %v", err)
	}
	if _, err := c.PopFront(); err != nil {
		t.Fatalf("PopFront: %v", err)
	}
	if err := c.PushBack(5); err != nil {
		t.Fatalf("PushBack(5): %v", err)
	}
	if err := c.PushBack(6); err != nil {
		t.Fatalf("PushBack(6): %v", err)
	}
	wantItems(t, c, []int{3, 4, 5, 6})

	first, second := c.Segments()
	if len(second) == 0 {
		t.Fatalf("expected a wrapped ring to expose two segments, got one of len %d", len(first))
	}
}

func TestStackFrontIsON(t *testing.T) {
	c := newIntStack(t, 4)
	if err := c.PushBack(2); err != nil {
		t.Fatalf("PushBack: %v", err)
	}
	if err := c.PushFront(1); err != nil {
		t.Fatalf("PushFront: %v", err)
	}
	if err := c.PushFront(0); err != nil {
		t.Fatalf("PushFront: %v", err)
	}
	wantItems(t, c, []int{0, 1, 2})
	x, err := c.PopFront()
	if err != nil {
		t.Fatalf("PopFront: %v", err)
	}
	if x != 0 {
		t.Fatalf("PopFront() = %d, want 0", x)
	}
	wantItems(t, c, []int{1, 2})
}

func TestBagRedirectsFrontToBack(t *testing.T) {
	c := newIntBag(t, 4)
	if err := c.PushBack(1); err != nil {
		t.Fatalf("PushBack: %v", err)
	}
	if err := c.PushFront(2); err != nil {
		t.Fatalf("PushFront: %v", err)
	}
	wantItems(t, c, []int{1, 2})

	front, err := c.Front()
	if err != nil {
		t.Fatalf("Front: %v", err)
	}
	if front != 2 {
		t.Fatalf("Front() = %d, want 2 (Bag.Front redirects to Back)", front)
	}

	x, err := c.PopFront()
	if err != nil {
		t.Fatalf("PopFront: %v", err)
	}
	if x != 2 {
		t.Fatalf("PopFront() = %d, want 2 (Bag.PopFront redirects to PopBack)", x)
	}
	wantItems(t, c, []int{1})
}

func TestBagRemoveAtCompacts(t *testing.T) {
	c := newIntBag(t, 4)
	for _, x := range []int{1, 2, 3} {
		if err := c.PushBack(x); err != nil {
			t.Fatalf("PushBack(%d): %v", x, err)
		}
	}
	x, err := c.RemoveAt(0)
	if err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	if x != 1 {
		t.Fatalf("RemoveAt(0) = %d, want 1", x)
	}
	// Bag compaction moves the last item into the hole: order is not
	// preserved, but both survivors remain present.
	wantItems(t, c, []int{3, 2})
}

func TestRingRemoveAtPreservesOrder(t *testing.T) {
	c := newIntRing(t, 4)
	for _, x := range []int{1, 2, 3} {
		if err := c.PushBack(x); err != nil {
			t.Fatalf("PushBack(%d): %v", x, err)
		}
	}
	x, err := c.RemoveAt(1)
	if err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	if x != 2 {
		t.Fatalf("RemoveAt(1) = %d, want 2", x)
	}
	wantItems(t, c, []int{1, 3})
}

func TestSplitAtAndConcat(t *testing.T) {
	a := newIntRing(t, 4)
	for _, x := range []int{1, 2, 3, 4} {
		if err := a.PushBack(x); err != nil {
			t.Fatalf("PushBack(%d): %v", x, err)
		}
	}
	b := newIntRing(t, 4)
	if err := a.SplitAt(2, b); err != nil {
		t.Fatalf("SplitAt: %v", err)
	}
	wantItems(t, a, []int{1, 2})
	wantItems(t, b, []int{3, 4})
	if a.Measure() != 2 || b.Measure() != 2 {
		t.Fatalf("Measure() after split = %d, %d, want 2, 2", a.Measure(), b.Measure())
	}

	if err := a.Concat(b); err != nil {
		t.Fatalf("Concat: %v", err)
	}
	wantItems(t, a, []int{1, 2, 3, 4})
	if b.Size() != 0 {
		t.Fatalf("Concat did not empty source chunk, Size() = %d", b.Size())
	}
	if a.Measure() != 4 {
		t.Fatalf("Measure() after concat = %d, want 4", a.Measure())
	}
}

func TestSplitAtRejectsNonEmptyDestination(t *testing.T) {
	a := newIntRing(t, 4)
	if err := a.PushBack(1); err != nil {
		t.Fatalf("PushBack: %v", err)
	}
	b := newIntRing(t, 4)
	if err := b.PushBack(9); err != nil {
		t.Fatalf("PushBack: %v", err)
	}
	if err := a.SplitAt(0, b); err != ErrDestinationNotEmpty {
		t.Fatalf("SplitAt into non-empty destination: got %v, want ErrDestinationNotEmpty", err)
	}
}

func TestSetRecomputesCache(t *testing.T) {
	weight := measure.Weighted[int]{Weight: func(x int) int { return x }}
	c, err := New[int, int](4, Ring, weight, weight)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, x := range []int{1, 2, 3} {
		if err := c.PushBack(x); err != nil {
			t.Fatalf("PushBack(%d): %v", x, err)
		}
	}
	if c.Measure() != 6 {
		t.Fatalf("Measure() = %d, want 6", c.Measure())
	}
	if err := c.Set(1, 10); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if c.Measure() != 14 {
		t.Fatalf("Measure() after Set = %d, want 14", c.Measure())
	}
}

func TestInvalidCapacityRejected(t *testing.T) {
	if _, err := New[int, int](3, Ring, measure.Size[int]{}, measure.Size[int]{}); err != ErrInvalidCapacity {
		t.Fatalf("New with odd capacity: got %v, want ErrInvalidCapacity", err)
	}
	if _, err := New[int, int](0, Ring, measure.Size[int]{}, measure.Size[int]{}); err != ErrInvalidCapacity {
		t.Fatalf("New with zero capacity: got %v, want ErrInvalidCapacity", err)
	}
}

func TestEmptyChunkOperations(t *testing.T) {
	c := newIntRing(t, 4)
	if !c.Empty() {
		t.Fatalf("Empty() = false on a fresh chunk")
	}
	if _, err := c.PopFront(); err != ErrChunkEmpty {
		t.Fatalf("PopFront on empty: got %v, want ErrChunkEmpty", err)
	}
	if _, err := c.PopBack(); err != ErrChunkEmpty {
		t.Fatalf("PopBack on empty: got %v, want ErrChunkEmpty", err)
	}
	if _, err := c.Front(); err != ErrChunkEmpty {
		t.Fatalf("Front on empty: got %v, want ErrChunkEmpty", err)
	}
}
