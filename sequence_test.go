package chunkseq

import (
	"testing"

	"github.com/gopherseq/chunkseq/chunk"
	"github.com/gopherseq/chunkseq/measure"
)

func newTestConfig() Config[int, int] {
	return Config[int, int]{
		Algebra:       measure.Size[int]{},
		Measure:       measure.Size[int]{},
		ChunkCapacity: 4,
		TreeDegree:    4,
		ChunkKind:     chunk.Ring,
	}
}

func newTestSequence(t *testing.T) *Sequence[int, int] {
	t.Helper()
	seq, err := New(newTestConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return seq
}

func fillBack(t *testing.T, seq *Sequence[int, int], n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := seq.PushBack(i); err != nil {
			t.Fatalf("PushBack(%d): %v", i, err)
		}
	}
}

func assertSeqOrder(t *testing.T, seq *Sequence[int, int], want []int) {
	t.Helper()
	if seq.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", seq.Len(), len(want))
	}
	for i, w := range want {
		got, err := seq.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != w {
			t.Fatalf("At(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestPushBackThenPopBackRoundtrip(t *testing.T) {
	seq := newTestSequence(t)
	fillBack(t, seq, 500)
	want := make([]int, 500)
	for i := range want {
		want[i] = i
	}
	assertSeqOrder(t, seq, want)
	if seq.Measure() != 500 {
		t.Fatalf("Measure() = %d, want 500", seq.Measure())
	}
	for i := 499; i >= 0; i-- {
		got, err := seq.PopBack()
		if err != nil {
			t.Fatalf("PopBack at %d: %v", i, err)
		}
		if got != i {
			t.Fatalf("PopBack() = %d, want %d", got, i)
		}
	}
	if !seq.IsEmpty() {
		t.Fatalf("sequence not empty after draining")
	}
	if _, err := seq.PopBack(); err != ErrEmptySequence {
		t.Fatalf("PopBack on empty: got %v, want ErrEmptySequence", err)
	}
}

func TestPushFrontThenPopFrontRoundtrip(t *testing.T) {
	seq := newTestSequence(t)
	for i := 299; i >= 0; i-- {
		if err := seq.PushFront(i); err != nil {
			t.Fatalf("PushFront(%d): %v", i, err)
		}
	}
	want := make([]int, 300)
	for i := range want {
		want[i] = i
	}
	assertSeqOrder(t, seq, want)
	for i := 0; i < 300; i++ {
		got, err := seq.PopFront()
		if err != nil {
			t.Fatalf("PopFront at %d: %v", i, err)
		}
		if got != i {
			t.Fatalf("PopFront() = %d, want %d", got, i)
		}
	}
	if !seq.IsEmpty() {
		t.Fatalf("sequence not empty after draining")
	}
}

func TestMixedEndsDrainEitherDirection(t *testing.T) {
	seq := newTestSequence(t)
	fillBack(t, seq, 200)
	for i := 0; i < 50; i++ {
		if _, err := seq.PopFront(); err != nil {
			t.Fatalf("PopFront: %v", err)
		}
	}
	for i := 0; i < 50; i++ {
		if _, err := seq.PopBack(); err != nil {
			t.Fatalf("PopBack: %v", err)
		}
	}
	want := make([]int, 100)
	for i := range want {
		want[i] = i + 50
	}
	assertSeqOrder(t, seq, want)
}

func TestSetOverwritesAcrossRegions(t *testing.T) {
	seq := newTestSequence(t)
	fillBack(t, seq, 100)
	for _, idx := range []int{0, 1, 50, 98, 99} {
		if err := seq.Set(idx, idx*1000); err != nil {
			t.Fatalf("Set(%d): %v", idx, err)
		}
		got, err := seq.At(idx)
		if err != nil {
			t.Fatalf("At(%d): %v", idx, err)
		}
		if got != idx*1000 {
			t.Fatalf("At(%d) = %d, want %d", idx, got, idx*1000)
		}
	}
}

func TestSplitAndConcatRoundtrip(t *testing.T) {
	seq := newTestSequence(t)
	fillBack(t, seq, 200)
	left, right, err := seq.Split(73)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	wantLeft := make([]int, 73)
	for i := range wantLeft {
		wantLeft[i] = i
	}
	assertSeqOrder(t, left, wantLeft)
	wantRight := make([]int, 127)
	for i := range wantRight {
		wantRight[i] = i + 73
	}
	assertSeqOrder(t, right, wantRight)

	if err := left.Concat(right); err != nil {
		t.Fatalf("Concat: %v", err)
	}
	want := make([]int, 200)
	for i := range want {
		want[i] = i
	}
	assertSeqOrder(t, left, want)
	if right.Len() != 0 {
		t.Fatalf("Concat did not consume its operand, Len() = %d", right.Len())
	}
}

func TestCursorNextPrevAndSeek(t *testing.T) {
	seq := newTestSequence(t)
	fillBack(t, seq, 20)
	cur := seq.NewCursor()
	for i := 0; i < 20; i++ {
		item, ok := cur.Next()
		if !ok {
			t.Fatalf("Next at %d: not ok", i)
		}
		if item != i {
			t.Fatalf("Next() = %d, want %d", item, i)
		}
		if cur.Prefix() != i+1 {
			t.Fatalf("Prefix() = %d, want %d", cur.Prefix(), i+1)
		}
	}
	if _, ok := cur.Next(); ok {
		t.Fatalf("Next() at end: want not ok")
	}
	for i := 19; i >= 0; i-- {
		item, ok := cur.Prev()
		if !ok {
			t.Fatalf("Prev at %d: not ok", i)
		}
		if item != i {
			t.Fatalf("Prev() = %d, want %d", item, i)
		}
		if cur.Prefix() != i {
			t.Fatalf("Prefix() after Prev = %d, want %d", cur.Prefix(), i)
		}
	}

	found := cur.SeekBy(func(acc int) bool { return acc >= 10 })
	if !found {
		t.Fatalf("SeekBy: not found")
	}
	if cur.Index() != 9 {
		t.Fatalf("SeekBy index = %d, want 9", cur.Index())
	}
}

func TestBuilderMaterializesStagedFragments(t *testing.T) {
	b := NewBuilder(newTestConfig())
	if err := b.Append(3, 4, 5); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := b.Prepend(1, 2); err != nil {
		t.Fatalf("Prepend: %v", err)
	}
	if err := b.Append(6); err != nil {
		t.Fatalf("Append: %v", err)
	}
	seq, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	assertSeqOrder(t, seq, []int{1, 2, 3, 4, 5, 6})

	if err := b.Append(7); err != ErrBuilderDone {
		t.Fatalf("Append after Build: got %v, want ErrBuilderDone", err)
	}
}

func TestReaderReadsBytesInOrder(t *testing.T) {
	cfg := Config[byte, int]{
		Algebra:       measure.Size[byte]{},
		Measure:       measure.Size[byte]{},
		ChunkCapacity: 4,
		TreeDegree:    4,
	}
	seq, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []byte("the quick brown fox jumps over the lazy dog")
	for _, b := range want {
		if err := seq.PushBack(b); err != nil {
			t.Fatalf("PushBack: %v", err)
		}
	}
	r := NewReader(seq)
	buf := make([]byte, 7)
	var got []byte
	for {
		n, err := r.Read(buf)
		got = append(got, buf[:n]...)
		if err != nil {
			break
		}
	}
	if string(got) != string(want) {
		t.Fatalf("Reader produced %q, want %q", got, want)
	}
}

func TestForEachSegmentCoversEveryItemOnce(t *testing.T) {
	seq := newTestSequence(t)
	fillBack(t, seq, 150)
	var seen []int
	seq.ForEachSegment(func(seg Segment[int, int]) bool {
		seen = append(seen, seg.Items()...)
		return true
	})
	if len(seen) != 150 {
		t.Fatalf("ForEachSegment visited %d items, want 150", len(seen))
	}
	for i, v := range seen {
		if v != i {
			t.Fatalf("item %d = %d, want %d", i, v, i)
		}
	}
}
