package weighted

import "testing"

func TestSequenceMeasuresTotalWeight(t *testing.T) {
	seq, err := New(func(s string) int { return len(s) }, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, w := range []string{"a", "bb", "ccc", "dddd"} {
		if err := seq.PushBack(w); err != nil {
			t.Fatalf("PushBack(%q): %v", w, err)
		}
	}
	if got, want := seq.Measure(), 1+2+3+4; got != want {
		t.Fatalf("Measure() = %d, want %d", got, want)
	}
}

func TestTextSequenceSplitsOnlyAtGraphemeBoundaries(t *testing.T) {
	ts, err := NewTextSequence(8)
	if err != nil {
		t.Fatalf("NewTextSequence: %v", err)
	}
	if err := ts.AppendString("hello"); err != nil {
		t.Fatalf("AppendString: %v", err)
	}
	if !ts.IsBoundary(0) || !ts.IsBoundary(ts.Len()) {
		t.Fatalf("start/end of sequence must be boundaries")
	}
	left, right, err := ts.Split(2)
	if err != nil {
		t.Fatalf("Split(2): %v", err)
	}
	if got, want := left.Len(), 2; got != want {
		t.Fatalf("left.Len() = %d, want %d", got, want)
	}
	if got, want := right.Len(), 3; got != want {
		t.Fatalf("right.Len() = %d, want %d", got, want)
	}
}

func TestTextSequenceRejectsSplitOffBoundary(t *testing.T) {
	ts, err := NewTextSequence(8)
	if err != nil {
		t.Fatalf("NewTextSequence: %v", err)
	}
	if err := ts.AppendString("abc"); err != nil {
		t.Fatalf("AppendString: %v", err)
	}
	delete(ts.boundary, 1)
	if _, _, err := ts.Split(1); err != ErrNotOnBoundary {
		t.Fatalf("Split(1) error = %v, want ErrNotOnBoundary", err)
	}
}
