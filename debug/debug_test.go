package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gopherseq/chunkseq"
	"github.com/gopherseq/chunkseq/chunk"
	"github.com/gopherseq/chunkseq/measure"
)

func newTestSequence(t *testing.T) *chunkseq.Sequence[int, int] {
	t.Helper()
	seq, err := chunkseq.New(chunkseq.Config[int, int]{
		Algebra:       measure.Size[int]{},
		Measure:       measure.Size[int]{},
		ChunkCapacity: 4,
		TreeDegree:    4,
		ChunkKind:     chunk.Ring,
	})
	if err != nil {
		t.Fatalf("chunkseq.New: %v", err)
	}
	return seq
}

func TestInspectReportsFingerAndMiddleSizes(t *testing.T) {
	seq := newTestSequence(t)
	for i := 0; i < 200; i++ {
		if err := seq.PushBack(i); err != nil {
			t.Fatalf("PushBack(%d): %v", i, err)
		}
	}
	shape := Inspect[int, int](seq)
	total := shape.FrontOuter + shape.FrontInner + shape.MiddleItems + shape.BackInner + shape.BackOuter
	if total != seq.Len() {
		t.Fatalf("Inspect reported %d total items, want %d", total, seq.Len())
	}
}

func TestDotWritesGraphvizDigraph(t *testing.T) {
	seq := newTestSequence(t)
	for i := 0; i < 20; i++ {
		if err := seq.PushBack(i); err != nil {
			t.Fatalf("PushBack(%d): %v", i, err)
		}
	}
	var buf bytes.Buffer
	Dot(Inspect[int, int](seq), &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Fatalf("Dot output does not start with digraph header: %q", out[:min(40, len(out))])
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "}") {
		t.Fatalf("Dot output does not end with closing brace")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
