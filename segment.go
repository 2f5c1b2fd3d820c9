package chunkseq

import "github.com/gopherseq/chunkseq/measure"

// Segment is a read-only view of one contiguous run of items backed by a
// single chunk, together with the ⊕-fold of their measurements. It gives
// analytics/extension code a stable surface over the sequence's storage
// without exposing chunk or tree internals.
type Segment[S, T any] struct {
	items   []S
	measure T
}

// Items returns the segment's items. Callers must not mutate the slice, and
// must treat it as invalidated by any subsequent mutation of the sequence.
func (s Segment[S, T]) Items() []S { return s.items }

// Measure returns the ⊕-fold of the segment's items.
func (s Segment[S, T]) Measure() T { return s.measure }

// Len returns the number of items in the segment.
func (s Segment[S, T]) Len() int { return len(s.items) }

// IsEmpty reports whether the segment holds no items.
func (s Segment[S, T]) IsEmpty() bool { return len(s.items) == 0 }

// ForEachSegment visits every contiguous run of items in order, stopping
// early if fn returns false. Each run corresponds to one backing chunk (or,
// for a Ring chunk wrapped around its backing array, to one half of it).
func (sq *Sequence[S, T]) ForEachSegment(fn func(Segment[S, T]) bool) {
	cont := true
	visit := func(size int, segs func(func([]S) bool)) {
		if !cont || size == 0 {
			return
		}
		segs(func(items []S) bool {
			seg := Segment[S, T]{items: items, measure: measure.Fold(sq.cfg.Algebra, sq.cfg.Measure, items)}
			if !fn(seg) {
				cont = false
				return false
			}
			return true
		})
	}
	visit(sq.frontOuter.Size(), sq.frontOuter.ForeachSegment)
	visit(sq.frontInner.Size(), sq.frontInner.ForeachSegment)
	if cont {
		sq.middle.ForEach(func(leaf middleLeaf[S, T]) bool {
			visit(leaf.chunk.Size(), leaf.chunk.ForeachSegment)
			return cont
		})
	}
	visit(sq.backInner.Size(), sq.backInner.ForeachSegment)
	visit(sq.backOuter.Size(), sq.backOuter.ForeachSegment)
}
