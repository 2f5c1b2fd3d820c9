package chunkseq

import (
	"github.com/gopherseq/chunkseq/chunk"
	"github.com/gopherseq/chunkseq/measure"
)

// middleLeaf is the payload type stored in the middle tree's leaves: one
// whole item-level chunk, carried by pointer so it can be mutated in place
// (as Sequence.Set does); the tree's cached measurements above it are not
// refreshed by that and must be recomputed through the tree afterwards.
type middleLeaf[S, T any] struct {
	chunk *chunk.Chunk[S, T]
}

// Measure returns the chunk's item count paired with its own cached
// measurement, so the middle tree can answer positional queries (which need
// an item count) and measurement queries (which need the fold of T) from the
// same cached value, without re-deriving either from the raw items.
func (l middleLeaf[S, T]) Measure() pairT[T] {
	return pairT[T]{Count: l.chunk.Size(), Inner: l.chunk.Measure()}
}

// pairT is the combined measurement cached at every middle-tree node: how
// many items its subtree holds, and the ⊕-fold of their measurements.
type pairT[T any] struct {
	Count int
	Inner T
}

// middleAlgebra lifts a per-item algebra to the pairT domain by adding the
// counts and combining the inner measurements independently. Deliberately
// not measure.Pair: that policy recomputes an "Of" per raw item, whereas
// here the per-chunk Count and Inner values are already cached on each
// middleLeaf and just need combining, not deriving.
type middleAlgebra[T any] struct {
	inner measure.Algebra[T]
}

func (a middleAlgebra[T]) Identity() pairT[T] {
	return pairT[T]{Count: 0, Inner: a.inner.Identity()}
}

func (a middleAlgebra[T]) Combine(left, right pairT[T]) pairT[T] {
	return pairT[T]{
		Count: left.Count + right.Count,
		Inner: a.inner.Combine(left.Inner, right.Inner),
	}
}
