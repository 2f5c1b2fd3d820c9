package chunkseq

import (
	"github.com/gopherseq/chunkseq/btree"
	"github.com/gopherseq/chunkseq/chunk"
)

// Sequence is a generic, mutable, ordered container with amortized O(1)
// push/pop at both ends and O(log n) positional access, split and
// concatenation, plus an O(1) cached fold of a pluggable per-item
// measurement. There is no positional insert or delete.
//
// Four small finger chunks (frontOuter, frontInner, backInner, backOuter)
// absorb end operations; once a finger fills it spills, as a whole chunk,
// into middle, a weighted B+ tree whose own leaf payloads are chunks. Among
// end operations only a finger overflow, or a finger emptied and refilled
// from middle, touches the tree, so the tree is touched roughly once every
// ChunkCapacity end operations.
//
// A Sequence has exactly one owner: no method is safe to call concurrently
// with another call on the same Sequence, and any iterator or Segment
// obtained from it is invalidated by a subsequent mutation.
type Sequence[S, T any] struct {
	cfg Config[S, T]

	frontOuter *chunk.Chunk[S, T]
	frontInner *chunk.Chunk[S, T]
	middle     *btree.Tree[middleLeaf[S, T], pairT[T]]
	backInner  *chunk.Chunk[S, T]
	backOuter  *chunk.Chunk[S, T]
}

// New creates an empty Sequence governed by cfg.
func New[S, T any](cfg Config[S, T]) (*Sequence[S, T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()

	newFinger := func() (*chunk.Chunk[S, T], error) {
		if cfg.Allocator != nil {
			return chunk.NewWithBuffer(cfg.Allocator.Allocate(cfg.ChunkCapacity), cfg.ChunkKind, cfg.Algebra, cfg.Measure)
		}
		return chunk.New(cfg.ChunkCapacity, cfg.ChunkKind, cfg.Algebra, cfg.Measure)
	}
	frontOuter, err := newFinger()
	if err != nil {
		return nil, err
	}
	frontInner, err := newFinger()
	if err != nil {
		return nil, err
	}
	backInner, err := newFinger()
	if err != nil {
		return nil, err
	}
	backOuter, err := newFinger()
	if err != nil {
		return nil, err
	}
	middle, err := btree.New[middleLeaf[S, T]](btree.Config[pairT[T]]{
		Algebra: middleAlgebra[T]{inner: cfg.Algebra},
		Degree:  cfg.TreeDegree,
	})
	if err != nil {
		return nil, err
	}
	return &Sequence[S, T]{
		cfg:        cfg,
		frontOuter: frontOuter,
		frontInner: frontInner,
		middle:     middle,
		backInner:  backInner,
		backOuter:  backOuter,
	}, nil
}

// Len returns the number of live items.
func (sq *Sequence[S, T]) Len() int {
	return sq.frontOuter.Size() + sq.frontInner.Size() +
		sq.middle.Measure().Count + sq.backInner.Size() + sq.backOuter.Size()
}

// IsEmpty reports whether the sequence holds no items.
func (sq *Sequence[S, T]) IsEmpty() bool {
	return sq.Len() == 0
}

// FrontOuterSize, FrontInnerSize, BackInnerSize and BackOuterSize expose
// the live item count of each finger chunk, for external diagnostics
// (package debug) that need to inspect a Sequence's shape without reaching
// into its unexported fields.
func (sq *Sequence[S, T]) FrontOuterSize() int { return sq.frontOuter.Size() }
func (sq *Sequence[S, T]) FrontInnerSize() int { return sq.frontInner.Size() }
func (sq *Sequence[S, T]) BackInnerSize() int  { return sq.backInner.Size() }
func (sq *Sequence[S, T]) BackOuterSize() int  { return sq.backOuter.Size() }

// MiddleTree exposes the middle tree's read-only structural surface, for
// package debug's DOT and console dumps.
func (sq *Sequence[S, T]) MiddleTree() interface {
	Len() int
	Height() int
	Dump() btree.DumpNode
} {
	return sq.middle
}

// Measure returns the ⊕-fold of every live item's measurement, in order.
func (sq *Sequence[S, T]) Measure() T {
	alg := sq.cfg.Algebra
	acc := sq.frontOuter.Measure()
	acc = alg.Combine(acc, sq.frontInner.Measure())
	acc = alg.Combine(acc, sq.middle.Measure().Inner)
	acc = alg.Combine(acc, sq.backInner.Measure())
	acc = alg.Combine(acc, sq.backOuter.Measure())
	return acc
}
