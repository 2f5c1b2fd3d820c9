/*
Package stack configures a chunked sequence as a LIFO stack: chunks pinned
at offset 0 (chunk.Stack) so pushes/pops at the working end stay O(1),
trading O(K) for the end nobody uses.

Grounded on chunkseq.Config wiring, restricted to a small stack-shaped API
surface, the way cords.Cord wraps *btree.Tree with a narrower method set
than the tree itself exposes.
*/
package stack

import (
	"github.com/gopherseq/chunkseq"
	"github.com/gopherseq/chunkseq/chunk"
	"github.com/gopherseq/chunkseq/measure"
)

// Stack is a LIFO container of items of type S.
type Stack[S any] struct {
	seq *chunkseq.Sequence[S, int]
}

// New creates an empty stack, with the given chunk capacity (0 selects
// chunkseq's default).
func New[S any](chunkCapacity int) (*Stack[S], error) {
	seq, err := chunkseq.New(chunkseq.Config[S, int]{
		Algebra:       measure.Size[S]{},
		Measure:       measure.Size[S]{},
		ChunkCapacity: chunkCapacity,
		ChunkKind:     chunk.Stack,
	})
	if err != nil {
		return nil, err
	}
	return &Stack[S]{seq: seq}, nil
}

// Push adds item to the top of the stack.
func (s *Stack[S]) Push(item S) error {
	return s.seq.PushBack(item)
}

// Pop removes and returns the top item.
func (s *Stack[S]) Pop() (S, error) {
	return s.seq.PopBack()
}

// Peek returns the top item without removing it.
func (s *Stack[S]) Peek() (S, error) {
	return s.seq.Back()
}

// Len returns the number of items on the stack.
func (s *Stack[S]) Len() int { return s.seq.Len() }

// IsEmpty reports whether the stack holds no items.
func (s *Stack[S]) IsEmpty() bool { return s.seq.IsEmpty() }
