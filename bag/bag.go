/*
Package bag configures a chunked sequence as an unordered collection over
bag chunks (chunk.Bag), whose front operations redirect to the back. Add and
Take work at the back in amortized O(1); there is no removal of a chosen
item.
*/
package bag

import (
	"github.com/gopherseq/chunkseq"
	"github.com/gopherseq/chunkseq/chunk"
	"github.com/gopherseq/chunkseq/measure"
)

// Bag is an unordered container of items of type S.
type Bag[S any] struct {
	seq *chunkseq.Sequence[S, int]
}

// New creates an empty bag, with the given chunk capacity (0 selects
// chunkseq's default).
func New[S any](chunkCapacity int) (*Bag[S], error) {
	seq, err := chunkseq.New(chunkseq.Config[S, int]{
		Algebra:       measure.Size[S]{},
		Measure:       measure.Size[S]{},
		ChunkCapacity: chunkCapacity,
		ChunkKind:     chunk.Bag,
	})
	if err != nil {
		return nil, err
	}
	return &Bag[S]{seq: seq}, nil
}

// Add inserts item into the bag.
func (b *Bag[S]) Add(item S) error {
	return b.seq.PushBack(item)
}

// Take removes and returns an arbitrary item (the last one), the cheapest
// possible removal for an unordered container.
func (b *Bag[S]) Take() (S, error) {
	return b.seq.PopBack()
}

// Len returns the number of items in the bag.
func (b *Bag[S]) Len() int { return b.seq.Len() }

// IsEmpty reports whether the bag holds no items.
func (b *Bag[S]) IsEmpty() bool { return b.seq.IsEmpty() }
