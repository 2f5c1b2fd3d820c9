/*
Package deque configures a chunked sequence as a plain double-ended queue:
no cached measurement beyond item count, Ring chunks so every end operation
is O(1) amortized in both directions.

Grounded on chunkseq.Config's validate/normalized pattern, wired with
measure.Size as the simplest non-trivial algebra (callers get Len() for
free instead of the unit measurement telling them nothing).
*/
package deque

import (
	"github.com/gopherseq/chunkseq"
	"github.com/gopherseq/chunkseq/chunk"
	"github.com/gopherseq/chunkseq/measure"
)

// New creates an empty deque of items of type S, with the given chunk
// capacity (0 selects chunkseq's default).
func New[S any](chunkCapacity int) (*chunkseq.Sequence[S, int], error) {
	return chunkseq.New(chunkseq.Config[S, int]{
		Algebra:       measure.Size[S]{},
		Measure:       measure.Size[S]{},
		ChunkCapacity: chunkCapacity,
		ChunkKind:     chunk.Ring,
	})
}
