/*
Package weighted configures a chunked sequence whose cached fold is a
caller-supplied integer weight rather than a plain item count — e.g. byte
length for rune items, render width for glyphs, or any other per-item cost
that should be queryable in O(1) and kept correct across splits and
concatenations.
*/
package weighted

import (
	"github.com/gopherseq/chunkseq"
	"github.com/gopherseq/chunkseq/chunk"
	"github.com/gopherseq/chunkseq/measure"
)

// New creates an empty sequence of items of type S, folding weight(item)
// under integer addition, with the given chunk capacity (0 selects
// chunkseq's default).
func New[S any](weight func(S) int, chunkCapacity int) (*chunkseq.Sequence[S, int], error) {
	return chunkseq.New(chunkseq.Config[S, int]{
		Algebra:       measure.Weighted[S]{Weight: weight},
		Measure:       measure.Weighted[S]{Weight: weight},
		ChunkCapacity: chunkCapacity,
		ChunkKind:     chunk.Ring,
	})
}
