package weighted

import (
	"bufio"
	"errors"
	"strings"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"

	"github.com/gopherseq/chunkseq"
	"github.com/gopherseq/chunkseq/chunk"
	"github.com/gopherseq/chunkseq/measure"
)

// ErrNotOnBoundary signals a split requested at a byte offset that falls
// inside a grapheme cluster rather than between two of them.
var ErrNotOnBoundary = errors.New("weighted: split offset is not a grapheme cluster boundary")

// TextSequence is a byte-weighted sequence with a split-safety check: it
// tracks which byte offsets fall on grapheme cluster boundaries, so a split
// point chosen elsewhere (item count, byte offset) can be checked before it
// is used, generalizing a single-codepoint boundary check to full grapheme
// clusters (a codepoint plus any combining marks it takes with it).
type TextSequence struct {
	seq      *chunkseq.Sequence[byte, int]
	boundary map[int]bool
	nextByte int
}

// NewTextSequence creates an empty text sequence.
func NewTextSequence(chunkCapacity int) (*TextSequence, error) {
	seq, err := chunkseq.New(chunkseq.Config[byte, int]{
		Algebra:       measure.Size[byte]{},
		Measure:       measure.Size[byte]{},
		ChunkCapacity: chunkCapacity,
		ChunkKind:     chunk.Ring,
	})
	if err != nil {
		return nil, err
	}
	return &TextSequence{seq: seq, boundary: map[int]bool{0: true}}, nil
}

// AppendString appends s, recording every grapheme cluster boundary within
// it (relative to the sequence's overall byte offset) by running a
// Segmenter/Init/Next/Bytes loop over a grapheme-cluster breaker.
func (ts *TextSequence) AppendString(s string) error {
	grapheme.SetupGraphemeClasses()
	breaker := grapheme.NewBreaker(0)
	segmenter := segment.NewSegmenter(breaker)
	segmenter.Init(bufio.NewReader(strings.NewReader(s)))
	base := ts.nextByte
	offset := 0
	ts.boundary[base] = true
	for segmenter.Next() {
		frag := segmenter.Bytes()
		for _, b := range frag {
			if err := ts.seq.PushBack(b); err != nil {
				return err
			}
		}
		offset += len(frag)
		ts.boundary[base+offset] = true
	}
	ts.nextByte = base + offset
	return nil
}

// IsBoundary reports whether byteOffset falls on a grapheme cluster
// boundary, so a split at that offset never separates a base codepoint from
// a combining mark that belongs with it.
func (ts *TextSequence) IsBoundary(byteOffset int) bool {
	return ts.boundary[byteOffset]
}

// Len returns the number of bytes in the sequence.
func (ts *TextSequence) Len() int { return ts.seq.Len() }

// Split divides the sequence at byteOffset, which must be a grapheme
// boundary (checked with IsBoundary), into two independently usable
// sequences.
func (ts *TextSequence) Split(byteOffset int) (left, right *TextSequence, err error) {
	if !ts.IsBoundary(byteOffset) {
		return nil, nil, ErrNotOnBoundary
	}
	leftSeq, rightSeq, err := ts.seq.Split(byteOffset)
	if err != nil {
		return nil, nil, err
	}
	leftBoundary, rightBoundary := map[int]bool{}, map[int]bool{}
	for offset, ok := range ts.boundary {
		if !ok {
			continue
		}
		switch {
		case offset <= byteOffset:
			leftBoundary[offset] = true
		default:
			rightBoundary[offset-byteOffset] = true
		}
	}
	rightBoundary[0] = true
	return &TextSequence{seq: leftSeq, boundary: leftBoundary, nextByte: byteOffset},
		&TextSequence{seq: rightSeq, boundary: rightBoundary, nextByte: ts.nextByte - byteOffset},
		nil
}
