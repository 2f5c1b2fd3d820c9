/*
Package ingest bulk-loads bytes from an io.Reader into a chunked sequence
in fragments, broadcasting a Progress message after each fragment so a
caller can drive a progress bar without polling.

A Sequence has a single owner and does not tolerate concurrent mutation,
so unlike a leaf-per-fragment cord that can load fragments on background
goroutines and let a reader block on the ones it touches, ingest loads
synchronously on the caller's goroutine: caster.Caster here broadcasts
status to onlookers, not results back to worker goroutines.
*/
package ingest

import (
	"context"
	"io"

	"github.com/guiguan/caster"

	"github.com/gopherseq/chunkseq"
	"github.com/gopherseq/chunkseq/chunk"
	"github.com/gopherseq/chunkseq/measure"
)

const defaultFragmentSize = 6144

// Progress reports the state of an in-flight Load after one fragment has
// been pushed into the sequence.
type Progress struct {
	BytesLoaded int
	Done        bool
	Err         error
}

// Loader streams a reader into a byte sequence fragment by fragment,
// publishing a Progress after each fragment via its Caster.
type Loader struct {
	FragmentSize int
	cast         *caster.Caster
}

// NewLoader creates a Loader with the given fragment size (0 selects a
// sensible default). Subscribe to Subscribe() before calling Load to
// observe progress.
func NewLoader(fragmentSize int) *Loader {
	if fragmentSize <= 0 {
		fragmentSize = defaultFragmentSize
	}
	return &Loader{FragmentSize: fragmentSize, cast: caster.New(nil)}
}

// Subscribe returns a channel of Progress broadcasts and an unsubscribe
// function, per caster.Caster's Sub/leave contract.
func (l *Loader) Subscribe(ctx context.Context) (ch chan interface{}, unsubscribe func()) {
	ch, _ = l.cast.Sub(ctx, 0)
	unsubscribe = func() { l.cast.Unsub(ch) }
	return ch, unsubscribe
}

// Load reads r to completion, pushing bytes into a freshly created byte
// sequence, and returns it once r is exhausted.
func (l *Loader) Load(r io.Reader) (*chunkseq.Sequence[byte, int], error) {
	seq, err := chunkseq.New(chunkseq.Config[byte, int]{
		Algebra:   measure.Size[byte]{},
		Measure:   measure.Size[byte]{},
		ChunkKind: chunk.Ring,
	})
	if err != nil {
		return nil, err
	}
	defer l.cast.Close()

	buf := make([]byte, l.FragmentSize)
	loaded := 0
	for {
		n, err := r.Read(buf)
		for i := 0; i < n; i++ {
			if pushErr := seq.PushBack(buf[i]); pushErr != nil {
				l.cast.Pub(Progress{BytesLoaded: loaded, Err: pushErr})
				return nil, pushErr
			}
		}
		loaded += n
		if n > 0 {
			l.cast.Pub(Progress{BytesLoaded: loaded})
		}
		if err == io.EOF {
			l.cast.Pub(Progress{BytesLoaded: loaded, Done: true})
			return seq, nil
		}
		if err != nil {
			l.cast.Pub(Progress{BytesLoaded: loaded, Err: err})
			return nil, err
		}
	}
}
