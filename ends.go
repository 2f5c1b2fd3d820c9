package chunkseq

import "github.com/gopherseq/chunkseq/chunk"

func (sq *Sequence[S, T]) newFinger() *chunk.Chunk[S, T] {
	var (
		c   *chunk.Chunk[S, T]
		err error
	)
	if sq.cfg.Allocator != nil {
		c, err = chunk.NewWithBuffer(sq.cfg.Allocator.Allocate(sq.cfg.ChunkCapacity), sq.cfg.ChunkKind, sq.cfg.Algebra, sq.cfg.Measure)
	} else {
		c, err = chunk.New(sq.cfg.ChunkCapacity, sq.cfg.ChunkKind, sq.cfg.Algebra, sq.cfg.Measure)
	}
	if err != nil {
		panic("chunkseq: finger chunk construction failed with validated config: " + err.Error())
	}
	return c
}

// PushBack appends item as the new last item.
func (sq *Sequence[S, T]) PushBack(item S) error {
	if sq.backOuter.Full() {
		if sq.backInner.Empty() {
			sq.backInner, sq.backOuter = sq.backOuter, sq.newFinger()
		} else {
			if err := sq.middle.PushBack(middleLeaf[S, T]{chunk: sq.backInner}); err != nil {
				return err
			}
			sq.backInner = sq.backOuter
			sq.backOuter = sq.newFinger()
		}
	}
	return sq.backOuter.PushBack(item)
}

// PushFront prepends item as the new first item.
func (sq *Sequence[S, T]) PushFront(item S) error {
	if sq.frontOuter.Full() {
		if sq.frontInner.Empty() {
			sq.frontInner, sq.frontOuter = sq.frontOuter, sq.newFinger()
		} else {
			if err := sq.middle.PushFront(middleLeaf[S, T]{chunk: sq.frontInner}); err != nil {
				return err
			}
			sq.frontInner = sq.frontOuter
			sq.frontOuter = sq.newFinger()
		}
	}
	return sq.frontOuter.PushFront(item)
}

// refillBack ensures backOuter holds at least one item whenever the
// sequence as a whole is non-empty, promoting from backInner, then the
// middle tree, then (as a last resort) the front fingers.
func (sq *Sequence[S, T]) refillBack() {
	if !sq.backOuter.Empty() {
		return
	}
	if !sq.backInner.Empty() {
		sq.backOuter, sq.backInner = sq.backInner, sq.newFinger()
		return
	}
	if !sq.middle.IsEmpty() {
		leaf, err := sq.middle.PopBack()
		assert(err == nil, "refillBack: middle tree PopBack failed on a non-empty tree")
		sq.backOuter = leaf.chunk
		return
	}
	if !sq.frontInner.Empty() {
		sq.backOuter, sq.frontInner = sq.frontInner, sq.newFinger()
		return
	}
	if !sq.frontOuter.Empty() {
		sq.backOuter, sq.frontOuter = sq.frontOuter, sq.newFinger()
		return
	}
}

// refillFront mirrors refillBack on the front end.
func (sq *Sequence[S, T]) refillFront() {
	if !sq.frontOuter.Empty() {
		return
	}
	if !sq.frontInner.Empty() {
		sq.frontOuter, sq.frontInner = sq.frontInner, sq.newFinger()
		return
	}
	if !sq.middle.IsEmpty() {
		leaf, err := sq.middle.PopFront()
		assert(err == nil, "refillFront: middle tree PopFront failed on a non-empty tree")
		sq.frontOuter = leaf.chunk
		return
	}
	if !sq.backInner.Empty() {
		sq.frontOuter, sq.backInner = sq.backInner, sq.newFinger()
		return
	}
	if !sq.backOuter.Empty() {
		sq.frontOuter, sq.backOuter = sq.backOuter, sq.newFinger()
		return
	}
}

// PopBack removes and returns the last item.
func (sq *Sequence[S, T]) PopBack() (S, error) {
	var zero S
	sq.refillBack()
	if sq.backOuter.Empty() {
		return zero, ErrEmptySequence
	}
	return sq.backOuter.PopBack()
}

// PopFront removes and returns the first item.
func (sq *Sequence[S, T]) PopFront() (S, error) {
	var zero S
	sq.refillFront()
	if sq.frontOuter.Empty() {
		return zero, ErrEmptySequence
	}
	return sq.frontOuter.PopFront()
}

// Back returns the last item without removing it.
func (sq *Sequence[S, T]) Back() (S, error) {
	var zero S
	sq.refillBack()
	if sq.backOuter.Empty() {
		return zero, ErrEmptySequence
	}
	return sq.backOuter.Back()
}

// Front returns the first item without removing it.
func (sq *Sequence[S, T]) Front() (S, error) {
	var zero S
	sq.refillFront()
	if sq.frontOuter.Empty() {
		return zero, ErrEmptySequence
	}
	return sq.frontOuter.Front()
}
