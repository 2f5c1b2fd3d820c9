package chunkseq

// At returns the item at sequence position index, 0 <= index < Len().
func (sq *Sequence[S, T]) At(index int) (S, error) {
	var zero S
	if index < 0 {
		return zero, ErrIndexOutOfBounds
	}
	if index < sq.frontOuter.Size() {
		return sq.frontOuter.At(index)
	}
	index -= sq.frontOuter.Size()
	if index < sq.frontInner.Size() {
		return sq.frontInner.At(index)
	}
	index -= sq.frontInner.Size()

	midCount := sq.middle.Measure().Count
	if index < midCount {
		slot, leafStart, err := sq.locateMiddleChunk(index)
		if err != nil {
			return zero, err
		}
		leaf, err := sq.middle.At(slot)
		if err != nil {
			return zero, err
		}
		return leaf.chunk.At(index - leafStart)
	}
	index -= midCount

	if index < sq.backInner.Size() {
		return sq.backInner.At(index)
	}
	index -= sq.backInner.Size()
	if index < sq.backOuter.Size() {
		return sq.backOuter.At(index)
	}
	return zero, ErrIndexOutOfBounds
}

// Set overwrites the item at sequence position index in place.
func (sq *Sequence[S, T]) Set(index int, item S) error {
	if index < 0 {
		return ErrIndexOutOfBounds
	}
	if index < sq.frontOuter.Size() {
		return sq.frontOuter.Set(index, item)
	}
	index -= sq.frontOuter.Size()
	if index < sq.frontInner.Size() {
		return sq.frontInner.Set(index, item)
	}
	index -= sq.frontInner.Size()

	midCount := sq.middle.Measure().Count
	if index < midCount {
		slot, leafStart, err := sq.locateMiddleChunk(index)
		if err != nil {
			return err
		}
		leaf, err := sq.middle.At(slot)
		if err != nil {
			return err
		}
		if err := leaf.chunk.Set(index-leafStart, item); err != nil {
			return err
		}
		// The chunk mutated above is already the tree's payload by pointer,
		// but the tree's cached measurements along the path to it are not
		// refreshed automatically: force the recompute walk.
		return sq.middle.Set(slot, leaf)
	}
	index -= midCount

	if index < sq.backInner.Size() {
		return sq.backInner.Set(index, item)
	}
	index -= sq.backInner.Size()
	if index < sq.backOuter.Size() {
		return sq.backOuter.Set(index, item)
	}
	return ErrIndexOutOfBounds
}

// locateMiddleChunk finds the middle-tree slot (chunk) containing absolute
// middle-tree item index idx, along with the item index at which that
// chunk's own items begin.
func (sq *Sequence[S, T]) locateMiddleChunk(idx int) (slot, leafStart int, err error) {
	slot, prefix, found := sq.middle.SearchBy(func(acc pairT[T]) bool { return acc.Count > idx })
	if !found {
		return 0, 0, ErrIndexOutOfBounds
	}
	leaf, err := sq.middle.At(slot)
	if err != nil {
		return 0, 0, err
	}
	return slot, prefix.Count - leaf.chunk.Size(), nil
}
