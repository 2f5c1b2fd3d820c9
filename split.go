package chunkseq

import "github.com/gopherseq/chunkseq/btree"

// normalizeToMiddle spills every finger chunk into the middle tree, leaving
// all four fingers empty and every live item reachable through middle. Split
// and Concat both reduce to a middle-tree operation preceded by this step,
// so neither has to reason about partially-filled fingers.
func (sq *Sequence[S, T]) normalizeToMiddle() {
	if !sq.frontInner.Empty() {
		assert(sq.middle.PushFront(middleLeaf[S, T]{chunk: sq.frontInner}) == nil, "normalizeToMiddle: PushFront failed")
		sq.frontInner = sq.newFinger()
	}
	if !sq.frontOuter.Empty() {
		assert(sq.middle.PushFront(middleLeaf[S, T]{chunk: sq.frontOuter}) == nil, "normalizeToMiddle: PushFront failed")
		sq.frontOuter = sq.newFinger()
	}
	if !sq.backInner.Empty() {
		assert(sq.middle.PushBack(middleLeaf[S, T]{chunk: sq.backInner}) == nil, "normalizeToMiddle: PushBack failed")
		sq.backInner = sq.newFinger()
	}
	if !sq.backOuter.Empty() {
		assert(sq.middle.PushBack(middleLeaf[S, T]{chunk: sq.backOuter}) == nil, "normalizeToMiddle: PushBack failed")
		sq.backOuter = sq.newFinger()
	}
}

// fromMiddle builds a Sequence around an already-populated middle tree, with
// fresh, empty finger chunks; refillFront/refillBack lazily pull the first
// chunk back out of the tree on the next end operation.
func (sq *Sequence[S, T]) fromMiddle(middle *btree.Tree[middleLeaf[S, T], pairT[T]]) *Sequence[S, T] {
	return &Sequence[S, T]{
		cfg:        sq.cfg,
		frontOuter: sq.newFinger(),
		frontInner: sq.newFinger(),
		middle:     middle,
		backInner:  sq.newFinger(),
		backOuter:  sq.newFinger(),
	}
}

// Split divides the sequence at position index into two: the returned left
// sequence holds [0,index), right holds [index,Len()). Split consumes the
// receiver, whose internal storage is moved (not copied) into the results;
// the receiver must not be used again except to be discarded.
func (sq *Sequence[S, T]) Split(index int) (left, right *Sequence[S, T], err error) {
	if index < 0 || index > sq.Len() {
		return nil, nil, ErrIndexOutOfBounds
	}
	sq.normalizeToMiddle()
	slot, err := sq.splitMiddleAtItemIndex(index)
	if err != nil {
		return nil, nil, err
	}
	leftMid, rightMid, err := sq.middle.SplitAt(slot)
	if err != nil {
		return nil, nil, err
	}
	return sq.fromMiddle(leftMid), sq.fromMiddle(rightMid), nil
}

// splitMiddleAtItemIndex ensures a chunk boundary exists at item-level
// position index within sq.middle (every live item, since the caller has
// already normalized all fingers into it), splitting the one chunk that
// straddles index if necessary, and returns the chunk-level slot at which
// middle.SplitAt should then cut — middle.SplitAt is positional over
// payload count, and each payload there is a whole chunk, not a single
// item, so an item-level index has to be resolved to a slot first, the same
// way locateMiddleChunk resolves one for At/Set.
func (sq *Sequence[S, T]) splitMiddleAtItemIndex(index int) (slot int, err error) {
	total := sq.middle.Measure().Count
	if index == 0 {
		return 0, nil
	}
	if index == total {
		return sq.middle.Len(), nil
	}
	chunkSlot, leafStart, err := sq.locateMiddleChunk(index)
	if err != nil {
		return 0, err
	}
	leaf, err := sq.middle.At(chunkSlot)
	if err != nil {
		return 0, err
	}
	localOffset := index - leafStart
	if localOffset == 0 {
		return chunkSlot, nil
	}
	if localOffset == leaf.chunk.Size() {
		return chunkSlot + 1, nil
	}

	// index falls strictly inside this chunk: split the chunk itself into
	// two, the way splitNode splits a boundary leaf before the tree-level
	// surgery above it, then splice the two halves back in its place.
	removed, err := sq.middle.DeleteAt(chunkSlot)
	if err != nil {
		return 0, err
	}
	rightHalf := sq.newFinger()
	if err := removed.chunk.SplitAt(localOffset, rightHalf); err != nil {
		return 0, err
	}
	if err := sq.middle.InsertAt(chunkSlot, middleLeaf[S, T]{chunk: removed.chunk}); err != nil {
		return 0, err
	}
	if err := sq.middle.InsertAt(chunkSlot+1, middleLeaf[S, T]{chunk: rightHalf}); err != nil {
		return 0, err
	}
	return chunkSlot + 1, nil
}

// SplitBy locates the first position at which pred becomes true over the
// running prefix measurement (per SearchBy) and splits there. If pred never
// becomes true, every item ends up in left.
func (sq *Sequence[S, T]) SplitBy(pred func(prefix T) bool) (left, right *Sequence[S, T], err error) {
	index, _, found := sq.SearchBy(pred)
	if !found {
		index = sq.Len()
	}
	return sq.Split(index)
}
