package chunkseq

import "github.com/gopherseq/chunkseq/measure"

// Cursor navigates a Sequence by item position, tracking the ⊕-fold of the
// items it has stepped over so a forward step extends the prefix with one
// Combine instead of re-folding from the start. Each step still looks its
// item up by index through Sequence.At, so a step costs O(log n), not O(1).
//
// A Cursor is bound to one Sequence and is invalidated by any mutation
// performed on that Sequence after the cursor was created.
type Cursor[S, T any] struct {
	seq    *Sequence[S, T]
	index  int
	prefix T // ⊕-fold of items [0,index)
}

// NewCursor creates a cursor positioned before the first item.
func (sq *Sequence[S, T]) NewCursor() *Cursor[S, T] {
	return &Cursor[S, T]{seq: sq, index: 0, prefix: sq.cfg.Algebra.Identity()}
}

// Index returns the cursor's current item position.
func (cur *Cursor[S, T]) Index() int { return cur.index }

// Prefix returns the ⊕-fold of every item before the cursor's position.
func (cur *Cursor[S, T]) Prefix() T { return cur.prefix }

// Next returns the item at the cursor's position and advances by one, or
// reports ok=false at the end of the sequence.
func (cur *Cursor[S, T]) Next() (item S, ok bool) {
	var zero S
	if cur.index >= cur.seq.Len() {
		return zero, false
	}
	item, err := cur.seq.At(cur.index)
	if err != nil {
		return zero, false
	}
	cur.prefix = cur.seq.cfg.Algebra.Combine(cur.prefix, cur.seq.cfg.Measure.Of(item))
	cur.index++
	return item, true
}

// Prev moves the cursor back by one and returns the item it moved onto, or
// reports ok=false at the start of the sequence.
//
// When the sequence's algebra has an inverse, the running prefix is
// repaired in O(1); otherwise it is recomputed by folding from the start,
// an O(index) fallback. The inverse is always an optimization here, never a
// requirement, matching the rest of this module's measurement handling.
func (cur *Cursor[S, T]) Prev() (item S, ok bool) {
	var zero S
	if cur.index <= 0 {
		return zero, false
	}
	item, err := cur.seq.At(cur.index - 1)
	if err != nil {
		return zero, false
	}
	cur.index--
	if g, hasInverse := measure.HasInverse(cur.seq.cfg.Algebra); hasInverse {
		cur.prefix = g.Combine(cur.prefix, g.Invert(cur.seq.cfg.Measure.Of(item)))
	} else {
		cur.prefix = cur.seq.prefixThrough(cur.index)
	}
	return item, true
}

// SeekIndex moves the cursor directly to item position n.
func (cur *Cursor[S, T]) SeekIndex(n int) error {
	if n < 0 || n > cur.seq.Len() {
		return ErrIndexOutOfBounds
	}
	cur.index = n
	cur.prefix = cur.seq.prefixThrough(n)
	return nil
}

// SeekBy moves the cursor to the first position at which pred becomes true
// over the running prefix measurement, per Sequence.SearchBy.
func (cur *Cursor[S, T]) SeekBy(pred func(T) bool) bool {
	index, prefix, found := cur.seq.SearchBy(pred)
	if found {
		// SearchBy's prefix runs through the item at index; drop that item.
		if g, hasInverse := measure.HasInverse(cur.seq.cfg.Algebra); hasInverse {
			item, err := cur.seq.At(index)
			assert(err == nil, "SeekBy: At failed for an index SearchBy just reported")
			prefix = g.Combine(prefix, g.Invert(cur.seq.cfg.Measure.Of(item)))
		} else {
			prefix = cur.seq.prefixThrough(index)
		}
	}
	cur.index = index
	cur.prefix = prefix
	return found
}

// prefixThrough folds the measurement of items [0,n) from scratch.
func (sq *Sequence[S, T]) prefixThrough(n int) T {
	acc := sq.cfg.Algebra.Identity()
	for i := 0; i < n; i++ {
		item, err := sq.At(i)
		assert(err == nil, "prefixThrough: At failed within [0,n)")
		acc = sq.cfg.Algebra.Combine(acc, sq.cfg.Measure.Of(item))
	}
	return acc
}
