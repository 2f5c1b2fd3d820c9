/*
Package chunk implements the fixed-capacity buffer ("chunk") that forms the
leaves (and, one level up, the interior payload) of a chunked sequence: up to
K items with O(1) double-ended push/pop/front/back/index and a cached
measurement refreshed on every mutation.

Three chunk shapes share this one implementation, selected by Kind:

  - Ring: a circular buffer with a rotating head; all end operations are
    O(1), matching a deque.
  - Stack: head is pinned at offset 0; PushBack/PopBack are O(1),
    PushFront/PopFront are O(K) (they shift the live range).
  - Bag: like Stack, but PushFront/PopFront/Front are redirected to the back
    operations — a bag has no notion of "front" at all.

Generalized from an immutable, byte-specific rope leaf to a mutable, generic
buffer with a single owner: exactly one goroutine mutates a Chunk at a time,
and every mutation updates the buffer and its cached measurement in place
rather than copying either.
*/
package chunk

import "github.com/gopherseq/chunkseq/measure"

// Kind selects the chunk's end-operation behavior.
type Kind int

const (
	// Ring is a double-ended circular buffer (deque chunk).
	Ring Kind = iota
	// Stack pins the front at offset 0 (stack chunk).
	Stack
	// Bag redirects all front operations to the back (compacting chunk).
	Bag
)

// DefaultItemCapacity is the default chunk capacity at the item (leaf)
// level.
const DefaultItemCapacity = 512

// DefaultInteriorCapacity is the default branching factor for interior
// chunks (chunks of child pointers).
const DefaultInteriorCapacity = 32

// Chunk is a bounded-capacity, double-ended buffer of up to Cap items of
// type S, with a cached measurement of type T kept consistent with the live
// items on every mutation.
type Chunk[S, T any] struct {
	kind Kind
	alg  measure.Algebra[T]
	m    measure.Measure[S, T]

	buf  []S
	cap  int
	head int // only meaningful for Ring
	n    int
	c    T
}

// New creates an empty chunk of the given kind, capacity and measurement
// policy. cap must be a positive even integer.
func New[S, T any](cap int, kind Kind, alg measure.Algebra[T], m measure.Measure[S, T]) (*Chunk[S, T], error) {
	return NewWithBuffer(make([]S, cap), kind, alg, m)
}

// NewWithBuffer creates an empty chunk that takes ownership of buf as its
// backing array; the chunk's capacity is len(buf). Lets a caller supply a
// pooled or otherwise pre-allocated buffer instead of one fresh from make.
func NewWithBuffer[S, T any](buf []S, kind Kind, alg measure.Algebra[T], m measure.Measure[S, T]) (*Chunk[S, T], error) {
	cap := len(buf)
	if cap <= 0 || cap%2 != 0 {
		return nil, ErrInvalidCapacity
	}
	return &Chunk[S, T]{
		kind: kind,
		alg:  alg,
		m:    m,
		buf:  buf,
		cap:  cap,
		c:    alg.Identity(),
	}, nil
}

// Kind returns the chunk's shape.
func (c *Chunk[S, T]) Kind() Kind { return c.kind }

// Cap returns the chunk's fixed capacity K.
func (c *Chunk[S, T]) Cap() int { return c.cap }

// Size returns the number of live items.
func (c *Chunk[S, T]) Size() int { return c.n }

// Full reports whether the chunk holds Cap items.
func (c *Chunk[S, T]) Full() bool { return c.n == c.cap }

// Empty reports whether the chunk holds no items.
func (c *Chunk[S, T]) Empty() bool { return c.n == 0 }

// Measure returns the cached measurement of the live items, ṁ(items).
func (c *Chunk[S, T]) Measure() T { return c.c }

func (c *Chunk[S, T]) slot(i int) int {
	if c.kind == Ring {
		return (c.head + i) % c.cap
	}
	return i
}

// At returns the item at chunk-local index i.
func (c *Chunk[S, T]) At(i int) (S, error) {
	var zero S
	if i < 0 || i >= c.n {
		return zero, ErrIndexOutOfBounds
	}
	return c.buf[c.slot(i)], nil
}

// Set overwrites the item at chunk-local index i and refreshes the cache.
//
// A middle-element overwrite cannot be repaired incrementally even under a
// group algebra (the replaced value's position inside the ⊕-fold matters,
// not just its value), so this always recomputes in O(K).
func (c *Chunk[S, T]) Set(i int, x S) error {
	if i < 0 || i >= c.n {
		return ErrIndexOutOfBounds
	}
	c.buf[c.slot(i)] = x
	c.recompute()
	return nil
}

// Front returns the first item. On a Bag chunk this redirects to Back, since
// bags have no distinguished front.
func (c *Chunk[S, T]) Front() (S, error) {
	var zero S
	if c.n == 0 {
		return zero, ErrChunkEmpty
	}
	if c.kind == Bag {
		return c.Back()
	}
	return c.buf[c.slot(0)], nil
}

// Back returns the last item.
func (c *Chunk[S, T]) Back() (S, error) {
	var zero S
	if c.n == 0 {
		return zero, ErrChunkEmpty
	}
	return c.buf[c.slot(c.n-1)], nil
}

// PushBack appends x. O(1) for all three kinds.
func (c *Chunk[S, T]) PushBack(x S) error {
	if c.Full() {
		return ErrChunkFull
	}
	c.buf[c.slot(c.n)] = x
	c.n++
	c.c = c.alg.Combine(c.c, c.m.Of(x))
	return nil
}

// PushFront prepends x. O(1) for Ring, O(K) for Stack (shifts the live
// range), redirected to PushBack for Bag.
func (c *Chunk[S, T]) PushFront(x S) error {
	if c.kind == Bag {
		return c.PushBack(x)
	}
	if c.Full() {
		return ErrChunkFull
	}
	switch c.kind {
	case Ring:
		c.head = (c.head - 1 + c.cap) % c.cap
		c.buf[c.head] = x
	case Stack:
		for j := c.n; j > 0; j-- {
			c.buf[j] = c.buf[j-1]
		}
		c.buf[0] = x
	}
	c.n++
	c.c = c.alg.Combine(c.m.Of(x), c.c)
	return nil
}

// PopBack removes and returns the last item. O(1), repaired in O(1) under a
// group algebra, O(K) recompute otherwise.
func (c *Chunk[S, T]) PopBack() (S, error) {
	var zero S
	if c.n == 0 {
		return zero, ErrChunkEmpty
	}
	idx := c.slot(c.n - 1)
	x := c.buf[idx]
	c.buf[idx] = zero
	c.n--
	if group, ok := measure.HasInverse(c.alg); ok {
		c.c = c.alg.Combine(c.c, group.Invert(c.m.Of(x)))
	} else {
		c.recompute()
	}
	return x, nil
}

// PopFront removes and returns the first item. O(1) for Ring, O(K) for
// Stack, redirected to PopBack for Bag.
func (c *Chunk[S, T]) PopFront() (S, error) {
	var zero S
	if c.kind == Bag {
		return c.PopBack()
	}
	if c.n == 0 {
		return zero, ErrChunkEmpty
	}
	idx := c.slot(0)
	x := c.buf[idx]
	switch c.kind {
	case Ring:
		c.buf[idx] = zero
		c.head = (c.head + 1) % c.cap
	case Stack:
		for j := 0; j < c.n-1; j++ {
			c.buf[j] = c.buf[j+1]
		}
		c.buf[c.n-1] = zero
	}
	c.n--
	if group, ok := measure.HasInverse(c.alg); ok {
		c.c = c.alg.Combine(group.Invert(c.m.Of(x)), c.c)
	} else {
		c.recompute()
	}
	return x, nil
}

// RemoveAt removes the item at chunk-local index i. On Ring/Stack chunks
// this preserves relative order (an O(K) shift); on Bag chunks it instead
// moves the last item into the hole, so order is not preserved and no items
// shift. Either way the cached measurement is then recomputed in O(K).
func (c *Chunk[S, T]) RemoveAt(i int) (S, error) {
	var zero S
	if i < 0 || i >= c.n {
		return zero, ErrIndexOutOfBounds
	}
	if c.kind == Bag {
		idx := c.slot(i)
		x := c.buf[idx]
		last := c.slot(c.n - 1)
		c.buf[idx] = c.buf[last]
		c.buf[last] = zero
		c.n--
		c.recompute()
		return x, nil
	}
	idx := c.slot(i)
	x := c.buf[idx]
	for j := i; j < c.n-1; j++ {
		c.buf[c.slot(j)] = c.buf[c.slot(j+1)]
	}
	c.buf[c.slot(c.n-1)] = zero
	c.n--
	c.recompute()
	return x, nil
}

// TransferFrontToBack moves the first n items of c onto the back of other,
// preserving relative order. Fails if c has fewer than n items or other
// cannot hold n more. On a Bag chunk, whose PopFront redirects to PopBack,
// the last n items move instead, in reverse order.
func (c *Chunk[S, T]) TransferFrontToBack(other *Chunk[S, T], n int) error {
	if n < 0 || n > c.n {
		return ErrInsufficientItems
	}
	if other.n+n > other.cap {
		return ErrChunkFull
	}
	for k := 0; k < n; k++ {
		x, err := c.PopFront()
		if err != nil {
			return err
		}
		if err := other.PushBack(x); err != nil {
			return err
		}
	}
	return nil
}

// TransferBackToFront moves the last n items of c onto the front of other,
// preserving relative order. On a Bag destination, whose PushFront
// redirects to PushBack, they land on its back in reverse order.
func (c *Chunk[S, T]) TransferBackToFront(other *Chunk[S, T], n int) error {
	if n < 0 || n > c.n {
		return ErrInsufficientItems
	}
	if other.n+n > other.cap {
		return ErrChunkFull
	}
	popped := make([]S, n)
	for k := n - 1; k >= 0; k-- {
		x, err := c.PopBack()
		if err != nil {
			return err
		}
		popped[k] = x
	}
	for k := n - 1; k >= 0; k-- {
		if err := other.PushFront(popped[k]); err != nil {
			return err
		}
	}
	return nil
}

// SplitAt splits c at chunk-local index i: c keeps items [0,i), other
// receives items [i,n). other must be empty.
func (c *Chunk[S, T]) SplitAt(i int, other *Chunk[S, T]) error {
	if other.n != 0 {
		return ErrDestinationNotEmpty
	}
	if i < 0 || i > c.n {
		return ErrIndexOutOfBounds
	}
	return c.TransferBackToFront(other, c.n-i)
}

// Concat appends other's items onto the back of c, in order, then empties
// other. Fails without mutating either chunk if c lacks capacity.
func (c *Chunk[S, T]) Concat(other *Chunk[S, T]) error {
	if c.n+other.n > c.cap {
		return ErrChunkFull
	}
	return other.TransferFrontToBack(c, other.n)
}

// Segments returns up to two contiguous slices over the live items, exposing
// the chunk's backing storage for zero-copy traversal. A Ring chunk wrapped
// around the end of its backing array
// yields two segments; every other case yields one. Callers must not mutate
// the returned slices, and must treat them as invalidated by any subsequent
// chunk mutation.
func (c *Chunk[S, T]) Segments() (first, second []S) {
	if c.n == 0 {
		return nil, nil
	}
	if c.kind != Ring {
		return c.buf[:c.n], nil
	}
	if c.head+c.n <= c.cap {
		return c.buf[c.head : c.head+c.n], nil
	}
	return c.buf[c.head:c.cap], c.buf[:c.head+c.n-c.cap]
}

// ForeachSegment visits each contiguous segment in order, stopping early if
// f returns false.
func (c *Chunk[S, T]) ForeachSegment(f func([]S) bool) {
	first, second := c.Segments()
	if len(first) > 0 && !f(first) {
		return
	}
	if len(second) > 0 {
		f(second)
	}
}

func (c *Chunk[S, T]) liveSlice() []S {
	first, second := c.Segments()
	if second == nil {
		return first
	}
	out := make([]S, 0, len(first)+len(second))
	out = append(out, first...)
	out = append(out, second...)
	return out
}

func (c *Chunk[S, T]) recompute() {
	c.c = measure.Fold(c.alg, c.m, c.liveSlice())
}
