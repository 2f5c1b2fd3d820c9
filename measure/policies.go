package measure

// Trivial is the unit policy: every item measures to the same unit value and
// Combine is the unit monoid. Grounded on chunk/summary.go's Monoid pattern
// (a zero-sized struct implementing Zero/Add), reduced to its degenerate
// case where the summary carries no information at all.
type Trivial[S any] struct{}

// Unit is the trivial measurement type: a single inhabitant.
type Unit struct{}

func (Trivial[S]) Identity() Unit         { return Unit{} }
func (Trivial[S]) Combine(_, _ Unit) Unit { return Unit{} }
func (Trivial[S]) Of(_ S) Unit            { return Unit{} }

// Size counts items: m(x) = 1, T = int, algebra is the integer additive
// group. Grounded on chunk/summary.go's ByteDimension (accumulate a count
// under +).
type Size[S any] struct{}

func (Size[S]) Identity() int        { return 0 }
func (Size[S]) Combine(a, b int) int { return a + b }
func (Size[S]) Invert(a int) int     { return -a }
func (Size[S]) Of(_ S) int           { return 1 }

// Weighted measures each item by a caller-supplied integer weight function
// and combines under the integer additive group. Grounded on
// chunk/summary.go's Summary.Bytes/Chars/Lines fields, generalized from a
// fixed set of byte-derived counters to an arbitrary per-item weight.
type Weighted[S any] struct {
	Weight func(S) int
}

func (Weighted[S]) Identity() int        { return 0 }
func (Weighted[S]) Combine(a, b int) int { return a + b }
func (Weighted[S]) Invert(a int) int     { return -a }
func (w Weighted[S]) Of(item S) int      { return w.Weight(item) }

// Pair combines two independent measurement policies into a product
// measurement T = (A, B). Grounded on chunk.Summary, which is itself a fixed
// 3-tuple product (Bytes, Chars, Lines) of independent additive measures;
// Pair generalizes that shape to an arbitrary 2-tuple of policies, composed
// by clients who need more than two via nesting (Pair[Pair[A,B], C]).
type Pair[S, A, B any] struct {
	First  interface {
		Algebra[A]
		Measure[S, A]
	}
	Second interface {
		Algebra[B]
		Measure[S, B]
	}
}

// PairValue is the measurement type produced by Pair.
type PairValue[A, B any] struct {
	First  A
	Second B
}

func (p Pair[S, A, B]) Identity() PairValue[A, B] {
	return PairValue[A, B]{First: p.First.Identity(), Second: p.Second.Identity()}
}

func (p Pair[S, A, B]) Combine(left, right PairValue[A, B]) PairValue[A, B] {
	return PairValue[A, B]{
		First:  p.First.Combine(left.First, right.First),
		Second: p.Second.Combine(left.Second, right.Second),
	}
}

func (p Pair[S, A, B]) Of(item S) PairValue[A, B] {
	return PairValue[A, B]{First: p.First.Of(item), Second: p.Second.Of(item)}
}

// Invert requires both component algebras to have an inverse.
func (p Pair[S, A, B]) Invert(value PairValue[A, B]) PairValue[A, B] {
	firstGroup, ok := HasInverse(Algebra[A](p.First))
	if !ok {
		panic("measure: Pair.Invert called with a non-invertible first component")
	}
	secondGroup, ok := HasInverse(Algebra[B](p.Second))
	if !ok {
		panic("measure: Pair.Invert called with a non-invertible second component")
	}
	return PairValue[A, B]{
		First:  firstGroup.Invert(value.First),
		Second: secondGroup.Invert(value.Second),
	}
}

// MinKeyValue is the measurement type produced by MinKey: either "no key
// seen" (the monoid identity) or the smallest key seen so far.
type MinKeyValue[K any] struct {
	Valid bool
	Key   K
}

// MinKey measures each item by a key and combines under "min, with ⊥ as
// identity" — the policy backing an associative-map derived configuration,
// specialized to a min-semilattice rather than a sum.
type MinKey[S, K any] struct {
	KeyOf func(S) K
	Less  func(a, b K) bool
}

func (m MinKey[S, K]) Identity() MinKeyValue[K] { return MinKeyValue[K]{} }

func (m MinKey[S, K]) Combine(left, right MinKeyValue[K]) MinKeyValue[K] {
	switch {
	case !left.Valid:
		return right
	case !right.Valid:
		return left
	case m.Less(right.Key, left.Key):
		return right
	default:
		return left
	}
}

func (m MinKey[S, K]) Of(item S) MinKeyValue[K] {
	return MinKeyValue[K]{Valid: true, Key: m.KeyOf(item)}
}
