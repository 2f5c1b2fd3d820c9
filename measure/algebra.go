/*
Package measure defines the cached-measurement framework shared by chunk,
btree and the root sequence package.

A measurement policy is a triple (m, ⊕, I): a per-item measure m: S → T, a
combining operation ⊕ that is associative over T, and an identity element I.
Chunks, tree nodes and whole sequences cache a T value equal to the ⊕-fold of
the measures of the items they transitively contain; every mutation refreshes
that cache so it is always consistent with the live items at any public
entry/exit point.

When the algebra additionally has an inverse (a group, not just a monoid),
callers may repair a cache in O(1) on end mutations by combining with the
inverse of the removed measure rather than recomputing from scratch. The
inverse is always an optimization, never a requirement: every algorithm in
this module must behave correctly given only Algebra.
*/
package measure

// Algebra combines measurement values under an associative operation with
// an identity element.
//
// For values x, y, z, Combine must satisfy:
//
//	Combine(Combine(x, y), z) == Combine(x, Combine(y, z))
//	Combine(Identity(), x) == x == Combine(x, Identity())
//
// Commutativity is not required.
type Algebra[T any] interface {
	Identity() T
	Combine(left, right T) T
}

// GroupAlgebra is an Algebra with an inverse, used as an optimization: caches
// can be repaired with one Combine(..., Invert(x)) on single-item end
// mutations instead of a full recompute over the live range.
type GroupAlgebra[T any] interface {
	Algebra[T]
	Invert(value T) T
}

// Measure maps an item to its per-item measurement value.
type Measure[S, T any] interface {
	Of(item S) T
}

// Fold combines the per-item measures of items in order under alg, starting
// from alg.Identity(). This is the ṁ(b,e) segment-measure function from the
// data model: ṁ(items) = m(items[0]) ⊕ ... ⊕ m(items[n-1]).
func Fold[S, T any](alg Algebra[T], m Measure[S, T], items []S) T {
	acc := alg.Identity()
	for _, item := range items {
		acc = alg.Combine(acc, m.Of(item))
	}
	return acc
}

// HasInverse reports whether alg also implements GroupAlgebra, and returns
// the narrowed interface when it does.
func HasInverse[T any](alg Algebra[T]) (GroupAlgebra[T], bool) {
	g, ok := alg.(GroupAlgebra[T])
	return g, ok
}
