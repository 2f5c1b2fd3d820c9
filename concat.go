package chunkseq

// Concat appends other's items onto the end of the receiver, in order, and
// consumes other (leaving it empty) — its storage is moved, not copied,
// into the receiver.
func (sq *Sequence[S, T]) Concat(other *Sequence[S, T]) error {
	if other == nil {
		return nil
	}
	sq.normalizeToMiddle()
	other.normalizeToMiddle()
	return sq.middle.Concat(other.middle)
}
