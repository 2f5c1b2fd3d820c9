package chunkseq

import "github.com/gopherseq/chunkseq/chunk"

// SearchBy descends the sequence along a monotone predicate over the
// running prefix measurement: pred is assumed false on the identity and,
// once true, true for every extension of the prefix. SearchBy returns the
// index of the first item at which pred first becomes true, plus the
// prefix measurement through that item. found is false if pred never
// becomes true, in which case index is Len() and prefix is Measure().
func (sq *Sequence[S, T]) SearchBy(pred func(prefix T) bool) (index int, prefix T, found bool) {
	alg := sq.cfg.Algebra
	acc := alg.Identity()
	globalIndex := 0

	scan := func(c *chunk.Chunk[S, T]) (int, T, bool) {
		for i := 0; i < c.Size(); i++ {
			item, err := c.At(i)
			assert(err == nil, "SearchBy: finger chunk At failed within its own size")
			next := alg.Combine(acc, sq.cfg.Measure.Of(item))
			if pred(next) {
				return globalIndex + i, next, true
			}
			acc = next
		}
		globalIndex += c.Size()
		return 0, acc, false
	}

	if idx, p, ok := scan(sq.frontOuter); ok {
		return idx, p, true
	}
	if idx, p, ok := scan(sq.frontInner); ok {
		return idx, p, true
	}

	if !sq.middle.IsEmpty() {
		extAcc := acc
		slot, through, found := sq.middle.SearchBy(func(p pairT[T]) bool { return pred(alg.Combine(extAcc, p.Inner)) })
		if found {
			leaf, err := sq.middle.At(slot)
			assert(err == nil, "SearchBy: middle.At failed for a slot middle.SearchBy just reported")
			// through also covers the found chunk; fold the chunks before it
			// separately so the scan below starts from the right prefix.
			before := through.Count - leaf.chunk.Size()
			if before > 0 {
				_, prev, _ := sq.middle.SearchBy(func(p pairT[T]) bool { return p.Count >= before })
				acc = alg.Combine(extAcc, prev.Inner)
			}
			for i := 0; i < leaf.chunk.Size(); i++ {
				item, err := leaf.chunk.At(i)
				assert(err == nil, "SearchBy: chunk At failed within its own size")
				next := alg.Combine(acc, sq.cfg.Measure.Of(item))
				if pred(next) {
					return globalIndex + before + i, next, true
				}
				acc = next
			}
		}
		acc = alg.Combine(extAcc, sq.middle.Measure().Inner)
		globalIndex += sq.middle.Measure().Count
	}

	if idx, p, ok := scan(sq.backInner); ok {
		return idx, p, true
	}
	if idx, p, ok := scan(sq.backOuter); ok {
		return idx, p, true
	}
	return globalIndex, acc, false
}
