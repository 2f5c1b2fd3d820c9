package btree

// SearchBy descends the tree along a monotone predicate over the running
// prefix measurement: pred is assumed false on the identity and, once true,
// true for every extension of the prefix. SearchBy returns the index of the
// first item at which pred first becomes true, plus the prefix measurement
// through that item. found is false if pred never becomes true, in which
// case index is Len() and prefix is the measurement of the whole tree.
func (t *Tree[P, T]) SearchBy(pred func(prefix T) bool) (index int, prefix T, found bool) {
	if t.root == nil {
		return 0, t.cfg.Algebra.Identity(), false
	}
	return t.searchNode(t.root, t.height, 0, t.cfg.Algebra.Identity(), pred)
}

func (t *Tree[P, T]) searchNode(n treeNode[P, T], height, startIndex int, acc T, pred func(T) bool) (int, T, bool) {
	assert(n != nil, "searchNode called with nil node")
	if height == 1 {
		leaf := n.(*leafNode[P, T])
		cur := acc
		for i, item := range leaf.items {
			next := t.cfg.Algebra.Combine(cur, item.Measure())
			if pred(next) {
				return startIndex + i, next, true
			}
			cur = next
		}
		return startIndex + len(leaf.items), cur, false
	}
	inner := n.(*innerNode[P, T])
	idx := startIndex
	cur := acc
	for _, child := range inner.children {
		next := t.cfg.Algebra.Combine(cur, child.Measure())
		if pred(next) {
			return t.searchNode(child, height-1, idx, cur, pred)
		}
		cur = next
		idx += child.Count()
	}
	return idx, cur, false
}
