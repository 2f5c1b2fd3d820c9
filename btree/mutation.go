package btree

// insertAt returns a new slice holding src with values inserted at idx.
func insertAt[E any](src []E, idx int, values ...E) []E {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	out := make([]E, 0, len(src)+len(values))
	out = append(out, src[:idx]...)
	out = append(out, values...)
	out = append(out, src[idx:]...)
	return out
}

// removeRange removes the half-open interval [from,to) from a slice.
func removeRange[E any](src []E, from, to int) []E {
	assert(from >= 0 && from <= to && to <= len(src), "removeRange bounds invalid")
	out := make([]E, 0, len(src)-(to-from))
	out = append(out, src[:from]...)
	out = append(out, src[to:]...)
	return out
}

// InsertAt inserts item at item-position index, 0 <= index <= Len().
func (t *Tree[P, T]) InsertAt(index int, item P) error {
	if index < 0 || index > t.Len() {
		return ErrIndexOutOfBounds
	}
	if t.root == nil {
		t.root = t.makeLeaf([]P{item})
		t.height = 1
		return nil
	}
	left, right, err := t.insertRecursive(t.root, t.height, index, item)
	if err != nil {
		return err
	}
	if right == nil {
		t.root = left
		return nil
	}
	t.root = t.makeInner([]treeNode[P, T]{left, right})
	t.height++
	return nil
}

// insertRecursive inserts item at local index within subtree n and returns
// either a single updated node (no split) or two siblings (split, to be
// joined by the caller one level up).
func (t *Tree[P, T]) insertRecursive(n treeNode[P, T], height, index int, item P) (treeNode[P, T], treeNode[P, T], error) {
	assert(n != nil, "insertRecursive called with nil node")
	if height == 1 {
		leaf := n.(*leafNode[P, T])
		leaf.items = insertAt(leaf.items, index, item)
		t.recomputeLeaf(leaf)
		if len(leaf.items) <= t.cfg.Degree {
			return leaf, nil, nil
		}
		return t.splitLeaf(leaf)
	}
	inner := n.(*innerNode[P, T])
	slot, localIndex, err := t.locateChildForInsert(inner, index)
	if err != nil {
		return nil, nil, err
	}
	left, right, err := t.insertRecursive(inner.children[slot], height-1, localIndex, item)
	if err != nil {
		return nil, nil, err
	}
	if right == nil {
		inner.children[slot] = left
		t.recomputeInner(inner)
		return inner, nil, nil
	}
	inner.children = insertAt(removeRange(inner.children, slot, slot+1), slot, left, right)
	t.recomputeInner(inner)
	if len(inner.children) <= t.cfg.Degree {
		return inner, nil, nil
	}
	return t.splitInner(inner)
}

// locateChildForInsert finds the child that should receive an insert at
// index. An index landing exactly on a child boundary descends into the
// following child, except at the last child, which also accepts insertion
// at its own end (so PushBack always lands in the rightmost leaf).
func (t *Tree[P, T]) locateChildForInsert(inner *innerNode[P, T], index int) (slot, localIndex int, err error) {
	remaining := index
	for i, child := range inner.children {
		n := child.Count()
		if remaining < n || i == len(inner.children)-1 {
			return i, remaining, nil
		}
		remaining -= n
	}
	return 0, 0, ErrIndexOutOfBounds
}

func (t *Tree[P, T]) splitLeaf(leaf *leafNode[P, T]) (*leafNode[P, T], *leafNode[P, T], error) {
	n := len(leaf.items)
	mid := n / 2
	right := t.makeLeaf(append([]P(nil), leaf.items[mid:]...))
	leaf.items = leaf.items[:mid]
	t.recomputeLeaf(leaf)
	return leaf, right, nil
}

func (t *Tree[P, T]) splitInner(inner *innerNode[P, T]) (*innerNode[P, T], *innerNode[P, T], error) {
	n := len(inner.children)
	mid := n / 2
	right := t.makeInner(append([]treeNode[P, T](nil), inner.children[mid:]...))
	inner.children = inner.children[:mid]
	t.recomputeInner(inner)
	return inner, right, nil
}

// DeleteAt removes and returns the item at item-position index.
func (t *Tree[P, T]) DeleteAt(index int) (P, error) {
	var zero P
	if index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfBounds
	}
	item, _, err := t.deleteRecursive(t.root, t.height, index, true)
	if err != nil {
		return zero, err
	}
	t.normalizeRoot()
	return item, nil
}

// deleteRecursive removes the item at local index within subtree n,
// rebalancing n's children if a deletion left one of them underfull.
// isRoot suppresses the min-occupancy requirement for n itself.
func (t *Tree[P, T]) deleteRecursive(n treeNode[P, T], height, index int, isRoot bool) (P, treeNode[P, T], error) {
	var zero P
	assert(n != nil, "deleteRecursive called with nil node")
	if height == 1 {
		leaf := n.(*leafNode[P, T])
		if index < 0 || index >= len(leaf.items) {
			return zero, nil, ErrIndexOutOfBounds
		}
		item := leaf.items[index]
		leaf.items = removeRange(leaf.items, index, index+1)
		t.recomputeLeaf(leaf)
		return item, leaf, nil
	}
	inner := n.(*innerNode[P, T])
	slot, localIndex, err := t.locateChildForDelete(inner, index)
	if err != nil {
		return zero, nil, err
	}
	item, _, err := t.deleteRecursive(inner.children[slot], height-1, localIndex, false)
	if err != nil {
		return zero, nil, err
	}
	t.rebalanceChildAfterDelete(inner, slot, height-1)
	t.recomputeInner(inner)
	return item, inner, nil
}

func (t *Tree[P, T]) locateChildForDelete(inner *innerNode[P, T], index int) (slot, localIndex int, err error) {
	remaining := index
	for i, child := range inner.children {
		n := child.Count()
		if remaining < n {
			return i, remaining, nil
		}
		remaining -= n
	}
	return 0, 0, ErrIndexOutOfBounds
}

// rebalanceChildAfterDelete restores min occupancy on inner.children[slot]
// (which a deletion may have just underflowed) by borrowing from a sibling,
// or merging with one when no sibling has anything to spare. Mirrors the
// borrow-then-merge policy order of a classic B-tree delete.
func (t *Tree[P, T]) rebalanceChildAfterDelete(parent *innerNode[P, T], slot int, childHeight int) {
	child := parent.children[slot]
	if occupancy[P, T](child) >= t.cfg.minDegree() {
		return
	}
	if childHeight == 1 {
		t.rebalanceLeafChild(parent, slot)
		return
	}
	t.rebalanceInnerChild(parent, slot)
}

func occupancy[P Measured[T], T any](n treeNode[P, T]) int {
	switch n := n.(type) {
	case *leafNode[P, T]:
		return len(n.items)
	case *innerNode[P, T]:
		return len(n.children)
	default:
		panic("btree: unknown node type")
	}
}

func (t *Tree[P, T]) rebalanceLeafChild(parent *innerNode[P, T], slot int) {
	leaf := parent.children[slot].(*leafNode[P, T])
	minOccupancy := t.cfg.minDegree()
	if slot > 0 {
		leftSib := parent.children[slot-1].(*leafNode[P, T])
		if len(leftSib.items) > minOccupancy {
			borrowed := leftSib.items[len(leftSib.items)-1]
			leftSib.items = leftSib.items[:len(leftSib.items)-1]
			leaf.items = insertAt(leaf.items, 0, borrowed)
			t.recomputeLeaf(leftSib)
			t.recomputeLeaf(leaf)
			return
		}
	}
	if slot < len(parent.children)-1 {
		rightSib := parent.children[slot+1].(*leafNode[P, T])
		if len(rightSib.items) > minOccupancy {
			borrowed := rightSib.items[0]
			rightSib.items = removeRange(rightSib.items, 0, 1)
			leaf.items = append(leaf.items, borrowed)
			t.recomputeLeaf(rightSib)
			t.recomputeLeaf(leaf)
			return
		}
	}
	if slot > 0 {
		leftSib := parent.children[slot-1].(*leafNode[P, T])
		leftSib.items = append(leftSib.items, leaf.items...)
		t.recomputeLeaf(leftSib)
		parent.children = removeRange(parent.children, slot, slot+1)
		return
	}
	rightSib := parent.children[slot+1].(*leafNode[P, T])
	leaf.items = append(leaf.items, rightSib.items...)
	t.recomputeLeaf(leaf)
	parent.children = removeRange(parent.children, slot+1, slot+2)
}

func (t *Tree[P, T]) rebalanceInnerChild(parent *innerNode[P, T], slot int) {
	inner := parent.children[slot].(*innerNode[P, T])
	minOccupancy := t.cfg.minDegree()
	if slot > 0 {
		leftSib := parent.children[slot-1].(*innerNode[P, T])
		if len(leftSib.children) > minOccupancy {
			borrowed := leftSib.children[len(leftSib.children)-1]
			leftSib.children = leftSib.children[:len(leftSib.children)-1]
			inner.children = insertAt(inner.children, 0, borrowed)
			t.recomputeInner(leftSib)
			t.recomputeInner(inner)
			return
		}
	}
	if slot < len(parent.children)-1 {
		rightSib := parent.children[slot+1].(*innerNode[P, T])
		if len(rightSib.children) > minOccupancy {
			borrowed := rightSib.children[0]
			rightSib.children = removeRange(rightSib.children, 0, 1)
			inner.children = append(inner.children, borrowed)
			t.recomputeInner(rightSib)
			t.recomputeInner(inner)
			return
		}
	}
	if slot > 0 {
		leftSib := parent.children[slot-1].(*innerNode[P, T])
		leftSib.children = append(leftSib.children, inner.children...)
		t.recomputeInner(leftSib)
		parent.children = removeRange(parent.children, slot, slot+1)
		return
	}
	rightSib := parent.children[slot+1].(*innerNode[P, T])
	inner.children = append(inner.children, rightSib.children...)
	t.recomputeInner(inner)
	parent.children = removeRange(parent.children, slot+1, slot+2)
}

// normalizeRoot collapses a root that has decayed to a single child (or to
// nothing) after a deletion, shrinking the tree's height to match.
func (t *Tree[P, T]) normalizeRoot() {
	if leaf, ok := t.root.(*leafNode[P, T]); ok {
		if len(leaf.items) == 0 {
			t.root = nil
			t.height = 0
		}
		return
	}
	for {
		inner, ok := t.root.(*innerNode[P, T])
		if !ok {
			return
		}
		if len(inner.children) == 0 {
			t.root = nil
			t.height = 0
			return
		}
		if len(inner.children) > 1 {
			return
		}
		t.root = inner.children[0]
		t.height--
	}
}
