package btree

// At returns the item at item-position index.
func (t *Tree[P, T]) At(index int) (P, error) {
	var zero P
	if t.root == nil || index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfBounds
	}
	return t.atNode(t.root, t.height, index)
}

func (t *Tree[P, T]) atNode(n treeNode[P, T], height int, index int) (P, error) {
	var zero P
	assert(n != nil, "atNode called with nil node")
	if height == 1 {
		leaf := n.(*leafNode[P, T])
		if index < 0 || index >= len(leaf.items) {
			return zero, ErrIndexOutOfBounds
		}
		return leaf.items[index], nil
	}
	inner := n.(*innerNode[P, T])
	remaining := index
	for _, child := range inner.children {
		count := child.Count()
		if remaining < count {
			return t.atNode(child, height-1, remaining)
		}
		remaining -= count
	}
	return zero, ErrIndexOutOfBounds
}

// Set overwrites the item at item-position index and refreshes every
// measurement cache on the path from the root down to it.
func (t *Tree[P, T]) Set(index int, item P) error {
	if t.root == nil || index < 0 || index >= t.Len() {
		return ErrIndexOutOfBounds
	}
	return t.setNode(t.root, t.height, index, item)
}

func (t *Tree[P, T]) setNode(n treeNode[P, T], height int, index int, item P) error {
	assert(n != nil, "setNode called with nil node")
	if height == 1 {
		leaf := n.(*leafNode[P, T])
		if index < 0 || index >= len(leaf.items) {
			return ErrIndexOutOfBounds
		}
		leaf.items[index] = item
		t.recomputeLeaf(leaf)
		return nil
	}
	inner := n.(*innerNode[P, T])
	remaining := index
	for _, child := range inner.children {
		count := child.Count()
		if remaining < count {
			if err := t.setNode(child, height-1, remaining, item); err != nil {
				return err
			}
			t.recomputeInner(inner)
			return nil
		}
		remaining -= count
	}
	return ErrIndexOutOfBounds
}

// ForEach walks leaf items in order, stopping early if fn returns false.
func (t *Tree[P, T]) ForEach(fn func(item P) bool) {
	if t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[P, T]) forEachNode(n treeNode[P, T], fn func(item P) bool) bool {
	switch n := n.(type) {
	case *leafNode[P, T]:
		for _, item := range n.items {
			if !fn(item) {
				return false
			}
		}
		return true
	case *innerNode[P, T]:
		for _, child := range n.children {
			if !t.forEachNode(child, fn) {
				return false
			}
		}
		return true
	default:
		panic("btree: unknown node type")
	}
}
