package btree

// SplitAt splits the tree at item-position index into two: the receiver
// keeps [0,index), other holds [index,Len()). SplitAt consumes the receiver
// — its internal nodes are moved (not copied) into the two results, so the
// receiver must not be used again except to be discarded.
func (t *Tree[P, T]) SplitAt(index int) (left *Tree[P, T], right *Tree[P, T], err error) {
	if index < 0 || index > t.Len() {
		return nil, nil, ErrIndexOutOfBounds
	}
	if t.root == nil {
		empty, _ := New[P](t.cfg)
		other, _ := New[P](t.cfg)
		return empty, other, nil
	}
	leftNode, leftHeight, rightNode, rightHeight, err := t.splitNode(t.root, t.height, index)
	if err != nil {
		return nil, nil, err
	}
	left = &Tree[P, T]{cfg: t.cfg, root: leftNode, height: leftHeight}
	right = &Tree[P, T]{cfg: t.cfg, root: rightNode, height: rightHeight}
	t.root = nil
	t.height = 0
	return left, right, nil
}

// splitNode splits subtree n (at the given height) at local index, returning
// the left and right halves each as (node, height); either half may be
// (nil, 0) if it ends up empty.
func (t *Tree[P, T]) splitNode(n treeNode[P, T], height, index int) (treeNode[P, T], int, treeNode[P, T], int, error) {
	assert(n != nil, "splitNode called with nil node")
	if height == 1 {
		leaf := n.(*leafNode[P, T])
		leftItems := leaf.items[:index]
		rightItems := leaf.items[index:]
		var leftNode, rightNode treeNode[P, T]
		var leftHeight, rightHeight int
		if len(leftItems) > 0 {
			leftNode = t.makeLeaf(append([]P(nil), leftItems...))
			leftHeight = 1
		}
		if len(rightItems) > 0 {
			rightNode = t.makeLeaf(append([]P(nil), rightItems...))
			rightHeight = 1
		}
		return leftNode, leftHeight, rightNode, rightHeight, nil
	}
	inner := n.(*innerNode[P, T])
	remaining := index
	for slot, child := range inner.children {
		count := child.Count()
		if remaining == count {
			// Boundary falls exactly between children: no recursion needed.
			leftRun := append([]treeNode[P, T]{}, inner.children[:slot+1]...)
			rightRun := append([]treeNode[P, T]{}, inner.children[slot+1:]...)
			leftNode, leftHeight := t.buildFromNodes(leftRun, height-1)
			rightNode, rightHeight := t.buildFromNodes(rightRun, height-1)
			return leftNode, leftHeight, rightNode, rightHeight, nil
		}
		if remaining < count {
			childLeft, childLeftHeight, childRight, childRightHeight, err := t.splitNode(child, height-1, remaining)
			if err != nil {
				return nil, 0, nil, 0, err
			}
			// The halves of child may be shorter than its siblings, so they
			// are joined to them by concatenation rather than by grouping.
			leftRun, leftRunHeight := t.buildFromNodes(append([]treeNode[P, T]{}, inner.children[:slot]...), height-1)
			leftNode, leftHeight, err := t.concatNodes(leftRun, leftRunHeight, childLeft, childLeftHeight)
			if err != nil {
				return nil, 0, nil, 0, err
			}
			rightRun, rightRunHeight := t.buildFromNodes(append([]treeNode[P, T]{}, inner.children[slot+1:]...), height-1)
			rightNode, rightHeight, err := t.concatNodes(childRight, childRightHeight, rightRun, rightRunHeight)
			if err != nil {
				return nil, 0, nil, 0, err
			}
			return leftNode, leftHeight, rightNode, rightHeight, nil
		}
		remaining -= count
	}
	return nil, 0, nil, 0, ErrIndexOutOfBounds
}
