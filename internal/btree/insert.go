package btree

// Insert adds key to the set. Re-inserting an existing key is a silent
// no-op (idempotent), per spec.
func (t *Tree) Insert(key int32) {
	leaf := t.findLeaf(key)
	idx := leaf.store.LowerBound(key)
	if idx < leaf.store.Len() && leaf.store.KeyAt(idx) == key {
		return
	}
	leaf.store.InsertAt(idx, key, nil)
	if leaf.store.Len() > t.maxKeys {
		t.splitLeaf(leaf)
		return
	}
	if idx == 0 {
		t.noteMinChanged(leaf)
	}
}

// splitLeaf handles a one-past-limit leaf overflow: materialize the keys,
// clear both stores, redistribute ceil(total/2) into the left half, and
// splice the new leaf into the leaf chain.
func (t *Tree) splitLeaf(left *node) {
	T().Debugf("splitting leaf with %d keys", left.store.Len())
	total := left.store.Len()
	keys := make([]int32, total)
	for i := 0; i < total; i++ {
		keys[i] = left.store.KeyAt(i)
	}
	leftSz := (total + 1) / 2 // ceil(total/2)

	left.store.Clear()
	for i := 0; i < leftSz; i++ {
		left.store.InsertAt(i, keys[i], nil)
	}

	right := t.newLeaf()
	for i := leftSz; i < total; i++ {
		right.store.InsertAt(right.store.Len(), keys[i], nil)
	}
	right.next = left.next
	left.next = right
	right.parent = left.parent

	separator := keys[leftSz]
	t.insertIntoParent(left, separator, right)
}

// insertIntoParent links a freshly split right sibling into left's
// parent, allocating a new root if left had none, and recursing into
// internal split if the parent itself overflows.
func (t *Tree) insertIntoParent(left *node, separator int32, right *node) {
	p := left.parent
	if p == nil {
		newRoot := t.newInternal()
		newRoot.child0 = left
		newRoot.store.InsertAt(0, separator, right)
		left.parent = newRoot
		right.parent = newRoot
		t.root = newRoot
		return
	}
	j := t.childIndex(p, left)
	p.store.InsertAt(j, separator, right)
	right.parent = p
	if p.store.Len() > t.maxKeys {
		t.splitInternal(p)
	}
}

// splitInternal handles a one-past-limit internal-node overflow using
// copy-up separators: the promoted key is a copy of the new right
// subtree's minimum, found by descending its child0 chain, so every key
// remains discoverable in a leaf even after the split.
func (t *Tree) splitInternal(left *node) {
	T().Debugf("splitting internal node with %d keys", left.store.Len())
	k := left.store.Len() // == M
	keys := make([]int32, k)
	children := make([]*node, k+1)
	children[0] = left.child0
	for i := 0; i < k; i++ {
		keys[i] = left.store.KeyAt(i)
		children[i+1] = left.store.ValAt(i).(*node)
	}

	leftChildren := (k + 2) / 2 // ceil((k+1)/2)

	left.store.Clear()
	left.child0 = children[0]
	left.child0.parent = left
	for i := 1; i < leftChildren; i++ {
		left.store.InsertAt(i-1, keys[i-1], children[i])
		children[i].parent = left
	}

	right := t.newInternal()
	right.child0 = children[leftChildren]
	right.child0.parent = right
	for i := leftChildren + 1; i <= k; i++ {
		right.store.InsertAt(right.store.Len(), keys[i-1], children[i])
		children[i].parent = right
	}
	right.parent = left.parent

	separator := t.minKey(right.child0)
	t.insertIntoParent(left, separator, right)
}
