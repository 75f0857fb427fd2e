package btree

import "github.com/gophertree/obtree/internal/store"

// Tree is a mutable B+ tree set over int32 keys. The empty tree is a
// single empty leaf; root is never nil.
type Tree struct {
	kind    store.Kind
	order   int // M
	maxKeys int // M - 1
	root    *node
}

// New creates an empty tree of the given order and node-store backend.
// order is clamped up to 3.
func New(order int, kind store.Kind) *Tree {
	order = normalizeOrder(order)
	t := &Tree{kind: kind, order: order, maxKeys: order - 1}
	t.root = newLeaf(kind, order)
	return t
}

// Close releases the tree's root reference. Nodes and stores are owned
// exclusively by the tree and become garbage once unreferenced; there is
// no explicit backend teardown to perform beyond dropping the root.
func (t *Tree) Close() {
	t.root = nil
}

// Height reports the number of nodes from root to any leaf, inclusive.
// All leaves are equidepth, so following child0 downward suffices.
func (t *Tree) Height() int {
	h := 1
	n := t.root
	for !n.isLeaf {
		h++
		n = n.child0
	}
	return h
}

func (t *Tree) newLeaf() *node     { return newLeaf(t.kind, t.order) }
func (t *Tree) newInternal() *node { return newInternal(t.kind, t.order) }

// findLeaf descends from the root to the leaf that would contain key,
// using Rule L: an exact match on a separator descends into the child to
// its right, since the separator equals that child's minimum key.
func (t *Tree) findLeaf(key int32) *node {
	n := t.root
	for !n.isLeaf {
		idx := n.store.LowerBound(key)
		if idx < n.store.Len() && n.store.KeyAt(idx) == key {
			idx++ // Rule L: shift past an exact separator match
		}
		if idx == 0 {
			n = n.child0
		} else {
			n = n.store.ValAt(idx - 1).(*node)
		}
	}
	return n
}

// childIndex returns x's index among p's children: 0 if x is p.child0,
// else one more than x's position in p's store.
func (t *Tree) childIndex(p, x *node) int {
	if p.child0 == x {
		return 0
	}
	for i := 0; i < p.store.Len(); i++ {
		if p.store.ValAt(i).(*node) == x {
			return i + 1
		}
	}
	assert(false, "childIndex: child not found in parent")
	return -1
}

// minKey descends child0 links to a leaf and returns its first key: the
// minimum key of the subtree rooted at n.
func (t *Tree) minKey(n *node) int32 {
	for !n.isLeaf {
		n = n.child0
	}
	return n.store.KeyAt(0)
}

// setKeyAt overwrites the key at store position i of n, keeping its
// associated value. The node-store contract has no direct key mutator
// (see DESIGN.md), so this goes through erase+reinsert.
func (t *Tree) setKeyAt(n *node, i int, newKey int32) {
	val := n.store.ValAt(i)
	n.store.EraseAt(i)
	n.store.InsertAt(i, newKey, val)
}

// noteMinChanged propagates a change to x's own minimum key upward: if x
// is its parent's child0, the parent's own minimum changed too (its
// separator, if any, lives one level further up), so the walk continues.
// It stops at the first ancestor where x is not child0 and rewrites that
// ancestor's separator, or at the root.
//
// spec.md describes only the single-hop case (a leaf that is not its
// parent's child0); this generalizes it because the copy-up invariant is
// local to every internal node's own children, not just to leaves — see
// DESIGN.md.
func (t *Tree) noteMinChanged(x *node) {
	for {
		p := x.parent
		if p == nil {
			return
		}
		if p.child0 == x {
			x = p
			continue
		}
		j := t.childIndex(p, x)
		t.setKeyAt(p, j-1, t.minKey(x))
		return
	}
}
