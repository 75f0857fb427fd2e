// Package obtree implements an in-memory ordered set of int32 keys backed
// by a B+ tree, with a swappable node-store backend selected at
// construction time.
package obtree

import (
	"github.com/gophertree/obtree/internal/btree"
	"github.com/gophertree/obtree/internal/store"
)

// Backend selects the node-store implementation a Tree's nodes use to
// hold their key/value pairs.
type Backend int

const (
	// BackendArray stores each node's entries in a contiguous slice,
	// searched with binary search. This is the default and, per the
	// benchmark driver, the fastest of the three under most workloads.
	BackendArray Backend = iota
	// BackendLinked stores each node's entries as a singly linked list,
	// searched linearly.
	BackendLinked
	// BackendSkipList mirrors a contiguous array with a probabilistic
	// skip list used only to answer LowerBound queries; every mutation
	// rebuilds the skip list from the array, so it exists to measure
	// index-maintenance overhead rather than to outperform the array.
	BackendSkipList
)

func (b Backend) storeKind() store.Kind {
	switch b {
	case BackendLinked:
		return store.Linked
	case BackendSkipList:
		return store.SkipList
	default:
		return store.Array
	}
}

func (b Backend) String() string { return b.storeKind().String() }

// Tree is an ordered set of int32 keys.
type Tree struct {
	impl *btree.Tree
}

// New creates an empty Tree of the given order (the maximum number of
// children an internal node may have) using the given backend. Orders
// below the algorithm's minimum are silently raised to it.
func New(order int, backend Backend) *Tree {
	return &Tree{impl: btree.New(order, backend.storeKind())}
}

// Close releases the tree's nodes. The Tree must not be used afterward.
func (t *Tree) Close() { t.impl.Close() }

// Insert adds key to the set. Inserting a key already present is a
// no-op.
func (t *Tree) Insert(key int32) { t.impl.Insert(key) }

// Delete removes key from the set. Deleting an absent key is a no-op.
func (t *Tree) Delete(key int32) { t.impl.Delete(key) }

// Search reports whether key is a member of the set.
func (t *Tree) Search(key int32) bool { return t.impl.Search(key) }

// Height returns the number of node levels from the root to a leaf,
// inclusive. An empty tree has height 1.
func (t *Tree) Height() int { return t.impl.Height() }

// Check walks the whole tree and returns an error describing the first
// structural invariant violation found, or nil if the tree is
// well-formed. It is meant for tests and the benchmark driver's
// --check flag, not the hot path.
func (t *Tree) Check() error { return t.impl.Check() }
