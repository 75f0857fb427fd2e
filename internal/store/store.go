// Package store implements the node-store abstraction: a bounded ordered
// sequence of (key, opaque value) pairs. The B+ tree in internal/btree is
// oblivious to which backend it talks to.
package store

import "github.com/npillmayer/schuko/tracing"

// T traces to a global core-tracer, selected under the "obtree" key.
func T() tracing.Trace {
	return tracing.Select("obtree")
}

// Kind selects a node-store backend at tree-creation time.
type Kind int

const (
	// Array is the default backend: two parallel slices, binary search.
	Array Kind = iota
	// Linked is a singly linked list of (key, val) cells.
	Linked
	// SkipList mirrors an authoritative array with a skip list index,
	// rebuilt after every mutation. Included as a benchmark baseline.
	SkipList
)

func (k Kind) String() string {
	switch k {
	case Array:
		return "array"
	case Linked:
		return "linked"
	case SkipList:
		return "skiplist"
	default:
		return "unknown"
	}
}

// Store is the narrow ordered-pair sequence contract shared by every
// backend. i must be in [0, Len()) for positional accessors, and in
// [0, Len()] for InsertAt. Callers guarantee InsertAt keeps the sequence
// strictly ascending by always inserting at LowerBound(key).
type Store interface {
	Len() int
	Cap() int
	Clear()
	KeyAt(i int) int32
	ValAt(i int) any
	SetVal(i int, v any)
	LowerBound(key int32) int
	InsertAt(i int, key int32, val any)
	EraseAt(i int)
	// Split moves the tail of the receiver into right, which must be
	// empty, and returns the first key moved (or 0 if nothing moved).
	Split(right Store) int32
}

// New constructs an empty store of the given backend and capacity.
func New(kind Kind, capacity int) Store {
	switch kind {
	case Linked:
		return newLinkedStore(capacity)
	case SkipList:
		return newSkipStore(capacity)
	default:
		return newArrayStore(capacity)
	}
}
