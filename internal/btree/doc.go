// Package btree implements an in-memory B+ tree over strictly-ascending
// int32 keys, backed by an interchangeable node store (internal/store).
// It is the algorithmic core behind the obtree package: descent, leaf
// split, internal split with copy-up separators, leaf sibling chaining,
// and delete rebalancing via borrow-then-merge.
//
// The tree carries no payload; leaves hold keys only, and an internal
// node's value slots hold child pointers rather than user data.
package btree

import "github.com/npillmayer/schuko/tracing"

// T traces btree package internals under the "obtree" trace key, shared
// with internal/store so both packages report through the same tracer.
func T() tracing.Trace {
	return tracing.Select("obtree")
}

// assert panics on a violated internal invariant. These are programmer
// errors, not user-facing conditions, and are never recovered from.
func assert(cond bool, msg string) {
	if !cond {
		panic("btree: " + msg)
	}
}
