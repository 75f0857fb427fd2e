package btree

// Search reports whether key is present in the set.
func (t *Tree) Search(key int32) bool {
	leaf := t.findLeaf(key)
	idx := leaf.store.LowerBound(key)
	return idx < leaf.store.Len() && leaf.store.KeyAt(idx) == key
}
