package dasl

// Contains reports whether k has previously been inserted.
//
// Lookup reuses descend, then probes the level-0 predecessor's key array.
// Contains also checks the predecessor's forward node, covering both the
// head case (prev[0] has no keys of its own to probe) and the case where
// k sits exactly at the boundary between two nodes.
func (idx *Index) Contains(k uint64) bool {
	prev := idx.descend(k)
	x := prev[0]
	nd := idx.n(x)

	if x != idx.heads[0] {
		if i := search(nd, k); i >= 0 && nd.keys[i] == k {
			return true
		}
	}

	if nd.forward != nilID {
		fwd := idx.n(nd.forward)
		if fwd.n > 0 && fwd.keys[0] == k {
			return true
		}
	}
	return false
}

// FindPredecessor returns the largest key strictly less than k. It
// returns ErrEmpty on an index with no keys at all, and
// ErrNoPredecessor when k is smaller than (or equal to) every key
// present.
func (idx *Index) FindPredecessor(k uint64) (uint64, error) {
	if idx.n(idx.heads[0]).forward == nilID {
		return 0, ErrEmpty
	}
	if k == 0 {
		return 0, ErrNoPredecessor
	}
	// Descending on k-1 sidesteps the exact-match ambiguity (whether the
	// predecessor is the previous slot in the same node or the last slot
	// of an earlier node) without needing a backward pointer.
	prev := idx.descend(k - 1)
	x := prev[0]
	if x == idx.heads[0] {
		return 0, ErrNoPredecessor
	}
	nd := idx.n(x)
	i := search(nd, k-1)
	if i < 0 {
		return 0, ErrNoPredecessor
	}
	return nd.keys[i], nil
}
