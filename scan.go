package dasl

// Scan returns the n-th key, in ascending order, starting from the
// smallest key >= k (or the last key actually visited, if fewer than n
// keys remain). On an empty index, or when k is past every key, it
// returns 0 — the reserved empty-slot sentinel doubles as "nothing found"
// here since real keys are never zero.
//
// Non-mutating: it reuses descend to find the starting node, then walks
// forward across slots and, at node boundaries, across forward links,
// bounded to n keys and starting mid-list instead of always at the head.
func (idx *Index) Scan(k uint64, n int) uint64 {
	if n <= 0 {
		return 0
	}

	prev := idx.descend(k)
	x := prev[0]
	nd := idx.n(x)

	var curNode nodeID
	var curIdx int

	if x == idx.heads[0] {
		curNode, curIdx = nd.forward, 0
	} else {
		i := search(nd, k)
		if i >= 0 && nd.keys[i] == k {
			curNode, curIdx = x, i
		} else if i+1 < int(nd.n) {
			curNode, curIdx = x, i+1
		} else {
			curNode, curIdx = nd.forward, 0
		}
	}

	var last uint64
	emitted := 0
	for emitted < n && curNode != nilID {
		cn := idx.n(curNode)
		if curIdx >= int(cn.n) {
			curNode, curIdx = cn.forward, 0
			continue
		}
		last = cn.keys[curIdx]
		emitted++
		curIdx++
	}
	return last
}
