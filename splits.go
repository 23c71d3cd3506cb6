package dasl

// ═══════════════════════════════════════════════════════════════════════════════
// SPLIT POLICIES
// ═══════════════════════════════════════════════════════════════════════════════
// These run when the insertion target is a full real node: it already
// has ArrSize keys and descent guarantees p.key > target.keys[0], so a split
// (or, for RaiseOnly, an append standing in for one) always produces a
// new leader strictly greater than target's own, which is why none of
// these three ever call repairLeader — target's own slot 0 never moves.
// ═══════════════════════════════════════════════════════════════════════════════

// insertUnevenSplit: if the key sorts after everything already in
// target, it becomes a lone new sibling rather than forcing a half/half
// split. Otherwise target splits in half and the key lands on whichever
// side its value belongs.
func (idx *Index) insertUnevenSplit(level int, targetID nodeID, p promotion) promotion {
	target := idx.n(targetID)
	i := search(target, p.key)
	idx.growHeightIfNeeded(level)

	if i == ArrSize-1 {
		newID := idx.appendNode(p.key, p.child, targetID)
		idx.splitCount++
		return promotion{valid: true, key: p.key, child: newID}
	}

	siblingID := idx.alloc()
	idx.splitNodeHalves(targetID, siblingID)
	idx.splitCount++

	if i < ArrSize/2 {
		idx.insertIntoNodeWithRoom(targetID, p.key, p.child)
	} else {
		idx.insertIntoNodeWithRoom(siblingID, p.key, p.child)
	}
	sibling := idx.n(siblingID)
	return promotion{valid: true, key: sibling.keys[0], child: siblingID}
}

// insertEvenSplit: target always splits exactly down the middle, and the
// incoming key then lands in whichever half its value belongs to,
// favoring a tighter worst-case utilization bound over
// insertUnevenSplit's better average case.
func (idx *Index) insertEvenSplit(level int, targetID nodeID, p promotion) promotion {
	idx.growHeightIfNeeded(level)
	siblingID := idx.alloc()
	idx.splitNodeHalves(targetID, siblingID)
	idx.splitCount++

	sibling := idx.n(siblingID)
	if p.key < sibling.keys[0] {
		idx.insertIntoNodeWithRoom(targetID, p.key, p.child)
	} else {
		idx.insertIntoNodeWithRoom(siblingID, p.key, p.child)
	}
	return promotion{valid: true, key: sibling.keys[0], child: siblingID}
}

// insertRaiseOnly implements the RaiseOnly variant (see variant.go):
// when the incoming key sorts after everything in target, it becomes a
// lone appended sibling with no split at all. Otherwise a bare append
// would desort the level, so it falls back to insertUnevenSplit's split
// behavior.
func (idx *Index) insertRaiseOnly(level int, targetID nodeID, p promotion) promotion {
	target := idx.n(targetID)
	i := search(target, p.key)
	if i == ArrSize-1 {
		idx.growHeightIfNeeded(level)
		newID := idx.appendNode(p.key, p.child, targetID)
		return promotion{valid: true, key: p.key, child: newID}
	}
	return idx.insertUnevenSplit(level, targetID, p)
}
