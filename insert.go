package dasl

// ═══════════════════════════════════════════════════════════════════════════════
// INSERT: The Insertion Engine
// ═══════════════════════════════════════════════════════════════════════════════
// Insert consumes the single prev[] path produced by one descend call and
// cascades bottom-up, generalizing the way a classic skip list promotes a
// new tower node one level at a time to packed 4-key nodes: a level
// either absorbs the incoming (key, child) pair into an existing node
// with room, splits, or terminates the cascade because the level had
// nothing to promote into. FullHeightArray does not use this cascade at
// all; Insert hands it to insertArray (see insert_array.go).
// Every level above 0 reuses the same prev[] array computed once up
// front rather than re-deriving it per level.
// ═══════════════════════════════════════════════════════════════════════════════

// promotion carries the (key, child) pair a level hands up to the level
// above it. valid is false once a level fully absorbs the pair without
// overflowing, which ends the cascade.
type promotion struct {
	valid bool
	key   uint64
	child nodeID
}

// Insert adds k to the index. Re-inserting a key already present is a
// no-op. Keys must be non-zero: 0 is reserved as the empty-slot
// sentinel.
func (idx *Index) Insert(k uint64) {
	if k == 0 {
		panic("dasl: 0 is reserved as the empty-slot sentinel and cannot be inserted")
	}

	prev := idx.descend(k)
	if idx.isDuplicate(prev, k) {
		return
	}

	if idx.variant == FullHeightArray {
		idx.insertArray(k, prev)
		return
	}

	cur := promotion{valid: true, key: k, child: nilID}
	for level := 0; cur.valid && level < MaxHeight; level++ {
		cur = idx.insertAt(level, prev, cur)
	}
}

// isDuplicate reports whether k is already present, given the prev[]
// path already computed for k. Mirrors Contains' own check: a node's
// own array is checked, and so is its forward neighbor's slot 0, since a
// duplicate submitted for re-insertion can land exactly on a node
// boundary.
func (idx *Index) isDuplicate(prev [MaxHeight]nodeID, k uint64) bool {
	x := prev[0]
	if x == idx.heads[0] {
		return false
	}
	nd := idx.n(x)
	for i := 0; i < int(nd.n); i++ {
		if nd.keys[i] == k {
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

// insertAt absorbs the incoming promotion into level, returning what (if
// anything) must be promoted to level+1. It implements the position
// (head vs. real-node predecessor) by capacity (room vs. full) matrix
// that governs how a level reacts to a new (key, child) pair.
func (idx *Index) insertAt(level int, prev [MaxHeight]nodeID, p promotion) promotion {
	predID := prev[level]

	targetID := predID
	if predID == idx.heads[level] {
		firstID := idx.n(predID).forward
		if firstID == nilID {
			// The level is empty. A single new node seeds it and the
			// cascade always stops here — there is nothing above this
			// node yet for a higher level to reference.
			idx.growHeightIfNeeded(level)
			idx.createSoleNode(level, p.key, p.child)
			return promotion{}
		}
		targetID = firstID
	}

	if level > 0 && idx.nodeHasKey(targetID, p.key) {
		// The promoted leader is already indexed at this level. Happens
		// when a node left half-empty by an earlier split refills and
		// re-raises the same leader its parent recorded the first time
		// around — checked here, before the room/full dispatch, since a
		// full parent must not split over a key it already holds.
		return promotion{}
	}

	if idx.n(targetID).n < ArrSize {
		return idx.insertRoom(level, prev, targetID, p)
	}

	if targetID != predID {
		// The head's first node is full: prepend a singleton rather
		// than splitting it.
		idx.growHeightIfNeeded(level)
		newID := idx.prependNode(level, p.key, p.child, targetID)
		return promotion{valid: true, key: p.key, child: newID}
	}

	// A full real-node predecessor: route to the variant's split policy.
	switch idx.variant {
	case EvenSplit:
		return idx.insertEvenSplit(level, predID, p)
	case RaiseOnly:
		return idx.insertRaiseOnly(level, predID, p)
	default: // UnevenSplit, SearchOnly
		return idx.insertUnevenSplit(level, predID, p)
	}
}

// nodeHasKey scans id's live slots for key.
func (idx *Index) nodeHasKey(id nodeID, key uint64) bool {
	nd := idx.n(id)
	for j := 0; j < int(nd.n); j++ {
		if nd.keys[j] == key {
			return true
		}
	}
	return false
}

// insertRoom handles the common room case, shared by head and
// real-node predecessors: write the key into the target's array, repair
// the parent's leader if the new key became the
// target's own new slot 0, and — if this insertion exactly filled the
// node — raise the node's own leader to the level above instead of
// waiting for it to overflow later.
func (idx *Index) insertRoom(level int, prev [MaxHeight]nodeID, targetID nodeID, p promotion) promotion {
	target := idx.n(targetID)
	i := idx.insertIntoNodeWithRoom(targetID, p.key, p.child)
	if i == -1 {
		idx.repairLeader(prev, level, targetID, p.key)
	}

	if target.n == ArrSize {
		return promotion{valid: true, key: target.keys[0], child: targetID}
	}
	return promotion{}
}

// insertIntoNodeWithRoom inserts key/child into id's array, which must
// have at least one free slot, shifting later keys right as needed. It
// returns the index immediately before the insertion point (-1 if key
// became the new slot 0), the same convention search uses.
func (idx *Index) insertIntoNodeWithRoom(id nodeID, key uint64, child nodeID) int {
	nd := idx.n(id)
	i := search(nd, key)
	pos := i + 1
	for j := int(nd.n); j > pos; j-- {
		nd.keys[j] = nd.keys[j-1]
		nd.next[j] = nd.next[j-1]
		idx.shiftCount++
	}
	nd.keys[pos] = key
	nd.next[pos] = child
	nd.n++
	return i
}

// repairLeader walks prev[level+1:] looking for the slot whose down
// pointer references targetID, and updates it to newLeader — the
// targetID node's new slot-0 key. The walk only continues upward while
// the matched slot is itself slot 0: a change to a non-leading slot
// never needs to be visible above its own level.
//
// The referencing node at each upper level is not always prev[l]
// itself. A slot-0 change only ever happens when the new key landed in
// front of everything the target held, which means the descent for
// that key stopped short of the referencing node (its leader was still
// greater than the key) — so the reference lives in prev[l].forward,
// one node past where the search path ended. Both are checked.
func (idx *Index) repairLeader(prev [MaxHeight]nodeID, level int, targetID nodeID, newLeader uint64) {
	cur := targetID
	for l := level + 1; l < idx.maxHeight; l++ {
		upID := prev[l]
		slot := idx.downSlotOf(upID, cur)
		if slot < 0 {
			if fwd := idx.n(upID).forward; fwd != nilID {
				upID = fwd
				slot = idx.downSlotOf(upID, cur)
			}
		}
		if slot < 0 {
			return
		}
		idx.n(upID).keys[slot] = newLeader
		if slot != 0 {
			return
		}
		cur = upID
	}
}

// downSlotOf returns the index of id's slot whose down pointer is
// child, or -1.
func (idx *Index) downSlotOf(id, child nodeID) int {
	nd := idx.n(id)
	for i := 0; i < int(nd.n); i++ {
		if nd.next[i] == child {
			return i
		}
	}
	return -1
}

// createSoleNode allocates a single-key node and makes it the first real
// node at level, returning its id.
func (idx *Index) createSoleNode(level int, key uint64, child nodeID) nodeID {
	newID := idx.alloc()
	nd := idx.n(newID)
	nd.keys[0] = key
	nd.next[0] = child
	nd.n = 1
	idx.n(idx.heads[level]).forward = newID
	return newID
}

// prependNode allocates a single-key node and links it in front of
// beforeID, as the new first real node at level.
func (idx *Index) prependNode(level int, key uint64, child, beforeID nodeID) nodeID {
	newID := idx.alloc()
	nd := idx.n(newID)
	nd.keys[0] = key
	nd.next[0] = child
	nd.n = 1
	nd.forward = beforeID
	idx.n(idx.heads[level]).forward = newID
	return newID
}

// appendNode allocates a single-key node and links it immediately after
// afterID.
func (idx *Index) appendNode(key uint64, child, afterID nodeID) nodeID {
	after := idx.n(afterID)
	newID := idx.alloc()
	nd := idx.n(newID)
	nd.keys[0] = key
	nd.next[0] = child
	nd.n = 1
	nd.forward = after.forward
	after.forward = newID
	return newID
}

// splitNodeHalves moves the upper ArrSize/2 keys (and down-pointers) of
// targetID into the fresh node siblingID, splicing siblingID in right
// after targetID in the forward chain.
func (idx *Index) splitNodeHalves(targetID, siblingID nodeID) {
	target := idx.n(targetID)
	sibling := idx.n(siblingID)
	half := ArrSize / 2
	for j := 0; j < half; j++ {
		sibling.keys[j] = target.keys[half+j]
		sibling.next[j] = target.next[half+j]
		target.keys[half+j] = 0
		target.next[half+j] = nilID
	}
	sibling.n = uint8(half)
	target.n = uint8(half)
	sibling.forward = target.forward
	target.forward = siblingID
}
