package dasl

// ═══════════════════════════════════════════════════════════════════════════════
// DESCENT: The Core Search Path
// ═══════════════════════════════════════════════════════════════════════════════
// descend walks from the top level down to level 0, recording at each
// level the predecessor — the node whose leader (slot 0) is the greatest
// key <= target at that level. This predecessor array is exactly what
// Insert needs to splice in new nodes and what Contains/Scan need to find
// the right starting point — one predecessor per level of a packed node,
// the natural generalization of the single predecessor a classic
// one-key-per-node skip list keeps per tower level.
// ═══════════════════════════════════════════════════════════════════════════════

// descend returns, for every level 0..MaxHeight-1, the node whose slot-0
// is the greatest key <= target at that level (or the level's head, if no
// such key exists). Levels at or above idx.maxHeight are necessarily
// still empty, so they're seeded with their own head up front rather than
// walked — callers that grow the index mid-insert (insertArray drawing a
// height taller than anything seen so far) still get a correct prev[l]
// for every level, not a stale zero value.
func (idx *Index) descend(target uint64) [MaxHeight]nodeID {
	var prev [MaxHeight]nodeID
	for l := 0; l < MaxHeight; l++ {
		prev[l] = idx.heads[l]
	}
	x := idx.heads[idx.maxHeight-1]

	for l := idx.maxHeight - 1; l >= 0; l-- {
		for {
			fwd := idx.n(x).forward
			if fwd != nilID && idx.n(fwd).keys[0] <= target {
				x = fwd
				continue
			}
			break
		}
		prev[l] = x

		if l > 0 {
			if x == idx.heads[l] {
				x = idx.heads[l-1]
				continue
			}
			nd := idx.n(x)
			i := search(nd, target)
			if i < 0 {
				// Can't happen given x.keys[0] <= target already holds
				// from the advance above, but fall back to the head
				// rather than dereference a bogus slot.
				x = idx.heads[l-1]
				continue
			}
			x = nd.next[i]
		}
	}
	return prev
}
