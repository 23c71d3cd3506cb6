package dasl

import (
	"log/slog"
	"math/rand"

	"github.com/RoaringBitmap/roaring/roaring64"
)

// ═══════════════════════════════════════════════════════════════════════════════
// INDEX: The Main Data Structure
// ═══════════════════════════════════════════════════════════════════════════════
// Index owns the node arena and one sentinel head per level. head[l] is
// itself a node (with an unused key array) whose forward pointer is the
// first real node at level l — unifying heads and real nodes under the
// same struct means descent, split, and repair code never special-cases
// "is this a head" beyond a single identity comparison.
// ═══════════════════════════════════════════════════════════════════════════════
type Index struct {
	arena []*node
	heads [MaxHeight]nodeID

	maxHeight int
	variant   Variant
	seed      int64
	rng       *rand.Rand

	splitCount uint64
	shiftCount uint64
}

// New creates an empty Index. By default it uses the uneven-split policy;
// pass WithVariant to pick another, and WithSeed to fix the
// FullHeightArray variant's geometric height draws (see insertArray).
func New(opts ...Option) *Index {
	idx := &Index{
		maxHeight: 1,
		variant:   UnevenSplit,
		seed:      1,
	}
	for _, opt := range opts {
		opt(idx)
	}
	idx.rng = rand.New(rand.NewSource(idx.seed))

	for l := 0; l < MaxHeight; l++ {
		idx.heads[l] = idx.alloc()
	}

	slog.Debug("dasl index created", slog.String("variant", idx.variant.String()))
	return idx
}

// alloc appends a fresh node to the arena and returns its id.
func (idx *Index) alloc() nodeID {
	idx.arena = append(idx.arena, newNode())
	return nodeID(len(idx.arena) - 1)
}

// n dereferences a nodeID. Never valid to call with nilID.
func (idx *Index) n(id nodeID) *node {
	return idx.arena[id]
}

// MaxHeightReached returns the current highest level containing a real
// node.
func (idx *Index) MaxHeightReached() int { return idx.maxHeight }

// SplitCount returns the number of node splits performed so far.
func (idx *Index) SplitCount() uint64 { return idx.splitCount }

// ShiftCount returns the number of key slots shifted so far, summed
// across all in-node insertions.
func (idx *Index) ShiftCount() uint64 { return idx.shiftCount }

// Variant returns the insertion policy this Index was built with.
func (idx *Index) Variant() Variant { return idx.variant }

// growHeightIfNeeded bumps maxHeight to cover level l, capped at
// MaxHeight.
func (idx *Index) growHeightIfNeeded(l int) {
	if l+1 > idx.maxHeight && l+1 <= MaxHeight {
		idx.maxHeight = l + 1
		slog.Debug("dasl max height grown", slog.Int("height", idx.maxHeight))
	}
}

// Utilization calls fn once per node, top level first, with the node's
// fill ratio n/ArrSize. A diagnostic reader only — never called on the
// insert/lookup hot path.
func (idx *Index) Utilization(fn func(level int, fillRatio float64)) {
	for l := idx.maxHeight - 1; l >= 0; l-- {
		for cur := idx.n(idx.heads[l]).forward; cur != nilID; cur = idx.n(cur).forward {
			fn(l, float64(idx.n(cur).n)/float64(ArrSize))
		}
	}
}

// Snapshot returns a roaring64.Bitmap of every key currently present at
// level 0. It is a read-only diagnostic, built the way a full-text search
// index builds a per-term postings bitmap — one bitmap capturing a whole
// set for cheap downstream set algebra (see setops.go), here over the
// index's own key set rather than document ids.
func (idx *Index) Snapshot() *roaring64.Bitmap {
	bm := roaring64.New()
	for cur := idx.n(idx.heads[0]).forward; cur != nilID; cur = idx.n(cur).forward {
		nd := idx.n(cur)
		for i := 0; i < int(nd.n); i++ {
			bm.Add(nd.keys[i])
		}
	}
	return bm
}
