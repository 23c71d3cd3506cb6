package dasl

import "github.com/RoaringBitmap/roaring/roaring64"

// ═══════════════════════════════════════════════════════════════════════════════
// SET ALGEBRA OVER SNAPSHOTS
// ═══════════════════════════════════════════════════════════════════════════════
// SetQuery builds boolean combinations over Index.Snapshot() bitmaps the
// way a full-text engine chains And/Or/Not over per-term postings
// bitmaps, applied here to dasl's own key sets instead of postings
// lists. It exists as a diagnostic/testing convenience (comparing two
// indexes, or an index against an external oracle set) rather than
// anything on the insert/lookup hot path.
// ═══════════════════════════════════════════════════════════════════════════════

// SetQuery builds a boolean combination of roaring64 bitmaps, typically
// Index.Snapshot() results, via left-to-right fluent chaining.
type SetQuery struct {
	acc *roaring64.Bitmap
}

// NewSetQuery seeds a SetQuery with a copy of bm; the original is left
// untouched.
func NewSetQuery(bm *roaring64.Bitmap) *SetQuery {
	return &SetQuery{acc: bm.Clone()}
}

// And intersects the running result with other.
func (q *SetQuery) And(other *roaring64.Bitmap) *SetQuery {
	q.acc.And(other)
	return q
}

// Or unions the running result with other.
func (q *SetQuery) Or(other *roaring64.Bitmap) *SetQuery {
	q.acc.Or(other)
	return q
}

// AndNot removes every key in other from the running result.
func (q *SetQuery) AndNot(other *roaring64.Bitmap) *SetQuery {
	q.acc.AndNot(other)
	return q
}

// Result returns the bitmap built up so far. Safe to keep chaining after
// calling Result; the returned bitmap is the same one the query mutates.
func (q *SetQuery) Result() *roaring64.Bitmap {
	return q.acc
}

// SymmetricDiff returns the keys present in exactly one of a and b —
// used by the property tests to compare an Index.Snapshot() against an
// independently-maintained oracle set after a randomized insert sequence.
func SymmetricDiff(a, b *roaring64.Bitmap) *roaring64.Bitmap {
	union := a.Clone()
	union.Or(b)
	inter := a.Clone()
	inter.And(b)
	union.AndNot(inter)
	return union
}
