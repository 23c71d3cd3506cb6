package dasl

// Variant selects which of five insert policies the engine runs. Modeled
// as a single tagged enum switched on inside the insertion engine
// (insert.go) rather than as runtime polymorphism over an interface:
// Insert sends FullHeightArray to its own non-cascading path, and the
// other four share all but one decision (what insertAt does when the
// target node is full), so a switch on a tag is the idiomatic fit.
type Variant int

const (
	// UnevenSplit peels off as few as one key into a new sibling when a
	// node overflows, favoring high average utilization.
	UnevenSplit Variant = iota
	// EvenSplit always splits a full node down the middle, favoring
	// tighter worst-case utilization bounds over usplit's average case.
	EvenSplit
	// FullHeightArray builds a node column bottom-up at insert time using
	// a geometric height draw, without cascading promotions. The draw is
	// truncated at the first level where the key is absorbed into an
	// existing node instead of leading a fresh one. See insertArray.
	FullHeightArray
	// RaiseOnly avoids splitting a full target whenever the incoming key
	// sorts after everything already in it: the key becomes a brand-new
	// singleton sibling, promoted exactly like usplit's own "last slot"
	// shortcut. When the key instead belongs inside the full node's
	// existing range, a bare append would desort the level (the node's
	// last key would no longer be less than the new sibling's), so that
	// case falls back to splitNodeHalves like UnevenSplit. In practice
	// this makes RaiseOnly a strict subset of UnevenSplit's split sites.
	RaiseOnly
	// SearchOnly shares UnevenSplit's insertion semantics; it exists as a
	// distinct target purely to benchmark the search path under an
	// identical resulting tree shape.
	SearchOnly
)

func (v Variant) String() string {
	switch v {
	case UnevenSplit:
		return "uneven-split"
	case EvenSplit:
		return "even-split"
	case FullHeightArray:
		return "full-height-array"
	case RaiseOnly:
		return "raise-only"
	case SearchOnly:
		return "search-only"
	default:
		return "unknown"
	}
}

// Option configures an Index at construction time.
type Option func(*Index)

// WithVariant selects the insertion policy. The default is UnevenSplit.
func WithVariant(v Variant) Option {
	return func(idx *Index) { idx.variant = v }
}

// WithSeed fixes the seed of the generator insertArray uses for its
// geometric height draws, keeping the core deterministic under test. The
// default seed is 1.
func WithSeed(seed int64) Option {
	return func(idx *Index) { idx.seed = seed }
}
