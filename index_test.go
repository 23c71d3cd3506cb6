package dasl

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════
// INDEX CONSTRUCTION AND DIAGNOSTICS TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestNew_Defaults(t *testing.T) {
	idx := New()

	if idx.Variant() != UnevenSplit {
		t.Errorf("Variant() = %v, want UnevenSplit", idx.Variant())
	}
	if idx.MaxHeightReached() != 1 {
		t.Errorf("MaxHeightReached() = %d, want 1", idx.MaxHeightReached())
	}
	if idx.SplitCount() != 0 {
		t.Errorf("SplitCount() = %d, want 0", idx.SplitCount())
	}
	if idx.ShiftCount() != 0 {
		t.Errorf("ShiftCount() = %d, want 0", idx.ShiftCount())
	}
}

func TestNew_Options(t *testing.T) {
	idx := New(WithVariant(EvenSplit), WithSeed(42))

	if idx.Variant() != EvenSplit {
		t.Errorf("Variant() = %v, want EvenSplit", idx.Variant())
	}
	if idx.seed != 42 {
		t.Errorf("seed = %d, want 42", idx.seed)
	}
}

func TestVariant_String(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{UnevenSplit, "uneven-split"},
		{EvenSplit, "even-split"},
		{FullHeightArray, "full-height-array"},
		{RaiseOnly, "raise-only"},
		{SearchOnly, "search-only"},
		{Variant(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnapshot_MatchesInsertedKeys(t *testing.T) {
	idx := New()
	want := []uint64{5, 1, 9, 3, 7}
	for _, k := range want {
		idx.Insert(k)
	}

	bm := idx.Snapshot()
	if got := bm.GetCardinality(); got != uint64(len(want)) {
		t.Fatalf("Snapshot() cardinality = %d, want %d", got, len(want))
	}
	for _, k := range want {
		if !bm.Contains(k) {
			t.Errorf("Snapshot() missing key %d", k)
		}
	}
}

func TestUtilization_VisitsEveryNode(t *testing.T) {
	idx := New()
	for i := uint64(1); i <= 40; i++ {
		idx.Insert(i)
	}

	visited := 0
	idx.Utilization(func(level int, fillRatio float64) {
		visited++
		if fillRatio <= 0 || fillRatio > 1 {
			t.Errorf("fillRatio out of range at level %d: %v", level, fillRatio)
		}
	})
	if visited == 0 {
		t.Error("Utilization visited no nodes after 40 inserts")
	}
}
