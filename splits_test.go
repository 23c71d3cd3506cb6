package dasl

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════
// SPLIT POLICY TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestEvenSplit_AlwaysSplitsInHalf(t *testing.T) {
	idx := New(WithVariant(EvenSplit))
	for _, k := range []uint64{10, 20, 30, 40} {
		idx.Insert(k)
	}
	// Unlike usplit, esplit splits even when the incoming key sorts
	// after everything in the target (i==ArrSize-1).
	idx.Insert(50)

	if idx.SplitCount() != 1 {
		t.Fatalf("SplitCount() = %d, want 1", idx.SplitCount())
	}

	first := idx.n(idx.heads[0]).forward
	fn := idx.n(first)
	if fn.n != 2 || fn.keys[0] != 10 || fn.keys[1] != 20 {
		t.Errorf("left half = %v (n=%d), want [10 20]", fn.keys, fn.n)
	}
	second := fn.forward
	if second == nilID {
		t.Fatal("no sibling node after split")
	}
	sn := idx.n(second)
	if sn.n != 3 || sn.keys[0] != 30 || sn.keys[1] != 40 || sn.keys[2] != 50 {
		t.Errorf("right half = %v (n=%d), want [30 40 50]", sn.keys, sn.n)
	}

	checkLeaderConsistency(t, idx)
	checkOrderingAndPadding(t, idx)
}

func TestEvenSplit_RoutesKeyToCorrectHalf(t *testing.T) {
	idx := New(WithVariant(EvenSplit))
	for _, k := range []uint64{10, 20, 30, 40} {
		idx.Insert(k)
	}
	idx.Insert(15) // belongs in the left half after an even split

	first := idx.n(idx.heads[0]).forward
	fn := idx.n(first)
	if fn.n != 3 || fn.keys[0] != 10 || fn.keys[1] != 15 || fn.keys[2] != 20 {
		t.Errorf("left half = %v (n=%d), want [10 15 20]", fn.keys, fn.n)
	}
	if !idx.Contains(15) {
		t.Error("Contains(15) = false, want true")
	}
	checkOrderingAndPadding(t, idx)
}

func TestRaiseOnly_AppendsWithoutSplittingAtTail(t *testing.T) {
	idx := New(WithVariant(RaiseOnly))
	for _, k := range []uint64{10, 20, 30, 40} {
		idx.Insert(k)
	}
	idx.Insert(50) // sorts after everything: RaiseOnly's no-split path

	if idx.SplitCount() != 0 {
		t.Errorf("SplitCount() = %d, want 0 for a tail append under RaiseOnly", idx.SplitCount())
	}
	first := idx.n(idx.heads[0]).forward
	fn := idx.n(first)
	if fn.n != 4 || fn.keys[3] != 40 {
		t.Errorf("original node = %v (n=%d), want unchanged [10 20 30 40]", fn.keys, fn.n)
	}
	if !idx.Contains(50) {
		t.Error("Contains(50) = false, want true")
	}
}

func TestRaiseOnly_FallsBackToSplitInsideRange(t *testing.T) {
	idx := New(WithVariant(RaiseOnly))
	for _, k := range []uint64{10, 20, 30, 40} {
		idx.Insert(k)
	}
	idx.Insert(25) // belongs inside the node's existing range

	if idx.SplitCount() != 1 {
		t.Errorf("SplitCount() = %d, want 1 when RaiseOnly must fall back", idx.SplitCount())
	}
	if !idx.Contains(25) {
		t.Error("Contains(25) = false, want true")
	}
	checkOrderingAndPadding(t, idx)
	checkLeaderConsistency(t, idx)
}
