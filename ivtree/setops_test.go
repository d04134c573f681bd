package ivtree

import "testing"

func concat(acc, next string) string {
	return acc + next
}

func TestTreeChop(t *testing.T) {
	tree := New[int, string]()
	_ = tree.Add(New(0, 10, "a"))
	tree.Chop(3, 7, nil)

	if err := tree.Verify(); err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if tree.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tree.Len())
	}
	if !tree.Contains(New(0, 3, "a")) {
		t.Error("expected surviving fragment [0,3)")
	}
	if !tree.Contains(New(7, 10, "a")) {
		t.Error("expected surviving fragment [7,10)")
	}
}

func TestTreeChopFullyConsumes(t *testing.T) {
	tree := New[int, string]()
	_ = tree.Add(New(3, 5, "a"))
	tree.Chop(0, 10, nil)
	if !tree.IsEmpty() {
		t.Errorf("expected tree to be empty after chopping a fully-enclosed interval, got len %d", tree.Len())
	}
}

func TestTreeChopWithDatafunc(t *testing.T) {
	tree := New[int, string]()
	_ = tree.Add(New(0, 10, "a"))
	tree.Chop(3, 7, func(original Interval[int, string], isLowerPortion bool) string {
		if isLowerPortion {
			return original.Data + "-lower"
		}
		return original.Data + "-upper"
	})

	if !tree.Contains(New(0, 3, "a-lower")) {
		t.Errorf("expected lower fragment relabeled by datafunc, got %v", tree.Items())
	}
	if !tree.Contains(New(7, 10, "a-upper")) {
		t.Errorf("expected upper fragment relabeled by datafunc, got %v", tree.Items())
	}
}

func TestTreeSlice(t *testing.T) {
	tree := New[int, string]()
	_ = tree.Add(New(0, 10, "a"))
	tree.Slice(5, nil)

	if err := tree.Verify(); err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if !tree.Contains(New(0, 5, "a")) || !tree.Contains(New(5, 10, "a")) {
		t.Errorf("expected [0,5) and [5,10) after slicing at 5, got %v", tree.Items())
	}
}

func TestTreeSliceWithDatafunc(t *testing.T) {
	tree := New[int, string]()
	_ = tree.Add(New(0, 10, "a"))
	tree.Slice(5, func(original Interval[int, string], isLowerPortion bool) string {
		if isLowerPortion {
			return original.Data + "-left"
		}
		return original.Data + "-right"
	})

	if !tree.Contains(New(0, 5, "a-left")) || !tree.Contains(New(5, 10, "a-right")) {
		t.Errorf("expected relabeled fragments, got %v", tree.Items())
	}
}

func TestTreeMergeOverlapsWithInitializer(t *testing.T) {
	tree := New[int, string]()
	_ = tree.Add(New(1, 5, "a"))
	_ = tree.Add(New(4, 8, "b"))
	_ = tree.Add(New(20, 25, "c"))

	tree.MergeOverlaps(concat, true, func() string { return "[" })
	if err := tree.Verify(); err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if !tree.Contains(New(1, 8, "[ab")) {
		t.Errorf("expected merged data folded from initializer, got %v", tree.Items())
	}
	if !tree.Contains(New(20, 25, "[c")) {
		t.Errorf("expected singleton run to also fold from initializer, got %v", tree.Items())
	}
}

func TestTreeMergeOverlapsStrict(t *testing.T) {
	tree := New[int, string]()
	_ = tree.Add(New(1, 5, "a"))
	_ = tree.Add(New(4, 8, "b"))
	_ = tree.Add(New(8, 10, "c"))
	_ = tree.Add(New(20, 25, "d"))

	tree.MergeOverlaps(concat, true, nil)
	if err := tree.Verify(); err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}

	// [1,5) and [4,8) overlap (strict touch requires End>Begin), merge to [1,8).
	// [8,10) merely touches [4,8) at the boundary so under strict=true it stays separate.
	if !tree.Contains(New(1, 8, "ab")) {
		t.Errorf("expected merged [1,8) with data \"ab\", got %v", tree.Items())
	}
	if !tree.Contains(New(8, 10, "c")) {
		t.Errorf("expected [8,10) to remain separate under strict merging, got %v", tree.Items())
	}
	if !tree.Contains(New(20, 25, "d")) {
		t.Error("expected untouched [20,25) to survive merge")
	}
}

func TestTreeMergeOverlapsTouching(t *testing.T) {
	tree := New[int, string]()
	_ = tree.Add(New(1, 5, "a"))
	_ = tree.Add(New(5, 8, "b"))

	tree.MergeOverlaps(concat, false, nil)
	if err := tree.Verify(); err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if !tree.Contains(New(1, 8, "ab")) {
		t.Errorf("expected touching intervals to merge into [1,8), got %v", tree.Items())
	}
}

func TestTreeMergeEquals(t *testing.T) {
	tree := New[int, string]()
	_ = tree.Add(New(1, 5, "a"))
	_ = tree.Add(New(1, 5, "b"))
	_ = tree.Add(New(10, 12, "c"))

	tree.MergeEquals(concat)
	if err := tree.Verify(); err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if tree.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tree.Len())
	}
	if !tree.Contains(New(1, 5, "ab")) {
		t.Errorf("expected merged equal-range interval with data \"ab\", got %v", tree.Items())
	}
}

func TestTreeSplitOverlaps(t *testing.T) {
	tree := New[int, string]()
	_ = tree.Add(New(0, 10, "a"))
	_ = tree.Add(New(5, 15, "b"))

	tree.SplitOverlaps()
	if err := tree.Verify(); err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	for _, iv := range tree.Items() {
		for _, other := range tree.Items() {
			if iv == other {
				continue
			}
			if iv.Overlaps(other) && !(iv.Begin == other.Begin && iv.End == other.End) {
				t.Errorf("expected no partial overlaps after SplitOverlaps, found %v and %v", iv, other)
			}
		}
	}
}

func TestTreeRemoveOverlapAndEnvelop(t *testing.T) {
	tree := New[int, string]()
	_ = tree.Add(New(0, 5, "a"))
	_ = tree.Add(New(10, 15, "b"))
	_ = tree.Add(New(20, 25, "c"))

	tree.RemoveOverlapRange(9, 16)
	if tree.Contains(New(10, 15, "b")) {
		t.Error("expected [10,15) to be removed by RemoveOverlapRange(9,16)")
	}
	if !tree.Contains(New(0, 5, "a")) || !tree.Contains(New(20, 25, "c")) {
		t.Error("expected untouched intervals to survive RemoveOverlapRange")
	}

	tree.RemoveEnvelop(0, 6)
	if tree.Contains(New(0, 5, "a")) {
		t.Error("expected [0,5) to be removed by RemoveEnvelop(0,6)")
	}
}

func TestTreeRemoveOverlapPoint(t *testing.T) {
	tree := New[int, string]()
	_ = tree.Add(New(0, 10, "a"))
	_ = tree.Add(New(20, 30, "b"))
	tree.RemoveOverlapPoint(5)
	if tree.Contains(New(0, 10, "a")) {
		t.Error("expected interval containing point 5 to be removed")
	}
	if !tree.Contains(New(20, 30, "b")) {
		t.Error("expected untouched interval to survive")
	}
}

func newTreeFrom(ivs ...Interval[int, string]) *Tree[int, string] {
	tree := New[int, string]()
	for _, iv := range ivs {
		_ = tree.Add(iv)
	}
	return tree
}

func TestTreeSetAlgebra(t *testing.T) {
	a := newTreeFrom(New(0, 5, "a"), New(5, 10, "b"))
	b := newTreeFrom(New(5, 10, "b"), New(10, 15, "c"))

	union := a.Union(b)
	if union.Len() != 3 {
		t.Errorf("Union Len() = %d, want 3", union.Len())
	}

	inter := a.Intersection(b)
	if inter.Len() != 1 || !inter.Contains(New(5, 10, "b")) {
		t.Errorf("Intersection = %v, want {[5,10,b)}", inter.Items())
	}

	diff := a.Difference(b)
	if diff.Len() != 1 || !diff.Contains(New(0, 5, "a")) {
		t.Errorf("Difference = %v, want {[0,5,a)}", diff.Items())
	}

	symDiff := a.SymmetricDifference(b)
	if symDiff.Len() != 2 {
		t.Errorf("SymmetricDifference Len() = %d, want 2", symDiff.Len())
	}
	if !symDiff.Contains(New(0, 5, "a")) || !symDiff.Contains(New(10, 15, "c")) {
		t.Errorf("SymmetricDifference = %v, want {[0,5,a), [10,15,c)}", symDiff.Items())
	}
}

func TestTreeUnionUpdateInPlace(t *testing.T) {
	a := newTreeFrom(New(0, 5, "a"))
	b := newTreeFrom(New(5, 10, "b"))
	a.UnionUpdate(b)
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	if b.Len() != 1 {
		t.Error("expected other tree to be unaffected by UnionUpdate")
	}
}

func TestTreeIntersectionUpdate(t *testing.T) {
	a := newTreeFrom(New(0, 5, "a"), New(5, 10, "b"))
	b := newTreeFrom(New(5, 10, "b"))
	a.IntersectionUpdate(b)
	if a.Len() != 1 || !a.Contains(New(5, 10, "b")) {
		t.Errorf("expected a to contain only the shared interval, got %v", a.Items())
	}
}
