package ivtree

import (
	"cmp"
	"fmt"
	"slices"
)

// Tree is a mutable, self-balancing centered interval tree over half-open
// intervals [Begin, End) of type K carrying payloads of type V. The zero
// value is not usable; construct one with New or NewFromSlice.
type Tree[K cmp.Ordered, V comparable] struct {
	root     *node[K, V]
	boundary *boundaryIndex[K]
	all      map[Interval[K, V]]struct{}
}

// New returns an empty Tree.
func New[K cmp.Ordered, V comparable]() *Tree[K, V] {
	return &Tree[K, V]{
		boundary: newBoundaryIndex[K](),
		all:      make(map[Interval[K, V]]struct{}),
	}
}

// NewFromSlice builds a Tree from ivs in O(n log n), rejecting the whole
// batch if any interval is null.
func NewFromSlice[K cmp.Ordered, V comparable](ivs []Interval[K, V]) (*Tree[K, V], error) {
	t := New[K, V]()
	sorted := make([]Interval[K, V], len(ivs))
	copy(sorted, ivs)
	for _, iv := range sorted {
		if iv.IsNull() {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, iv)
		}
	}
	slices.SortFunc(sorted, Interval[K, V].Compare)
	t.root = fromSorted(sorted)
	for _, iv := range sorted {
		t.all[iv] = struct{}{}
		t.boundary.add(iv.Begin)
		t.boundary.add(iv.End)
	}
	return t, nil
}

// Len returns the number of intervals stored.
func (t *Tree[K, V]) Len() int {
	return len(t.all)
}

// IsEmpty reports whether the tree holds no intervals.
func (t *Tree[K, V]) IsEmpty() bool {
	return len(t.all) == 0
}

// Add inserts iv, returning ErrInvalidInterval if iv is null. Re-adding an
// interval already present is a no-op.
func (t *Tree[K, V]) Add(iv Interval[K, V]) error {
	if iv.IsNull() {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, iv)
	}
	if _, ok := t.all[iv]; ok {
		return nil
	}
	if t.root == nil {
		t.root = newLeaf(iv)
	} else {
		t.root = t.root.add(iv)
	}
	t.all[iv] = struct{}{}
	t.boundary.add(iv.Begin)
	t.boundary.add(iv.End)
	return nil
}

// AddRange is a convenience wrapper around Add that builds the Interval
// from its parts.
func (t *Tree[K, V]) AddRange(begin, end K, data V) error {
	return t.Add(New(begin, end, data))
}

// Remove deletes iv from the tree, returning ErrNotFound if it is not
// present.
func (t *Tree[K, V]) Remove(iv Interval[K, V]) error {
	if _, ok := t.all[iv]; !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, iv)
	}
	return t.removeInternal(iv, true)
}

// Discard deletes iv from the tree if present, and is a silent no-op
// otherwise.
func (t *Tree[K, V]) Discard(iv Interval[K, V]) {
	if _, ok := t.all[iv]; !ok {
		return
	}
	_ = t.removeInternal(iv, false)
}

func (t *Tree[K, V]) removeInternal(iv Interval[K, V], shouldError bool) error {
	root, err := t.root.remove(iv, shouldError)
	if err != nil {
		return err
	}
	t.root = root
	delete(t.all, iv)
	t.boundary.remove(iv.Begin)
	t.boundary.remove(iv.End)
	return nil
}

// Clear empties the tree.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.boundary.clear()
	clear(t.all)
}

// Contains reports whether iv is present, by exact (Begin, End, Data)
// match.
func (t *Tree[K, V]) Contains(iv Interval[K, V]) bool {
	_, ok := t.all[iv]
	return ok
}

// ContainsPoint reports whether any stored interval contains p.
func (t *Tree[K, V]) ContainsPoint(p K) bool {
	return t.root.containsPoint(p)
}

// Items returns every stored interval in unspecified order.
func (t *Tree[K, V]) Items() []Interval[K, V] {
	out := make([]Interval[K, V], 0, len(t.all))
	for iv := range t.all {
		out = append(out, iv)
	}
	return out
}

// Sorted returns every stored interval ordered by Interval.Compare.
func (t *Tree[K, V]) Sorted() []Interval[K, V] {
	out := t.Items()
	slices.SortFunc(out, Interval[K, V].Compare)
	return out
}

// AtPoint returns every interval containing p.
func (t *Tree[K, V]) AtPoint(p K) []Interval[K, V] {
	hits := make(map[Interval[K, V]]struct{})
	t.root.searchPoint(p, hits)
	return mapKeys(hits)
}

// Overlap returns every interval overlapping the half-open range
// [begin, end). A null query range yields no results.
func (t *Tree[K, V]) Overlap(begin, end K) []Interval[K, V] {
	if begin >= end {
		return nil
	}
	hits := make(map[Interval[K, V]]struct{})
	t.root.searchPoint(begin, hits)
	for _, b := range t.boundary.iterBetween(begin, end) {
		t.root.searchPoint(b, hits)
	}
	out := make([]Interval[K, V], 0, len(hits))
	for iv := range hits {
		if iv.OverlapsRange(begin, end) {
			out = append(out, iv)
		}
	}
	return out
}

// Envelop returns every interval fully contained within the half-open
// range [begin, end).
func (t *Tree[K, V]) Envelop(begin, end K) []Interval[K, V] {
	candidates := t.Overlap(begin, end)
	out := candidates[:0]
	for _, iv := range candidates {
		if begin <= iv.Begin && iv.End <= end {
			out = append(out, iv)
		}
	}
	return out
}

// FindNested returns a mapping from each interval that fully envelops at
// least one other interval to the intervals it envelops, found by sorting
// intervals by length descending and, for each in turn, testing every
// interval after it for containment. Intervals that envelop no other
// interval have no entry.
func (t *Tree[K, V]) FindNested() map[Interval[K, V]][]Interval[K, V] {
	longIvs := t.Items()
	slices.SortFunc(longIvs, func(a, b Interval[K, V]) int {
		al, bl := a.Len(), b.Len()
		if al > bl {
			return -1
		}
		if al < bl {
			return 1
		}
		return 0
	})

	result := make(map[Interval[K, V]][]Interval[K, V])
	for i, parent := range longIvs {
		for _, child := range longIvs[i+1:] {
			if parent.ContainsInterval(child) && parent != child {
				result[parent] = append(result[parent], child)
			}
		}
	}
	return result
}

// Begin returns the smallest Begin among stored intervals, or the zero
// value of K and false if the tree is empty.
func (t *Tree[K, V]) Begin() (K, bool) {
	return t.boundary.minKey()
}

// End returns the largest End among stored intervals, or the zero value of
// K and false if the tree is empty.
func (t *Tree[K, V]) End() (K, bool) {
	return t.boundary.maxKey()
}

// Span returns End()-Begin(), or the zero value of K and false if the
// tree is empty.
func (t *Tree[K, V]) Span() (K, bool) {
	lo, ok := t.Begin()
	if !ok {
		var zero K
		return zero, false
	}
	hi, _ := t.End()
	return hi - lo, true
}

// FirstBefore returns the nearest interval at or before p — among
// intervals with End <= p, the one with the greatest Begin — and whether
// one exists. Ties are broken by Interval.Compare's total order,
// preferring the smallest such interval.
func (t *Tree[K, V]) FirstBefore(p K) (Interval[K, V], bool) {
	var (
		best  Interval[K, V]
		found bool
	)
	for iv := range t.all {
		if iv.End > p {
			continue
		}
		if !found || iv.Begin > best.Begin || (iv.Begin == best.Begin && iv.Compare(best) < 0) {
			best = iv
			found = true
		}
	}
	return best, found
}

// FirstAfter returns the interval with the smallest Begin at or after p
// and whether one exists.
func (t *Tree[K, V]) FirstAfter(p K) (Interval[K, V], bool) {
	var (
		best  Interval[K, V]
		found bool
	)
	for iv := range t.all {
		if iv.Begin < p {
			continue
		}
		if !found || iv.Begin < best.Begin || (iv.Begin == best.Begin && iv.Compare(best) < 0) {
			best = iv
			found = true
		}
	}
	return best, found
}

// Copy returns a deep structural copy of t; mutating the copy never
// affects t and vice versa.
func (t *Tree[K, V]) Copy() *Tree[K, V] {
	cp, err := NewFromSlice(t.Items())
	if err != nil {
		panic(fmt.Errorf("%w: corrupt source tree in Copy: %w", ErrInvariantViolation, err))
	}
	return cp
}

// String renders the tree as an indented listing of its sorted intervals,
// in the manner of Python intervaltree's print_structure.
func (t *Tree[K, V]) String() string {
	if t.IsEmpty() {
		return "Tree()"
	}
	s := "Tree(\n"
	for _, iv := range t.Sorted() {
		s += "  " + iv.String() + "\n"
	}
	return s + ")"
}

func mapKeys[E comparable](m map[E]struct{}) []E {
	out := make([]E, 0, len(m))
	for e := range m {
		out = append(out, e)
	}
	return out
}
