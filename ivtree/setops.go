package ivtree

// Chop removes every part of every stored interval that falls inside the
// half-open range [begin, end), splitting any interval that straddles a
// boundary into the surviving fragment(s) and re-inserting them. Each
// fragment keeps the original payload unless datafunc is non-nil, in which
// case datafunc(original, isLowerPortion) computes that fragment's
// payload (isLowerPortion is true for the [original.Begin, begin)
// fragment, false for the [end, original.End) fragment).
func (t *Tree[K, V]) Chop(begin, end K, datafunc func(original Interval[K, V], isLowerPortion bool) V) {
	if begin >= end {
		return
	}
	insertions := make([]Interval[K, V], 0)
	for _, iv := range t.Overlap(begin, end) {
		t.Discard(iv)
		if iv.Begin < begin {
			data := iv.Data
			if datafunc != nil {
				data = datafunc(iv, true)
			}
			insertions = append(insertions, New(iv.Begin, begin, data))
		}
		if iv.End > end {
			data := iv.Data
			if datafunc != nil {
				data = datafunc(iv, false)
			}
			insertions = append(insertions, New(end, iv.End, data))
		}
	}
	for _, iv := range insertions {
		_ = t.Add(iv)
	}
}

// Slice splits every stored interval straddling p into two abutting
// intervals at p. Each fragment keeps the original payload unless
// datafunc is non-nil, in which case datafunc(original, isLowerPortion)
// computes that fragment's payload (isLowerPortion is true for the
// [original.Begin, p) fragment, false for the [p, original.End)
// fragment). Intervals beginning at p are left as they are.
func (t *Tree[K, V]) Slice(p K, datafunc func(original Interval[K, V], isLowerPortion bool) V) {
	insertions := make([]Interval[K, V], 0)
	for _, iv := range t.AtPoint(p) {
		if iv.Begin == p {
			continue
		}
		t.Discard(iv)
		lower, upper := iv.Data, iv.Data
		if datafunc != nil {
			lower = datafunc(iv, true)
			upper = datafunc(iv, false)
		}
		insertions = append(insertions, New(iv.Begin, p, lower), New(p, iv.End, upper))
	}
	for _, iv := range insertions {
		_ = t.Add(iv)
	}
}

// MergeOverlaps replaces every maximal run of mutually overlapping (or, if
// strict is false, merely touching) stored intervals with a single
// interval spanning the run. reduce combines the payloads of the
// intervals being merged. If initializer is non-nil, the fold over each
// run starts by reducing every member against initializer(); otherwise it
// starts from the first interval's payload, as the seed, folded against
// the rest.
func (t *Tree[K, V]) MergeOverlaps(reduce func(acc, next V) V, strict bool, initializer func() V) {
	sorted := t.Sorted()
	if len(sorted) == 0 {
		return
	}

	fold := func(run []Interval[K, V]) V {
		if initializer != nil {
			acc := initializer()
			for _, iv := range run {
				acc = reduce(acc, iv.Data)
			}
			return acc
		}
		acc := run[0].Data
		for _, iv := range run[1:] {
			acc = reduce(acc, iv.Data)
		}
		return acc
	}

	var merged []Interval[K, V]
	run := []Interval[K, V]{sorted[0]}
	cur := sorted[0]
	for _, iv := range sorted[1:] {
		touches := cur.End > iv.Begin
		if !strict {
			touches = cur.End >= iv.Begin
		}
		if touches {
			if iv.End > cur.End {
				cur.End = iv.End
			}
			run = append(run, iv)
			continue
		}
		merged = append(merged, New(run[0].Begin, cur.End, fold(run)))
		run = []Interval[K, V]{iv}
		cur = iv
	}
	merged = append(merged, New(run[0].Begin, cur.End, fold(run)))

	t.Clear()
	for _, iv := range merged {
		_ = t.Add(iv)
	}
}

// MergeEquals replaces every group of stored intervals sharing the same
// (Begin, End) with a single interval whose payload is the reduction of
// the group, seeded with the first member's payload.
func (t *Tree[K, V]) MergeEquals(reduce func(acc, next V) V) {
	sorted := t.Sorted()
	groups := make(map[[2]K][]Interval[K, V])
	var order [][2]K
	for _, iv := range sorted {
		key := [2]K{iv.Begin, iv.End}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], iv)
	}
	t.Clear()
	for _, key := range order {
		group := groups[key]
		data := group[0].Data
		for _, iv := range group[1:] {
			data = reduce(data, iv.Data)
		}
		_ = t.Add(New(key[0], key[1], data))
	}
}

// SplitOverlaps slices the tree at every boundary coordinate currently
// recorded, so that no two stored intervals partially overlap; every
// remaining overlap is a full containment at identical coordinates.
func (t *Tree[K, V]) SplitOverlaps() {
	for _, p := range t.boundary.keys() {
		t.Slice(p, nil)
	}
}

// RemoveOverlapPoint discards every interval containing p.
func (t *Tree[K, V]) RemoveOverlapPoint(p K) {
	for _, iv := range t.AtPoint(p) {
		t.Discard(iv)
	}
}

// RemoveOverlapRange discards every interval overlapping [begin, end).
func (t *Tree[K, V]) RemoveOverlapRange(begin, end K) {
	for _, iv := range t.Overlap(begin, end) {
		t.Discard(iv)
	}
}

// RemoveEnvelop discards every interval fully contained in [begin, end).
func (t *Tree[K, V]) RemoveEnvelop(begin, end K) {
	for _, iv := range t.Envelop(begin, end) {
		t.Discard(iv)
	}
}

// Union returns a new Tree holding every interval present in t or other
// (or both).
func (t *Tree[K, V]) Union(other *Tree[K, V]) *Tree[K, V] {
	out := t.Copy()
	for iv := range other.all {
		_ = out.Add(iv)
	}
	return out
}

// UnionUpdate adds every interval of other into t in place.
func (t *Tree[K, V]) UnionUpdate(other *Tree[K, V]) {
	for iv := range other.all {
		_ = t.Add(iv)
	}
}

// Intersection returns a new Tree holding only the intervals present in
// both t and other, by exact (Begin, End, Data) match.
func (t *Tree[K, V]) Intersection(other *Tree[K, V]) *Tree[K, V] {
	out := New[K, V]()
	for iv := range t.all {
		if _, ok := other.all[iv]; ok {
			_ = out.Add(iv)
		}
	}
	return out
}

// IntersectionUpdate removes from t every interval not also present in
// other.
func (t *Tree[K, V]) IntersectionUpdate(other *Tree[K, V]) {
	for _, iv := range t.Items() {
		if _, ok := other.all[iv]; !ok {
			t.Discard(iv)
		}
	}
}

// Difference returns a new Tree holding the intervals of t that are not
// present in other.
func (t *Tree[K, V]) Difference(other *Tree[K, V]) *Tree[K, V] {
	out := New[K, V]()
	for iv := range t.all {
		if _, ok := other.all[iv]; !ok {
			_ = out.Add(iv)
		}
	}
	return out
}

// DifferenceUpdate removes from t every interval also present in other.
func (t *Tree[K, V]) DifferenceUpdate(other *Tree[K, V]) {
	for iv := range other.all {
		t.Discard(iv)
	}
}

// SymmetricDifference returns a new Tree holding the intervals present in
// exactly one of t and other.
func (t *Tree[K, V]) SymmetricDifference(other *Tree[K, V]) *Tree[K, V] {
	out := New[K, V]()
	for iv := range t.all {
		if _, ok := other.all[iv]; !ok {
			_ = out.Add(iv)
		}
	}
	for iv := range other.all {
		if _, ok := t.all[iv]; !ok {
			_ = out.Add(iv)
		}
	}
	return out
}

// SymmetricDifferenceUpdate replaces t's contents with the symmetric
// difference of t and other.
func (t *Tree[K, V]) SymmetricDifferenceUpdate(other *Tree[K, V]) {
	result := t.SymmetricDifference(other)
	t.Clear()
	for iv := range result.all {
		_ = t.Add(iv)
	}
}

// Update is an alias of UnionUpdate, matching the Python intervaltree
// naming this package's set algebra is grounded on.
func (t *Tree[K, V]) Update(other *Tree[K, V]) {
	t.UnionUpdate(other)
}

// Extend adds every interval in ivs to t, skipping any already present.
// If ivs holds a null interval, it returns ErrInvalidInterval for the first
// one and adds nothing.
func (t *Tree[K, V]) Extend(ivs []Interval[K, V]) error {
	for _, iv := range ivs {
		if iv.IsNull() {
			return t.Add(iv) // rejects iv without changing t
		}
	}
	for _, iv := range ivs {
		_ = t.Add(iv)
	}
	return nil
}
