// Package ivtree implements a mutable, self-balancing centered interval
// tree indexing half-open numeric intervals [begin, end) with optional
// attached payloads.
package ivtree

import (
	"cmp"
	"fmt"
)

// Interval is an immutable half-open range [Begin, End) with an attached
// payload. A point p is contained in the interval iff Begin <= p < End. An
// interval with Begin >= End is null and is rejected by every constructor
// and mutator in this package.
type Interval[K cmp.Ordered, V comparable] struct {
	Begin K
	End   K
	Data  V
}

// New returns an Interval. It does not validate Begin < End; use
// Tree.Add or Tree.AddRange for validated construction.
func New[K cmp.Ordered, V comparable](begin, end K, data V) Interval[K, V] {
	return Interval[K, V]{Begin: begin, End: end, Data: data}
}

// IsNull reports whether the interval is malformed (Begin >= End).
func (iv Interval[K, V]) IsNull() bool {
	return iv.Begin >= iv.End
}

// Len returns End - Begin, or the zero value of K for a null interval.
func (iv Interval[K, V]) Len() K {
	if iv.IsNull() {
		var zero K
		return zero
	}
	return iv.End - iv.Begin
}

// ContainsPoint reports whether Begin <= p < End.
func (iv Interval[K, V]) ContainsPoint(p K) bool {
	return iv.Begin <= p && p < iv.End
}

// ContainsInterval reports whether iv fully envelops other: iv.Begin <=
// other.Begin && iv.End >= other.End.
func (iv Interval[K, V]) ContainsInterval(other Interval[K, V]) bool {
	return iv.Begin <= other.Begin && iv.End >= other.End
}

// Overlaps reports whether iv and other share at least one point.
func (iv Interval[K, V]) Overlaps(other Interval[K, V]) bool {
	return iv.Begin < other.End && other.Begin < iv.End
}

// OverlapsPoint is equivalent to ContainsPoint.
func (iv Interval[K, V]) OverlapsPoint(p K) bool {
	return iv.ContainsPoint(p)
}

// OverlapsRange reports whether the half-open range [begin, end) intersects
// iv on at least one point. A null query range always returns false.
func (iv Interval[K, V]) OverlapsRange(begin, end K) bool {
	if begin >= end {
		return false
	}
	return iv.Begin < end && begin < iv.End
}

// DistanceTo returns the size of the gap between iv and other, or 0 if they
// overlap or touch.
func (iv Interval[K, V]) DistanceTo(other Interval[K, V]) K {
	if iv.Overlaps(other) {
		var zero K
		return zero
	}
	if iv.Begin < other.Begin {
		return other.Begin - iv.End
	}
	return iv.Begin - other.End
}

// dataTiebreak produces a deterministic, stable string form of a payload,
// used to totally order intervals whose (Begin, End) coincide and whose
// payloads are not themselves ordered. A Stringer payload is rendered via
// String(); anything else falls back to a stable %#v rendering.
func dataTiebreak(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%#v", v)
}

// Compare orders intervals by Begin, then End, then a deterministic
// tiebreak on Data. It returns a negative number if iv < other, zero if
// they are equal, and a positive number otherwise.
func (iv Interval[K, V]) Compare(other Interval[K, V]) int {
	if c := cmp.Compare(iv.Begin, other.Begin); c != 0 {
		return c
	}
	if c := cmp.Compare(iv.End, other.End); c != 0 {
		return c
	}
	if iv.Data == other.Data {
		return 0
	}
	return cmp.Compare(dataTiebreak(iv.Data), dataTiebreak(other.Data))
}

// Lt reports whether iv lies strictly and entirely before other (iv.End <=
// other.Begin). It returns an error if either interval is null.
func (iv Interval[K, V]) Lt(other Interval[K, V]) (bool, error) {
	if iv.IsNull() || other.IsNull() {
		return false, fmt.Errorf("%w: ordering requires non-null intervals", ErrInvalidInterval)
	}
	return iv.End <= other.Begin, nil
}

// Le is like Lt but also considers iv "less-or-equal" to other when they
// describe the same range.
func (iv Interval[K, V]) Le(other Interval[K, V]) (bool, error) {
	lt, err := iv.Lt(other)
	if err != nil {
		return false, err
	}
	return lt || (iv.Begin == other.Begin && iv.End == other.End), nil
}

// Gt reports whether iv lies strictly and entirely after other.
func (iv Interval[K, V]) Gt(other Interval[K, V]) (bool, error) {
	return other.Lt(iv)
}

// Ge is like Gt but also considers iv "greater-or-equal" to other when they
// describe the same range.
func (iv Interval[K, V]) Ge(other Interval[K, V]) (bool, error) {
	return other.Le(iv)
}

// String renders the interval in the style of Python's intervaltree
// Interval repr, e.g. Interval(1, 4, gene-a). The payload is formatted with
// %v, so string payloads are not quoted.
func (iv Interval[K, V]) String() string {
	return fmt.Sprintf("Interval(%v, %v, %v)", iv.Begin, iv.End, iv.Data)
}
