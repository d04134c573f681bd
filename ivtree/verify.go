package ivtree

import (
	"cmp"
	"fmt"
)

// Verify walks the tree checking its structural invariants: every node's
// s_center is non-empty and holds only intervals containing the node's
// center, center ordering between a node and its descendants, balance
// factors within [-1, 1], correct depth caching, and boundary-index/all-set
// consistency. It does not check that no interval in a node's s_center
// contains an ancestor's center. It returns a wrapped
// ErrInvariantViolation describing the first violation found, or nil.
func (t *Tree[K, V]) Verify() error {
	seen := make(map[Interval[K, V]]struct{})
	if err := verifyNode(t.root, seen, nil, false, nil, false); err != nil {
		return err
	}
	if len(seen) != len(t.all) {
		return fmt.Errorf("%w: tree holds %d intervals but traversal found %d", ErrInvariantViolation, len(t.all), len(seen))
	}
	for iv := range seen {
		if _, ok := t.all[iv]; !ok {
			return fmt.Errorf("%w: %v reachable from root but absent from index", ErrInvariantViolation, iv)
		}
	}
	for iv := range t.all {
		if iv.IsNull() {
			return fmt.Errorf("%w: null interval %v stored", ErrInvariantViolation, iv)
		}
	}
	return verifyBoundary(t)
}

func verifyNode[K cmp.Ordered, V comparable](n *node[K, V], seen map[Interval[K, V]]struct{}, lowBound K, hasLow bool, highBound K, hasHigh bool) error {
	if n == nil {
		return nil
	}
	if len(n.sCenter) == 0 {
		return fmt.Errorf("%w: node at center %v has empty s_center", ErrInvariantViolation, n.center)
	}
	if hasLow && n.center <= lowBound {
		return fmt.Errorf("%w: node center %v not greater than ancestor bound %v", ErrInvariantViolation, n.center, lowBound)
	}
	if hasHigh && n.center >= highBound {
		return fmt.Errorf("%w: node center %v not less than ancestor bound %v", ErrInvariantViolation, n.center, highBound)
	}
	for iv := range n.sCenter {
		if !iv.ContainsPoint(n.center) {
			return fmt.Errorf("%w: %v stored at center %v it does not contain", ErrInvariantViolation, iv, n.center)
		}
		if _, dup := seen[iv]; dup {
			return fmt.Errorf("%w: %v stored at more than one node", ErrInvariantViolation, iv)
		}
		seen[iv] = struct{}{}
	}
	wantDepth := 1 + maxInt(depthOf(n.left), depthOf(n.right))
	if n.depth != wantDepth {
		return fmt.Errorf("%w: node at center %v has cached depth %d, want %d", ErrInvariantViolation, n.center, n.depth, wantDepth)
	}
	bal := depthOf(n.right) - depthOf(n.left)
	if bal != n.balance {
		return fmt.Errorf("%w: node at center %v has cached balance %d, want %d", ErrInvariantViolation, n.center, n.balance, bal)
	}
	if bal < -1 || bal > 1 {
		return fmt.Errorf("%w: node at center %v has balance factor %d", ErrInvariantViolation, n.center, bal)
	}
	if err := verifyNode(n.left, seen, lowBound, hasLow, n.center, true); err != nil {
		return err
	}
	return verifyNode(n.right, seen, n.center, true, highBound, hasHigh)
}

func verifyBoundary[K cmp.Ordered, V comparable](t *Tree[K, V]) error {
	want := newBoundaryIndex[K]()
	for iv := range t.all {
		want.add(iv.Begin)
		want.add(iv.End)
	}
	if want.len() != t.boundary.len() {
		return fmt.Errorf("%w: boundary index has %d distinct coordinates, want %d", ErrInvariantViolation, t.boundary.len(), want.len())
	}
	for k, n := range want.counts {
		if t.boundary.counts[k] != n {
			return fmt.Errorf("%w: boundary count at %v is %d, want %d", ErrInvariantViolation, k, t.boundary.counts[k], n)
		}
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
