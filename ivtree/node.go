package ivtree

import "cmp"

// node is one centered-interval-tree node: a center coordinate, the set of
// intervals straddling that center, and the two children. depth and
// balance are cached and refreshed on every structural change.
//
// Invariants (see spec §3, enforced by Verify, never by this type itself):
//   - sCenter is non-empty for a live node.
//   - every interval in sCenter contains center.
//   - no interval in sCenter contains any ancestor's center.
//   - left.center < center < right.center.
//   - depth = 1 + max(depth(left), depth(right)); balance = depth(right) -
//     depth(left); |balance| <= 1 at rest.
type node[K cmp.Ordered, V comparable] struct {
	center  K
	sCenter map[Interval[K, V]]struct{}
	left    *node[K, V]
	right   *node[K, V]
	depth   int
	balance int
}

func newLeaf[K cmp.Ordered, V comparable](iv Interval[K, V]) *node[K, V] {
	return &node[K, V]{
		center:  iv.Begin,
		sCenter: map[Interval[K, V]]struct{}{iv: {}},
		depth:   1,
		balance: 0,
	}
}

func depthOf[K cmp.Ordered, V comparable](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.depth
}

// refreshDepth recomputes n.depth and n.balance from its children's cached
// depths. It does not recurse.
func (n *node[K, V]) refreshDepth() {
	l, r := depthOf(n.left), depthOf(n.right)
	if l > r {
		n.depth = l + 1
	} else {
		n.depth = r + 1
	}
	n.balance = r - l
}

// fromSorted bulk-builds a balanced-ish subtree from a slice of intervals
// sorted by Interval.Compare. It picks the middle interval's Begin as the
// pivot center, partitions the rest left/right/center, recurses, and
// rebalances on the way back up (spec §4.2.1).
func fromSorted[K cmp.Ordered, V comparable](sorted []Interval[K, V]) *node[K, V] {
	if len(sorted) == 0 {
		return nil
	}
	pivot := sorted[len(sorted)/2]
	n := &node[K, V]{center: pivot.Begin, sCenter: make(map[Interval[K, V]]struct{})}

	var left, right []Interval[K, V]
	for _, iv := range sorted {
		switch {
		case iv.End <= n.center:
			left = append(left, iv)
		case iv.Begin > n.center:
			right = append(right, iv)
		default:
			n.sCenter[iv] = struct{}{}
		}
	}
	n.left = fromSorted(left)
	n.right = fromSorted(right)
	return n.rotate()
}

// centerHit reports whether iv contains n.center.
func (n *node[K, V]) centerHit(iv Interval[K, V]) bool {
	return iv.ContainsPoint(n.center)
}

// hitBranch reports which branch (false=left, true=right) iv belongs in,
// assuming !centerHit(iv).
func (n *node[K, V]) hitBranch(iv Interval[K, V]) bool {
	return iv.Begin > n.center
}

func (n *node[K, V]) child(right bool) *node[K, V] {
	if right {
		return n.right
	}
	return n.left
}

func (n *node[K, V]) setChild(right bool, c *node[K, V]) {
	if right {
		n.right = c
	} else {
		n.left = c
	}
}

// rotate rebalances n if needed and returns the new subtree root (spec
// §4.2.3).
func (n *node[K, V]) rotate() *node[K, V] {
	n.refreshDepth()
	if n.balance > -2 && n.balance < 2 {
		return n
	}
	heavy := n.balance > 0
	child := n.child(heavy)
	childHeavy := child.balance > 0
	if heavy == childHeavy {
		return n.singleRotate()
	}
	return n.doubleRotate()
}

// singleRotate performs a single AVL rotation and repairs any interval that
// used to sit at n's s_center but now straddles the promoted node's new
// center (spec §4.2.3, the "center-straddle repair"). n itself (not its
// heavy child) is re-rotated after reattachment, since restructuring its
// subtree may have unbalanced it further; the repair loop then runs on
// whatever remains in n's s_center once that settles, exactly mirroring
// the order of operations in the original algorithm.
func (n *node[K, V]) singleRotate() *node[K, V] {
	heavy := n.balance > 0
	light := !heavy

	save := n.child(heavy)
	n.setChild(heavy, save.child(light))
	save.setChild(light, n)

	n.refreshDepth()
	save.setChild(light, n.rotate())
	save.refreshDepth()

	for iv := range n.sCenter {
		if save.centerHit(iv) {
			newLight, _ := save.child(light).remove(iv, false)
			save.setChild(light, newLight)
			if newLight != nil {
				newLight.refreshDepth()
			}
			save = save.add(iv)
			save.refreshDepth()
		}
	}
	return save
}

// doubleRotate performs a rotation of the heavy child followed by a
// rotation of self, with the center-straddle repair applied on each
// constituent single rotation.
func (n *node[K, V]) doubleRotate() *node[K, V] {
	heavy := n.balance > 0
	n.setChild(heavy, n.child(heavy).singleRotate())
	n.refreshDepth()
	return n.singleRotate()
}

// add inserts iv into the subtree rooted at n and returns the (possibly
// new) subtree root (spec §4.2.2).
func (n *node[K, V]) add(iv Interval[K, V]) *node[K, V] {
	if n.centerHit(iv) {
		n.sCenter[iv] = struct{}{}
		return n
	}
	right := n.hitBranch(iv)
	if n.child(right) == nil {
		n.setChild(right, newLeaf(iv))
		n.refreshDepth()
		return n
	}
	n.setChild(right, n.child(right).add(iv))
	return n.rotate()
}

// remove removes iv from the subtree rooted at n, returning the (possibly
// new, possibly nil) subtree root. If shouldError is true and iv is not
// present, it returns a non-nil error without mutating the tree further
// than already done on the way down.
func (n *node[K, V]) remove(iv Interval[K, V], shouldError bool) (*node[K, V], error) {
	if n == nil {
		if shouldError {
			return nil, ErrNotFound
		}
		return nil, nil
	}

	if n.centerHit(iv) {
		if _, ok := n.sCenter[iv]; !ok {
			if shouldError {
				return n, ErrNotFound
			}
			return n, nil
		}
		delete(n.sCenter, iv)
		if len(n.sCenter) > 0 {
			return n, nil
		}
		return n.prune(), nil
	}

	right := n.hitBranch(iv)
	child, err := n.child(right).remove(iv, shouldError)
	if err != nil {
		return n, err
	}
	n.setChild(right, child)
	return n.rotate(), nil
}

// prune returns a replacement for n's subtree once n.sCenter has become
// empty (spec §4.2.4).
func (n *node[K, V]) prune() *node[K, V] {
	if n.left == nil || n.right == nil {
		if n.left != nil {
			return n.left
		}
		return n.right
	}

	heir, remainder := n.left.popGreatestChild()
	n.left = remainder
	heir.left = n.left
	heir.right = n.right
	heir.refreshDepth()
	return heir.rotate()
}

// popGreatestChild removes and returns the rightmost node in the subtree
// rooted at n, reshaped into a node suitable to replace a pruned parent
// (spec §4.2.5). It returns (heir, remainder).
func (n *node[K, V]) popGreatestChild() (*node[K, V], *node[K, V]) {
	if n.right == nil {
		heir := n.splitOffGreatest()
		if len(n.sCenter) > 0 {
			return heir, n
		}
		return heir, n.left
	}

	greatestChild, remainder := n.right.popGreatestChild()
	n.right = remainder
	n.refreshDepth()
	newSelf := n.rotate()

	for iv := range newSelf.sCenter {
		if greatestChild.centerHit(iv) {
			delete(newSelf.sCenter, iv)
			greatestChild.sCenter[iv] = struct{}{}
		}
	}

	if len(newSelf.sCenter) > 0 {
		return greatestChild, newSelf
	}
	return greatestChild, newSelf.prune()
}

// splitOffGreatest is the base case of popGreatestChild: n has no right
// child, so n itself is the greatest node. It carves out the sub-slice of
// n.sCenter with the largest possible center into a new leaf-like node,
// leaving the rest behind in n.
func (n *node[K, V]) splitOffGreatest() *node[K, V] {
	var maxIv Interval[K, V]
	first := true
	for iv := range n.sCenter {
		if first || iv.End > maxIv.End {
			maxIv = iv
			first = false
		}
	}

	childCenter := maxIv.Begin
	if maxIv.End-maxIv.Begin > 1 {
		childCenter = maxIv.End - 1
	}

	child := &node[K, V]{center: childCenter, sCenter: make(map[Interval[K, V]]struct{})}
	for iv := range n.sCenter {
		if iv.ContainsPoint(childCenter) {
			child.sCenter[iv] = struct{}{}
		}
	}
	for iv := range child.sCenter {
		delete(n.sCenter, iv)
	}
	child.depth = 1
	return child
}

// searchPoint accumulates every interval in the subtree containing point
// into result, then recurses into the one child on point's side (spec
// §4.2.6).
func (n *node[K, V]) searchPoint(point K, result map[Interval[K, V]]struct{}) {
	if n == nil {
		return
	}
	for iv := range n.sCenter {
		if iv.ContainsPoint(point) {
			result[iv] = struct{}{}
		}
	}
	if point < n.center {
		n.left.searchPoint(point, result)
	} else if point > n.center {
		n.right.searchPoint(point, result)
	}
}

// searchOverlap calls searchPoint for every point in points.
func (n *node[K, V]) searchOverlap(points []K, result map[Interval[K, V]]struct{}) {
	for _, p := range points {
		n.searchPoint(p, result)
	}
}

// containsPoint reports whether any interval in the subtree contains p.
func (n *node[K, V]) containsPoint(p K) bool {
	if n == nil {
		return false
	}
	for iv := range n.sCenter {
		if iv.ContainsPoint(p) {
			return true
		}
	}
	if p < n.center {
		return n.left.containsPoint(p)
	}
	if p > n.center {
		return n.right.containsPoint(p)
	}
	return false
}

// allChildren accumulates every interval reachable from n into result.
func (n *node[K, V]) allChildren(result map[Interval[K, V]]struct{}) {
	if n == nil {
		return
	}
	for iv := range n.sCenter {
		result[iv] = struct{}{}
	}
	n.left.allChildren(result)
	n.right.allChildren(result)
}
