package joinable

// WBBalancer implements Balancer using subtree size with weight ratio
// alpha = 1/4: every non-leaf's (size(left)+1)/(size(left)+size(right)+2)
// must lie in [alpha, 1-alpha]. rank is unused and kept at zero, per
// spec.md's design-notes resolution that the redundant WB rank field is
// kept for storage uniformity with AVLBalancer's Node rather than omitted.
//
// The single/double rotation choice follows Adams' weight-balanced tree
// algorithm (as used by Haskell's Data.Map): delta=3 drives the
// left_heavy/like thresholds below, ratio=2 drives isSingleRotation. These
// constants are the concrete resolution of spec.md's "is_single_rotation —
// weight ratio in [1/4, 2/3)" description, which names the interval but not
// the exact formula.
type WBBalancer[T, A any] struct {
	Aug Augmenter[T, A]
}

func (b WBBalancer[T, A]) Augmenter() Augmenter[T, A] { return b.Aug }

func (b WBBalancer[T, A]) Refresh(n *Node[T, A]) {
	n.size = uint32(size(n.left) + size(n.right) + 1) //nolint:gosec // capped by spec's 32-bit subtree-size non-goal
	n.rank = 0
	n.aug = b.Aug.Combine(aug(n.left, b.Aug), b.Aug.Value(n.value), aug(n.right, b.Aug))
}

// leftHeavy reports whether a tree of weight l is too heavy relative to a
// sibling of weight r to join them directly: l+1 > 3*(l+r+2)/4 (spec.md
// section 4.2, WB specialization).
func leftHeavy(l, r int) bool {
	return l+1 > (3*(l+r+2))/4
}

// like reports whether weights l and r are balanced enough, per alpha=1/4,
// to be joined as siblings without further rebalancing.
func like(l, r int) bool {
	return 4*(l+1) >= (l+r+2) && 4*(l+1) <= 3*(l+r+2)
}

// isSingleRotation decides between a single and a double rotation when
// rebalancing a heavy child: inner is the size of the grandchild adjacent
// to the rotation pivot, outer the size of the grandchild on the far side.
func isSingleRotation(inner, outer int) bool {
	return inner < 2*outer
}

func (b WBBalancer[T, A]) Join(l, r *Node[T, A], mid T, owner uint64) *Node[T, A] {
	ls, rs := size(l), size(r)

	switch {
	case like(ls, rs):
		n := &Node[T, A]{value: mid, left: l, right: r, transient: owner}
		b.Refresh(n)

		return n
	case leftHeavy(ls, rs):
		nl := ownedClone(l, owner, b.Aug)
		nl.right = b.Join(l.right, r, mid, owner)
		b.Refresh(nl)

		return b.balance(nl, owner)
	case leftHeavy(rs, ls):
		nr := ownedClone(r, owner, b.Aug)
		nr.left = b.Join(l, r.left, mid, owner)
		b.Refresh(nr)

		return b.balance(nr, owner)
	default:
		n := &Node[T, A]{value: mid, left: l, right: r, transient: owner}
		b.Refresh(n)

		return n
	}
}

// balance restores the weight-balance invariant at n, assuming both
// children already satisfy it.
func (b WBBalancer[T, A]) balance(n *Node[T, A], owner uint64) *Node[T, A] {
	ls, rs := size(n.left), size(n.right)
	if like(ls, rs) {
		return n
	}

	if leftHeavy(ls, rs) {
		l := n.left
		if isSingleRotation(size(l.right), size(l.left)) {
			return b.rotateRight(n, owner)
		}

		nn := ownedClone(n, owner, b.Aug)
		nn.left = b.rotateLeft(l, owner)
		b.Refresh(nn)

		return b.rotateRight(nn, owner)
	}

	r := n.right
	if isSingleRotation(size(r.left), size(r.right)) {
		return b.rotateLeft(n, owner)
	}

	nn := ownedClone(n, owner, b.Aug)
	nn.right = b.rotateRight(r, owner)
	b.Refresh(nn)

	return b.rotateLeft(nn, owner)
}

func (b WBBalancer[T, A]) rotateLeft(n *Node[T, A], owner uint64) *Node[T, A] {
	r := ownedClone(n.right, owner, b.Aug)
	nn := ownedClone(n, owner, b.Aug)
	nn.right = r.left
	r.left = nn
	b.Refresh(nn)
	b.Refresh(r)

	return r
}

func (b WBBalancer[T, A]) rotateRight(n *Node[T, A], owner uint64) *Node[T, A] {
	l := ownedClone(n.left, owner, b.Aug)
	nn := ownedClone(n, owner, b.Aug)
	nn.left = l.right
	l.right = nn
	b.Refresh(nn)
	b.Refresh(l)

	return l
}

func (b WBBalancer[T, A]) Validate(n *Node[T, A]) error {
	return validateWB(n)
}

func validateWB[T, A any](n *Node[T, A]) error {
	if n == nil {
		return nil
	}

	if err := validateWB(n.left); err != nil {
		return err
	}

	if err := validateWB(n.right); err != nil {
		return err
	}

	ls, rs := size(n.left), size(n.right)
	if ls+rs > 0 && !like(ls, rs) {
		return structureErrorf("wb weight ratio out of [1/4, 3/4] at key %v (left=%d, right=%d)", n.value, ls, rs)
	}

	return nil
}
