package joinable

// AVLBalancer implements Balancer using height rank: the stored rank is
// 1+max(height(left), height(right)), and Join descends the taller spine
// until it finds a subtree within one level of the shorter side, rebuilds
// bottom-up, and rotates at most once per level on the way back up.
//
// Grounded on the rotation shapes of avltree.Tree (rotateLeft/rotateRight,
// the LL/LR/RL/RR rebalance cases), adapted from a parent-pointer mutable
// tree to a join-based functional one: instead of walking up via parent
// pointers after a leaf insert, the recursive Join descent itself plays the
// role of "walk toward the insertion point," and rebalancing happens as the
// recursion unwinds.
type AVLBalancer[T, A any] struct {
	Aug Augmenter[T, A]
}

// NilRank is the height convention for an absent child.
const NilRank int16 = -1

func (b AVLBalancer[T, A]) Augmenter() Augmenter[T, A] { return b.Aug }

func (b AVLBalancer[T, A]) Refresh(n *Node[T, A]) {
	n.size = uint32(size(n.left) + size(n.right) + 1) //nolint:gosec // capped by spec's 32-bit subtree-size non-goal
	n.rank = 1 + max(rankOf(n.left), rankOf(n.right))
	n.aug = b.Aug.Combine(aug(n.left, b.Aug), b.Aug.Value(n.value), aug(n.right, b.Aug))
}

func (b AVLBalancer[T, A]) Join(l, r *Node[T, A], mid T, owner uint64) *Node[T, A] {
	lh, rh := rankOf(l), rankOf(r)

	switch {
	case lh > rh+1:
		nl := ownedClone(l, owner, b.Aug)
		nl.right = b.Join(l.right, r, mid, owner)
		b.Refresh(nl)

		return b.rebalance(nl, owner)
	case rh > lh+1:
		nr := ownedClone(r, owner, b.Aug)
		nr.left = b.Join(l, r.left, mid, owner)
		b.Refresh(nr)

		return b.rebalance(nr, owner)
	default:
		n := &Node[T, A]{value: mid, left: l, right: r, transient: owner}
		b.Refresh(n)

		return n
	}
}

// rebalance restores the AVL invariant at n, assuming both children already
// satisfy it (true after a single Join recursion step, since only the
// spine touched by the recursive call can have become unbalanced, and by at
// most one level).
func (b AVLBalancer[T, A]) rebalance(n *Node[T, A], owner uint64) *Node[T, A] {
	bf := rankOf(n.right) - rankOf(n.left)
	if bf >= -1 && bf <= 1 {
		return n
	}

	if bf < -1 { // left-heavy
		l := n.left
		if rankOf(l.right)-rankOf(l.left) > 0 {
			nn := ownedClone(n, owner, b.Aug)
			nn.left = b.rotateLeft(l, owner)
			b.Refresh(nn)

			return b.rotateRight(nn, owner)
		}

		return b.rotateRight(n, owner)
	}

	// right-heavy
	r := n.right
	if rankOf(r.left)-rankOf(r.right) > 0 {
		nn := ownedClone(n, owner, b.Aug)
		nn.right = b.rotateRight(r, owner)
		b.Refresh(nn)

		return b.rotateLeft(nn, owner)
	}

	return b.rotateLeft(n, owner)
}

func (b AVLBalancer[T, A]) rotateLeft(n *Node[T, A], owner uint64) *Node[T, A] {
	r := ownedClone(n.right, owner, b.Aug)
	nn := ownedClone(n, owner, b.Aug)
	nn.right = r.left
	r.left = nn
	b.Refresh(nn)
	b.Refresh(r)

	return r
}

func (b AVLBalancer[T, A]) rotateRight(n *Node[T, A], owner uint64) *Node[T, A] {
	l := ownedClone(n.left, owner, b.Aug)
	nn := ownedClone(n, owner, b.Aug)
	nn.left = l.right
	l.right = nn
	b.Refresh(nn)
	b.Refresh(l)

	return l
}

func (b AVLBalancer[T, A]) Validate(n *Node[T, A]) error {
	_, err := validateAVL(n)

	return err
}

// validateAVL recomputes height bottom-up and checks both the balance
// factor and the stored rank against it, returning the recomputed height.
func validateAVL[T, A any](n *Node[T, A]) (int16, error) {
	if n == nil {
		return NilRank, nil
	}

	lh, err := validateAVL(n.left)
	if err != nil {
		return 0, err
	}

	rh, err := validateAVL(n.right)
	if err != nil {
		return 0, err
	}

	bf := rh - lh
	if bf < -1 || bf > 1 {
		return 0, structureErrorf("avl balance factor %d out of range at key %v", bf, n.value)
	}

	h := 1 + max(lh, rh)
	if n.rank != h {
		return 0, structureErrorf("avl stored rank %d does not match computed height %d at key %v", n.rank, h, n.value)
	}

	return h, nil
}

func aug[T, A any](n *Node[T, A], a Augmenter[T, A]) A {
	if n == nil {
		return a.Identity()
	}

	return n.aug
}
