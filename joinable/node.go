// Package joinable implements joinable balanced search trees: a single
// three-way Join primitive from which insertion, deletion, ordered split,
// ordered concatenation, set algebra, indexed access, and in-order iteration
// are all derived. Two balance disciplines — AVL (height rank) and
// weight-balanced (subtree size, alpha = 1/4) — implement the Join
// primitive; every other operation in this package is written once against
// the Balancer interface and shared between them.
//
// Per-node transient tags (see internal/gen) let the same tree serve as an
// ephemeral mutable collection or a fully persistent copy-on-write one
// without duplicating any algorithm: a write clones a node only when its
// transient tag does not match the writer's.
package joinable

// Node is the tagged tree cell shared by both balance disciplines.
//
// value holds the ordering key (and may embed any value-level payload, e.g.
// a dictionary's associated value, via T). aug is the monoidal augmentation
// tag for the subtree rooted at this node; trees with no augmentation
// instantiate A as struct{}. size is the number of nodes in the subtree,
// including this one; it is maintained regardless of balance discipline.
// rank is a balance metric whose meaning depends on the discipline: AVL
// height for AVLBalancer, always zero (kept for storage uniformity with
// AVL's Node, per spec's design notes) for WBBalancer. transient identifies
// the generation that may mutate this node in place.
type Node[T, A any] struct {
	value T
	aug   A

	left, right *Node[T, A]

	size      uint32
	rank      int16
	transient uint64
}

// Value returns the key (and any embedded payload) stored at this node.
func (n *Node[T, A]) Value() T {
	return n.value
}

// Aug returns the monoidal tag accumulated over this node's subtree.
func (n *Node[T, A]) Aug() A {
	return n.aug
}

// Left returns the left child, or nil if none exists.
func (n *Node[T, A]) Left() *Node[T, A] {
	if n == nil {
		return nil
	}

	return n.left
}

// Right returns the right child, or nil if none exists.
func (n *Node[T, A]) Right() *Node[T, A] {
	if n == nil {
		return nil
	}

	return n.right
}

// Size returns the number of nodes in the subtree rooted at n, or 0 for nil.
func (n *Node[T, A]) Size() int {
	return size(n)
}

// size reports the subtree size of n, treating nil as size 0.
func size[T, A any](n *Node[T, A]) int {
	if n == nil {
		return 0
	}

	return int(n.size)
}

// rankOf reports the stored rank of n, treating nil as NilRank (-1), the
// AVL convention for the height of an absent child. WBBalancer never reads
// this.
func rankOf[T, A any](n *Node[T, A]) int16 {
	if n == nil {
		return -1
	}

	return n.rank
}

// ownedClone returns n if it already carries owner's transient tag,
// otherwise a shallow clone carrying owner's tag. The value is cloned
// through the augmenter's Clone, which is the identity function unless the
// element type embeds mutable state that must not be shared across
// generations.
func ownedClone[T, A any](n *Node[T, A], owner uint64, aug Augmenter[T, A]) *Node[T, A] {
	if n.transient == owner {
		return n
	}

	return &Node[T, A]{
		value:     aug.Clone(n.value),
		aug:       n.aug,
		left:      n.left,
		right:     n.right,
		size:      n.size,
		rank:      n.rank,
		transient: owner,
	}
}

// newLeaf allocates a singleton node owned by owner and refreshes its
// bookkeeping fields through the balance strategy.
func newLeaf[T, A any](v T, bal Balancer[T, A], owner uint64) *Node[T, A] {
	n := &Node[T, A]{value: v, transient: owner}
	bal.Refresh(n)

	return n
}
