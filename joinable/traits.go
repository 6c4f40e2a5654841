package joinable

import "github.com/qntx/jointree/cmp"

// Comparator orders values of type T. It must be a deterministic, total
// order: exactly one of Comparator(a,b)<0, ==0, >0 holds for any a, b.
type Comparator[T any] = cmp.Comparator[T]

// Augmenter bundles the per-element value traits of spec.md section 4.1:
// cloning (for copy-on-write) and monoidal tag combination (for subtree
// augmentation). A is the aggregate tag type; trees that carry no
// augmentation beyond the structural bookkeeping in Node use A = struct{}
// via Plain.
type Augmenter[T, A any] interface {
	// Identity returns the identity element of the monoid — the tag of an
	// absent (nil) child.
	Identity() A

	// Value lifts a single element's own contribution to the tag, ignoring
	// its children.
	Value(v T) A

	// Combine recomputes a node's tag from its children's tags (left,
	// right) and its own contribution (middle), which Value already
	// produced. Must be associative with Identity as the identity element.
	Combine(left, middle, right A) A

	// Clone returns a value safe to mutate independently of v. Defaults to
	// the identity function for element types with no mutable embedded
	// state; called whenever a node is physically cloned under a new
	// transient tag.
	Clone(v T) T
}

// Plain is the zero-augmentation Augmenter: its tag carries no information
// beyond the tree's own structural fields, and Clone is the identity
// function. Dictionaries and sets that need no order-statistic or subtree
// aggregate use Plain.
type Plain[T any] struct{}

func (Plain[T]) Identity() struct{}                         { return struct{}{} }
func (Plain[T]) Value(T) struct{}                           { return struct{}{} }
func (Plain[T]) Combine(struct{}, struct{}, struct{}) struct{} { return struct{}{} }
func (Plain[T]) Clone(v T) T                                { return v }

// Balancer is the balance-discipline strategy: the one place AVL and
// weight-balanced trees differ. Every other algorithm in this package
// (Split, Join2, Insert, Delete, Find, Nth, Copy, the Iterator, and the set
// algebra) is written once against Balancer and shared between the two
// disciplines.
type Balancer[T, A any] interface {
	// Augmenter returns the value traits this balancer was constructed
	// with, so balancer-agnostic helpers (Upsert, Copy) can clone values
	// without duplicating the augmenter on every call site.
	Augmenter() Augmenter[T, A]

	// Join produces a balanced tree whose in-order sequence is (l, mid, r),
	// given that l and r are already balanced under this discipline and
	// every value in l precedes mid precedes every value in r. Join may
	// reuse or clone nodes of l, r subject to the transient-tag discipline:
	// a node is mutated in place only if it already carries owner's tag.
	Join(l, r *Node[T, A], mid T, owner uint64) *Node[T, A]

	// Refresh recomputes size, rank, and the augmentation tag of n from its
	// current children and value, in place. Callers must only invoke this
	// on a node already owned by the generation doing the mutation.
	Refresh(n *Node[T, A])

	// Validate checks the balance invariant for the subtree rooted at n
	// (height/balance-factor for AVL, weight ratio for WB), returning
	// ErrStructureViolation (wrapped with context) on the first violation
	// found, or nil if n (and recursively its subtrees) are well-formed.
	// Does not check BST order or size consistency; those are universal
	// and checked once by ValidateStructure regardless of discipline.
	Validate(n *Node[T, A]) error
}
