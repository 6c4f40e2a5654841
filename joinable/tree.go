package joinable

import (
	"fmt"
	"strings"

	"github.com/qntx/jointree/container"
	"github.com/qntx/jointree/internal/gen"
)

var _ container.Tree[int] = (*Tree[int, struct{}])(nil)

// Tree is a root link plus the owning generation's transient tag — the
// minimal persistent/ephemeral tree of spec.md section 3. A nil root
// represents the empty tree. Tree is the common engine behind the
// avltree, wbtree, treeset, and treelist adapters; it is exported so other
// packages can build further adapters without duplicating Join-based
// algorithms.
type Tree[T, A any] struct {
	root      *Node[T, A]
	len       int
	transient uint64
	cmp       Comparator[T]
	bal       Balancer[T, A]
	src       *gen.Source
}

// New creates an empty tree using bal as its balance discipline and src as
// its transient-tag source. Passing a nil src uses gen.Default, making the
// tree ephemeral-by-default (every operation keeps the same generation,
// mutating in place, until Fork is called).
func New[T, A any](cmp Comparator[T], bal Balancer[T, A], src *gen.Source) *Tree[T, A] {
	if src == nil {
		src = gen.Default
	}

	return &Tree[T, A]{cmp: cmp, bal: bal, src: src, transient: src.Next()}
}

// Root returns the tree's root node, or nil if empty. Exposed for adapters
// and the set-algebra helpers that need to operate on two trees' roots
// directly.
func (t *Tree[T, A]) Root() *Node[T, A] { return t.root }

// Len returns the number of elements in the tree.
func (t *Tree[T, A]) Len() int { return t.len }

// Comparator returns the tree's element comparator.
func (t *Tree[T, A]) Comparator() Comparator[T] { return t.cmp }

// Balancer returns the tree's balance discipline.
func (t *Tree[T, A]) Balancer() Balancer[T, A] { return t.bal }

// Upsert inserts v, replacing any equivalent element's stored value.
// Reports whether an equivalent element already existed.
func (t *Tree[T, A]) Upsert(v T) bool {
	root, existed := Upsert(t.root, v, t.cmp, t.bal, t.transient)
	t.root = root

	if !existed {
		t.len++
	}

	return existed
}

// Insert inserts v only if absent. Returns the pre-existing equivalent
// element and whether one was found; the tree is unchanged in that case.
func (t *Tree[T, A]) Insert(v T) (T, bool) {
	root, old, existed := Insert(t.root, v, t.cmp, t.bal, t.transient)
	t.root = root

	if !existed {
		t.len++
	}

	return old, existed
}

// Delete removes the element comparing equal to k. Returns the removed
// element and whether one was found.
func (t *Tree[T, A]) Delete(k T) (T, bool) {
	root, old, found := Delete(t.root, k, t.cmp, t.bal, t.transient)
	t.root = root

	if found {
		t.len--
	}

	return old, found
}

// Find returns the element comparing equal to k, if any.
func (t *Tree[T, A]) Find(k T) (T, bool) {
	return Find(t.root, k, t.cmp)
}

// Nth returns the element at in-order index i.
func (t *Tree[T, A]) Nth(i int) (T, error) {
	return Nth(t.root, i)
}

// Clear empties the tree. The discarded nodes are not mutated; any other
// tree still sharing them (via Fork) is unaffected.
func (t *Tree[T, A]) Clear() {
	t.root = nil
	t.len = 0
}

// Empty reports whether the tree has no elements, satisfying
// container.Container.
func (t *Tree[T, A]) Empty() bool { return t.len == 0 }

// Size returns the number of elements, satisfying container.Container.
func (t *Tree[T, A]) Size() int { return t.len }

// Values returns a slice of all elements, in ascending order.
func (t *Tree[T, A]) Values() []T {
	values := make([]T, 0, t.len)

	it := t.Iterator()
	for ok := it.First(); ok; ok = it.Succ() {
		values = append(values, it.Value())
	}

	return values
}

// String returns a string representation of the tree's elements, one per
// line, in ascending order.
func (t *Tree[T, A]) String() string {
	var b strings.Builder

	b.WriteString("Tree\n")

	for _, v := range t.Values() {
		fmt.Fprintf(&b, "%v\n", v)
	}

	return b.String()
}

// Validate checks every structural invariant of the tree.
func (t *Tree[T, A]) Validate() error {
	return ValidateStructure(t.root, t.cmp, t.bal)
}

// Fork ends the current generation and returns a new, independent tree
// sharing all of t's current nodes. Both t and the returned fork acquire
// fresh transient tags (spec.md section 4.4 rule 3): reads on either side
// see identical values until a write, at which point only the written path
// is cloned.
//
// If immediate is true, the fork additionally performs a full deep copy
// eagerly (rule 4), so that neither side retains any node shared with the
// other — useful when the caller knows it is about to issue many writes to
// both sides and wants to pay the cloning cost once, up front, rather than
// incrementally.
func (t *Tree[T, A]) Fork(immediate bool) *Tree[T, A] {
	t.transient = t.src.Next()
	forkTransient := t.src.Next()

	fork := &Tree[T, A]{
		root:      t.root,
		len:       t.len,
		transient: forkTransient,
		cmp:       t.cmp,
		bal:       t.bal,
		src:       t.src,
	}

	if immediate {
		t.root = Copy(t.root, t.transient, t.bal)
		fork.root = Copy(fork.root, fork.transient, fork.bal)
	}

	return fork
}

// Transient returns the tree's current transient tag: the owner argument
// callers pass to the package-level set-algebra functions (Union,
// Intersection, Difference) to opt into destructive, in-place reuse of
// this tree's already-owned nodes. Passing any other value instead keeps
// those functions non-destructive with respect to this tree.
func (t *Tree[T, A]) Transient() uint64 { return t.transient }

// Adopt replaces the tree's root with one built externally (typically the
// return value of Union, Intersection, Difference, Split, or Join2) and
// recomputes Len from it. Used by adapters that build a result tree via
// the package-level set-algebra helpers and then need a Tree to wrap it.
func (t *Tree[T, A]) Adopt(root *Node[T, A]) {
	t.root = root
	t.len = size(root)
}

// Iterator returns a fresh Iterator over the tree's current root.
// Concurrency: the returned Iterator is invalid once the tree is mutated;
// per spec.md section 4.6, behavior after such a mutation is unspecified.
func (t *Tree[T, A]) Iterator() *Iterator[T, A] {
	return NewIterator(t.root, 0)
}
