package joinable

// Merge resolves a pivot collision during Union or Intersection between two
// elements comparing equal under the trees' comparator: a (from the first
// operand) and b (from the second). The default (nil Merge passed to Union
// or Intersection) keeps a, matching a non-destructive "first operand
// wins" dictionary-union contract.
type Merge[T any] func(a, b T) T

// Union returns a tree containing every element of a or b (or both),
// built entirely from Split/Join/Join2 per spec.md section 4.7.
//
// owner controls the destructive/non-destructive choice spec.md's design
// notes leave open: pass a fresh transient tag (one neither a nor b's nodes
// carry) to get the non-destructive contract — a and b are left unchanged,
// since every touched node is cloned before mutation. Pass a's own current
// transient tag to opt into the destructive contract instead — nodes of a
// already owned by that tag are reused and mutated in place. Either way b
// is only ever read, never mutated, since Split/Join only write through
// freshly allocated or owner-owned nodes.
func Union[T, A any](a, b *Node[T, A], cmp Comparator[T], bal Balancer[T, A], merge Merge[T], owner uint64) *Node[T, A] {
	if a == nil {
		return b
	}

	if b == nil {
		return a
	}

	l, m, r := Split(a, b.value, cmp, bal, owner)

	lRes := Union(l, b.left, cmp, bal, merge, owner)
	rRes := Union(r, b.right, cmp, bal, merge, owner)

	pivot := b.value
	if m != nil && merge != nil {
		pivot = merge(*m, b.value)
	} else if m != nil {
		pivot = *m
	}

	return bal.Join(lRes, rRes, pivot, owner)
}

// Intersection returns a tree containing every element present in both a
// and b. owner works as in Union: with a fresh tag neither operand is
// mutated; with a's own transient tag, nodes of a owned by it are reused and
// mutated in place. b is only read.
func Intersection[T, A any](a, b *Node[T, A], cmp Comparator[T], bal Balancer[T, A], merge Merge[T], owner uint64) *Node[T, A] {
	if a == nil || b == nil {
		return nil
	}

	l, m, r := Split(a, b.value, cmp, bal, owner)

	lRes := Intersection(l, b.left, cmp, bal, merge, owner)
	rRes := Intersection(r, b.right, cmp, bal, merge, owner)

	if m == nil {
		return Join2(lRes, rRes, bal, owner)
	}

	pivot := *m
	if merge != nil {
		pivot = merge(*m, b.value)
	}

	return bal.Join(lRes, rRes, pivot, owner)
}

// Difference returns a tree containing every element of a that is not
// present in b. owner works as in Union: with a fresh tag neither operand
// is mutated; with a's own transient tag, nodes of a owned by it are reused
// and mutated in place. b is only read.
func Difference[T, A any](a, b *Node[T, A], cmp Comparator[T], bal Balancer[T, A], owner uint64) *Node[T, A] {
	if a == nil {
		return nil
	}

	if b == nil {
		return a
	}

	l, _, r := Split(a, b.value, cmp, bal, owner)

	lRes := Difference(l, b.left, cmp, bal, owner)
	rRes := Difference(r, b.right, cmp, bal, owner)

	return Join2(lRes, rRes, bal, owner)
}

// SetEquals reports whether a and b contain the same elements in the same
// order under cmp: equal size, and an element-wise in-order match.
func SetEquals[T, A any](a, b *Node[T, A], cmp Comparator[T]) bool {
	if size(a) != size(b) {
		return false
	}

	ia, ib := NewIterator(a, 0), NewIterator(b, 0)
	okA, okB := ia.First(), ib.First()

	for okA && okB {
		if cmp(ia.Value(), ib.Value()) != 0 {
			return false
		}

		okA, okB = ia.Succ(), ib.Succ()
	}

	return okA == okB
}
