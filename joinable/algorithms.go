package joinable

import "fmt"

// Upsert inserts v if no element compares equal to it under cmp, or
// replaces the stored value in place if one does. Returns the new root and
// whether an equivalent element already existed.
func Upsert[T, A any](root *Node[T, A], v T, cmp Comparator[T], bal Balancer[T, A], owner uint64) (*Node[T, A], bool) {
	if root == nil {
		return newLeaf(v, bal, owner), false
	}

	switch c := cmp(v, root.value); {
	case c < 0:
		l, existed := Upsert(root.left, v, cmp, bal, owner)

		return bal.Join(l, root.right, root.value, owner), existed
	case c > 0:
		r, existed := Upsert(root.right, v, cmp, bal, owner)

		return bal.Join(root.left, r, root.value, owner), existed
	default:
		n := ownedClone(root, owner, bal.Augmenter())
		n.value = v
		bal.Refresh(n)

		return n, true
	}
}

// Insert inserts v only if no element compares equal to it under cmp.
// Returns the new root, the pre-existing equivalent element (zero value if
// none), and whether one was found. The tree is returned unchanged
// (sharing its root) when an equivalent element already exists.
func Insert[T, A any](root *Node[T, A], v T, cmp Comparator[T], bal Balancer[T, A], owner uint64) (*Node[T, A], T, bool) {
	if root == nil {
		return newLeaf(v, bal, owner), zero[T](), false
	}

	switch c := cmp(v, root.value); {
	case c < 0:
		l, old, existed := Insert(root.left, v, cmp, bal, owner)
		if existed {
			return root, old, true
		}

		return bal.Join(l, root.right, root.value, owner), old, false
	case c > 0:
		r, old, existed := Insert(root.right, v, cmp, bal, owner)
		if existed {
			return root, old, true
		}

		return bal.Join(root.left, r, root.value, owner), old, false
	default:
		return root, root.value, true
	}
}

// Delete removes the element comparing equal to k, if any. Returns the new
// root, the removed element, and whether one was found.
func Delete[T, A any](root *Node[T, A], k T, cmp Comparator[T], bal Balancer[T, A], owner uint64) (*Node[T, A], T, bool) {
	if root == nil {
		return nil, zero[T](), false
	}

	switch c := cmp(k, root.value); {
	case c < 0:
		l, old, found := Delete(root.left, k, cmp, bal, owner)
		if !found {
			return root, zero[T](), false
		}

		return bal.Join(l, root.right, root.value, owner), old, true
	case c > 0:
		r, old, found := Delete(root.right, k, cmp, bal, owner)
		if !found {
			return root, zero[T](), false
		}

		return bal.Join(root.left, r, root.value, owner), old, true
	default:
		return Join2(root.left, root.right, bal, owner), root.value, true
	}
}

// Find returns the element comparing equal to k, if any, leaving the tree
// untouched (read-only descent, no path recorded).
func Find[T, A any](root *Node[T, A], k T, cmp Comparator[T]) (T, bool) {
	n := root
	for n != nil {
		switch c := cmp(k, n.value); {
		case c == 0:
			return n.value, true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}

	return zero[T](), false
}

// Nth returns the element at in-order index i via rank-select over stored
// subtree sizes, or ErrIndexOutOfBounds if i is outside [0, Size(root)).
func Nth[T, A any](root *Node[T, A], i int) (T, error) {
	idx := i
	n := root
	for n != nil {
		l := size(n.left)

		switch {
		case i == l:
			return n.value, nil
		case i < l:
			n = n.left
		default:
			i -= l + 1
			n = n.right
		}
	}

	return zero[T](), fmt.Errorf("%w: index %d", ErrIndexOutOfBounds, idx)
}

// Split partitions root around k into (left < k, middle ==k or nil, right
// > k). middle is non-nil exactly when an element comparing equal to k was
// present.
func Split[T, A any](root *Node[T, A], k T, cmp Comparator[T], bal Balancer[T, A], owner uint64) (left *Node[T, A], middle *T, right *Node[T, A]) {
	if root == nil {
		return nil, nil, nil
	}

	switch c := cmp(k, root.value); {
	case c == 0:
		v := root.value

		return root.left, &v, root.right
	case c < 0:
		l, m, r := Split(root.left, k, cmp, bal, owner)

		return l, m, bal.Join(r, root.right, root.value, owner)
	default:
		l, m, r := Split(root.right, k, cmp, bal, owner)

		return bal.Join(root.left, l, root.value, owner), m, r
	}
}

// Join2 concatenates two key-disjoint trees without a pivot, by pulling the
// rightmost element of l out as the new pivot and joining through it.
func Join2[T, A any](l, r *Node[T, A], bal Balancer[T, A], owner uint64) *Node[T, A] {
	if l == nil {
		return r
	}

	if r == nil {
		return l
	}

	rest, maxVal := splitMax(l, bal, owner)

	return bal.Join(rest, r, maxVal, owner)
}

// splitMax removes and returns the rightmost element of n along with the
// tree that remains.
func splitMax[T, A any](n *Node[T, A], bal Balancer[T, A], owner uint64) (*Node[T, A], T) {
	if n.right == nil {
		return n.left, n.value
	}

	rest, maxVal := splitMax(n.right, bal, owner)

	return bal.Join(n.left, rest, n.value, owner), maxVal
}

// Copy deep-clones root under owner, cloning a node only where its current
// transient tag differs from owner; subtrees already exclusively owned by
// owner are returned as-is.
func Copy[T, A any](root *Node[T, A], owner uint64, bal Balancer[T, A]) *Node[T, A] {
	if root == nil {
		return nil
	}

	if root.transient == owner {
		return root
	}

	n := ownedClone(root, owner, bal.Augmenter())
	n.left = Copy(root.left, owner, bal)
	n.right = Copy(root.right, owner, bal)

	return n
}

// ValidateStructure checks BST order, size consistency, and the balance
// invariant of the discipline bal implements, returning the first
// ErrStructureViolation found (or nil).
func ValidateStructure[T, A any](root *Node[T, A], cmp Comparator[T], bal Balancer[T, A]) error {
	if err := validateOrderAndSize(root, cmp); err != nil {
		return err
	}

	return bal.Validate(root)
}

func validateOrderAndSize[T, A any](n *Node[T, A], cmp Comparator[T]) error {
	if n == nil {
		return nil
	}

	if err := validateOrderAndSize(n.left, cmp); err != nil {
		return err
	}

	if n.left != nil && cmp(n.left.value, n.value) >= 0 {
		return structureErrorf("left child %v not strictly less than %v", n.left.value, n.value)
	}

	if n.right != nil && cmp(n.right.value, n.value) <= 0 {
		return structureErrorf("right child %v not strictly greater than %v", n.right.value, n.value)
	}

	wantSize := 1 + size(n.left) + size(n.right)
	if int(n.size) != wantSize {
		return structureErrorf("size %d at key %v does not match computed %d", n.size, n.value, wantSize)
	}

	return validateOrderAndSize(n.right, cmp)
}

func zero[T any]() T {
	var z T

	return z
}
