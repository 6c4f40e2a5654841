// Package vector implements a persistent dense vector over a bit-partitioned
// radix trie: component H of the joinable-tree corpus. Unlike the joinable
// package's node-per-element trees, the trie here branches on fixed-width
// index slices (external shift ES selects within a leaf, internal shift IS
// selects among a node's children) rather than on key comparison, giving
// O(log n) indexed get/set and O(1) amortized push/pop off a direct "tail"
// pointer.
//
// Vector shares the transient-tag copy-on-write discipline of joinable
// (internal/gen) instead of unconditional path-copying on every write: a
// node is cloned on a write only when its tag does not match the writer's
// current generation, so an exclusively-owned vector mutates in place
// while a forked one still shares untouched structure.
package vector

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/qntx/jointree/container"
	"github.com/qntx/jointree/internal/gen"
	"github.com/qntx/jointree/joinable"
)

// ErrIndexOutOfBounds is returned by Get, Set, and Pop when the requested
// index is outside [0, Len()), or Pop is called on an empty vector. Aliased
// from joinable so callers can test for the same sentinel regardless of
// which package raised it.
var ErrIndexOutOfBounds = joinable.ErrIndexOutOfBounds

// ErrStructureViolation is returned only by Validate.
var ErrStructureViolation = joinable.ErrStructureViolation

// ErrInvalidConfiguration is returned by New when the requested shift widths
// fall outside 2 <= ES <= IS <= 7.
var ErrInvalidConfiguration = errors.New("vector: invalid configuration")

// DefaultES and DefaultIS give both leaves and internal fan-out a width of
// 32 slots.
const (
	DefaultES = 5
	DefaultIS = 5
)

var (
	_ container.Container[int] = (*Vector[int])(nil)
	_ container.JSONCodec      = (*Vector[int])(nil)
)

// node is a trie cell. It holds either children (an internal node) or
// values (a leaf), never both. transient identifies the generation allowed
// to mutate it in place, exactly as joinable.Node.
type node[T any] struct {
	children  []*node[T]
	values    []T
	transient uint64
}

// Vector is a persistent, indexed sequence of T.
type Vector[T any] struct {
	count int
	depth int
	root  *node[T]

	tail    []T
	tailTag uint64

	es, is int

	transient uint64
	src       *gen.Source
}

// New creates an empty vector with external shift es and internal shift is,
// validating 2 <= es <= is <= 7. A nil src uses gen.Default.
func New[T any](es, is int, src *gen.Source) (*Vector[T], error) {
	if es < 2 || is > 7 || es > is {
		return nil, fmt.Errorf("%w: ES=%d IS=%d, want 2<=ES<=IS<=7", ErrInvalidConfiguration, es, is)
	}

	if src == nil {
		src = gen.Default
	}

	return &Vector[T]{es: es, is: is, src: src, transient: src.Next()}, nil
}

// NewDefault creates an empty vector using DefaultES/DefaultIS (always in
// range, so the error is never non-nil).
func NewDefault[T any]() *Vector[T] {
	v, err := New[T](DefaultES, DefaultIS, nil)
	if err != nil {
		panic(err)
	}

	return v
}

// Of creates a vector using the default configuration, pre-loaded with
// values in order.
func Of[T any](values ...T) *Vector[T] {
	v := NewDefault[T]()
	for _, x := range values {
		v.Push(x)
	}

	return v
}

func (v *Vector[T]) leafWidth() int     { return 1 << v.es }
func (v *Vector[T]) internalWidth() int { return 1 << v.is }
func (v *Vector[T]) leafMask() int      { return v.leafWidth() - 1 }
func (v *Vector[T]) internalMask() int  { return v.internalWidth() - 1 }

// idx extracts, from absolute index i, the slot selecting into a node at
// the given level: level 0 selects within a leaf (the low ES bits); level
// l >= 1 selects among a level-l internal node's children (the next IS
// bits up, counting from the ES boundary).
func (v *Vector[T]) idx(i, level int) int {
	if level == 0 {
		return i & v.leafMask()
	}

	return (i >> (v.es + (level-1)*v.is)) & v.internalMask()
}

// tailOffset is the number of elements held in the trie (everything not in
// the tail).
func (v *Vector[T]) tailOffset() int { return v.count - len(v.tail) }

// isDeepEnough reports whether the trie at the current depth still has
// room for one more leaf without growing the root.
func (v *Vector[T]) isDeepEnough(length int) bool {
	return (length >> v.es) <= 1<<(v.depth*v.is)
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.count }

// Size returns the number of elements, satisfying container.Container.
func (v *Vector[T]) Size() int { return v.count }

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool { return v.count == 0 }

// Clear removes every element. Previously shared nodes (e.g. from a Fork)
// are left untouched.
func (v *Vector[T]) Clear() {
	v.count = 0
	v.depth = 0
	v.root = nil
	v.tail = nil
	v.tailTag = 0
}

// Get returns the element at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	var zero T

	if i < 0 || i >= v.count {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, v.count)
	}

	if i >= v.tailOffset() {
		return v.tail[v.idx(i, 0)], nil
	}

	walk := v.root
	for level := v.depth; level >= 1; level-- {
		walk = walk.children[v.idx(i, level)]
	}

	return walk.values[v.idx(i, 0)], nil
}

// ownedNode returns n if it already carries owner's transient tag,
// otherwise a clone of n (children and values copied independently) tagged
// with owner. Mirrors joinable's ownedClone.
func ownedNode[T any](n *node[T], owner uint64) *node[T] {
	if n.transient == owner {
		return n
	}

	clone := &node[T]{transient: owner}
	if n.children != nil {
		clone.children = append([]*node[T](nil), n.children...)
	}

	if n.values != nil {
		clone.values = append([]T(nil), n.values...)
	}

	return clone
}

// ownedChild is ownedNode, but treats a nil n as an empty node freshly
// owned by owner rather than a panic — used while growing the trie.
func ownedChild[T any](n *node[T], owner uint64) *node[T] {
	if n == nil {
		return &node[T]{transient: owner}
	}

	return ownedNode(n, owner)
}

// ensureChild grows n.children, if necessary, so that index i is valid.
func ensureChild[T any](n *node[T], i int) {
	for len(n.children) <= i {
		n.children = append(n.children, nil)
	}
}

func setChild[T any](n *node[T], i int, child *node[T]) {
	ensureChild(n, i)
	n.children[i] = child
}

// Set replaces the element at index i, cloning only the path from the root
// whose nodes do not already carry this vector's transient tag.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.count {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, v.count)
	}

	if i >= v.tailOffset() {
		tail := v.ownTail()
		tail[v.idx(i, 0)] = x

		return nil
	}

	v.root = ownedNode(v.root, v.transient)
	walk := v.root

	for level := v.depth; level >= 1; level-- {
		idx := v.idx(i, level)
		walk.children[idx] = ownedNode(walk.children[idx], v.transient)
		walk = walk.children[idx]
	}

	walk.values[v.idx(i, 0)] = x

	return nil
}

// ownTail returns the tail slice, cloning it first if it does not already
// carry this vector's transient tag (e.g. right after a Fork).
func (v *Vector[T]) ownTail() []T {
	if v.tailTag == v.transient {
		return v.tail
	}

	clone := make([]T, len(v.tail), v.leafWidth())
	copy(clone, v.tail)
	v.tail = clone
	v.tailTag = v.transient

	return v.tail
}

// Push appends x. O(1) amortized: a write only ever touches the tail,
// except on the leaf boundary every 2^ES pushes, when the full tail sinks
// into the trie (O(log n), bounded by the depth the trie grows to).
func (v *Vector[T]) Push(x T) {
	lw := v.leafWidth()

	if len(v.tail) < lw {
		v.pushTail(x)
		return
	}

	newDepth := v.depth
	newRoot := v.root

	if v.root != nil && !v.isDeepEnough(v.count) {
		parent := &node[T]{transient: v.transient}
		setChild(parent, 0, v.root)
		newRoot = parent
		newDepth++
	}

	last := v.count - 1
	indirect := &newRoot

	for level := newDepth; level >= 1; level-- {
		*indirect = ownedChild(*indirect, v.transient)
		idx := v.idx(last, level)
		ensureChild(*indirect, idx)
		indirect = &(*indirect).children[idx]
	}

	*indirect = &node[T]{values: v.ownTail(), transient: v.transient}

	v.root = newRoot
	v.depth = newDepth
	v.tail = make([]T, 0, lw)
	v.tailTag = v.transient
	v.pushTail(x)
}

func (v *Vector[T]) pushTail(x T) {
	tail := v.ownTail()
	v.tail = append(tail, x)
	v.tailTag = v.transient
	v.count++
}

// Pop removes and returns the last element. When the tail empties as a
// result, the previous trailing leaf is detached from the trie and becomes
// the new tail, shrinking the root when it is left with a single child.
//
// Pop is the structural inverse of Push over the same index decomposition.
func (v *Vector[T]) Pop() (T, error) {
	var zero T

	if v.count == 0 {
		return zero, fmt.Errorf("%w: pop from an empty vector", ErrIndexOutOfBounds)
	}

	tail := v.ownTail()
	last := tail[len(tail)-1]
	v.tail = tail[:len(tail)-1]
	v.count--

	if len(v.tail) == 0 && v.count > 0 {
		v.tail = append([]T(nil), v.sinkLastLeaf()...)
		v.tailTag = v.transient
	}

	return last, nil
}

// sinkLastLeaf detaches the rightmost leaf of the trie, pruning any
// ancestor left childless by the removal and collapsing the root if it
// ends up with a single remaining child. Returns the detached leaf's
// values, which become the new tail.
func (v *Vector[T]) sinkLastLeaf() []T {
	if v.depth == 0 {
		leaf := v.root
		v.root = nil

		return leaf.values
	}

	i := v.count - 1

	path := make([]*node[T], v.depth+1)
	idxs := make([]int, v.depth+1)

	path[v.depth] = ownedNode(v.root, v.transient)

	for level := v.depth; level >= 1; level-- {
		idxs[level] = v.idx(i, level)
		if level == 1 {
			break
		}

		path[level-1] = ownedNode(path[level].children[idxs[level]], v.transient)
	}

	leaf := path[1].children[idxs[1]]
	path[1].children = path[1].children[:idxs[1]]

	for level := 1; level < v.depth; level++ {
		if len(path[level].children) > 0 {
			break
		}

		path[level+1].children = path[level+1].children[:idxs[level+1]]
	}

	v.root = path[v.depth]

	for v.depth > 0 && len(v.root.children) <= 1 {
		if len(v.root.children) == 0 {
			v.root = nil
			v.depth = 0

			break
		}

		v.root = v.root.children[0]
		v.depth--
	}

	return leaf.values
}

// Fork ends the current generation and returns a new, independent vector
// sharing all of v's current nodes. Both v and the returned fork acquire
// fresh transient tags; reads see identical values until a write, at which
// point only the written path is cloned.
func (v *Vector[T]) Fork() *Vector[T] {
	v.transient = v.src.Next()
	forkTransient := v.src.Next()

	return &Vector[T]{
		count:     v.count,
		depth:     v.depth,
		root:      v.root,
		tail:      v.tail,
		tailTag:   v.tailTag,
		es:        v.es,
		is:        v.is,
		transient: forkTransient,
		src:       v.src,
	}
}

// Values returns a slice of all elements, in order.
func (v *Vector[T]) Values() []T {
	values := make([]T, v.count)
	for i := range values {
		values[i], _ = v.Get(i)
	}

	return values
}

// Validate checks that the tail and trie sizes are internally consistent
// and that no leaf exceeds the configured width.
func (v *Vector[T]) Validate() error {
	if len(v.tail) > v.leafWidth() {
		return fmt.Errorf("%w: tail holds %d elements, want <= %d", ErrStructureViolation, len(v.tail), v.leafWidth())
	}

	if v.tailOffset()+len(v.tail) != v.count {
		return fmt.Errorf("%w: tail offset %d + tail length %d != count %d",
			ErrStructureViolation, v.tailOffset(), len(v.tail), v.count)
	}

	if v.count == 0 {
		return nil
	}

	held, err := v.validateNode(v.root, v.depth)
	if err != nil {
		return err
	}

	if held != v.tailOffset() {
		return fmt.Errorf("%w: trie holds %d elements, want %d", ErrStructureViolation, held, v.tailOffset())
	}

	return nil
}

func (v *Vector[T]) validateNode(n *node[T], level int) (int, error) {
	if n == nil {
		return 0, nil
	}

	if level == 0 {
		if len(n.values) > v.leafWidth() {
			return 0, fmt.Errorf("%w: leaf holds %d values, want <= %d", ErrStructureViolation, len(n.values), v.leafWidth())
		}

		return len(n.values), nil
	}

	total := 0

	for _, c := range n.children {
		sub, err := v.validateNode(c, level-1)
		if err != nil {
			return 0, err
		}

		total += sub
	}

	return total, nil
}

// MarshalJSON outputs the JSON representation of the vector.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Values())
}

// UnmarshalJSON populates the vector from the input JSON representation.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var elements []T

	if err := json.Unmarshal(data, &elements); err != nil {
		return fmt.Errorf("vector: unmarshal: %w", err)
	}

	v.Clear()
	for _, x := range elements {
		v.Push(x)
	}

	return nil
}

// String returns a string representation of the vector.
func (v *Vector[T]) String() string {
	var b strings.Builder

	b.WriteString("Vector\n")

	for _, x := range v.Values() {
		fmt.Fprintf(&b, "%v\n", x)
	}

	return b.String()
}
