// Package wbtree implements an ordered key-value dictionary backed by the
// weight-balanced discipline of the shared joinable-tree core (Adams'
// algorithm: delta=3, ratio=2).
//
// All structural work — Join, Split, Join2, insertion, deletion, rank
// select, rotation, and structural validation — is delegated to the
// joinable package; this package only adapts dictionary-shaped calls
// (Put/Get/Delete/Floor/Ceiling/...) onto it and carries the weight-balance
// strategy and the key-only comparator.
//
// Reference: https://en.wikipedia.org/wiki/Weight-balanced_tree
package wbtree

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/qntx/jointree/cmp"
	"github.com/qntx/jointree/container"
	"github.com/qntx/jointree/joinable"
)

// ErrDuplicateKey is returned by PutStrict when the key already has a
// mapped value.
var ErrDuplicateKey = errors.New("wbtree: duplicate key")

// ErrKeyNotFound is the error MustGet panics with when the key is absent.
var ErrKeyNotFound = errors.New("wbtree: key not found")

// entry is the element type stored in the underlying joinable tree: a
// key-value pair ordered by key alone.
type entry[K comparable, V any] struct {
	key K
	val V
}

// Node is a read-only view of a single tree cell, returned by GetNode,
// Floor, and Ceiling. A nil *Node behaves like a "not found" sentinel:
// Size returns 0.
type Node[K comparable, V any] struct {
	n *joinable.Node[entry[K, V], struct{}]
}

// Key returns the key stored in the node.
func (n *Node[K, V]) Key() K { return n.n.Value().key }

// Value returns the value associated with the node's key.
func (n *Node[K, V]) Value() V { return n.n.Value().val }

// Size returns the number of nodes in the subtree rooted at this node, or
// 0 if n is nil.
func (n *Node[K, V]) Size() int {
	if n == nil {
		return 0
	}

	return n.n.Size()
}

func wrap[K comparable, V any](n *joinable.Node[entry[K, V], struct{}]) *Node[K, V] {
	if n == nil {
		return nil
	}

	return &Node[K, V]{n: n}
}

var _ container.Map[int, string] = (*Tree[int, string])(nil)

// Tree is a weight-balanced ordered map from K to V.
type Tree[K comparable, V any] struct {
	core *joinable.Tree[entry[K, V], struct{}]
	cmp  cmp.Comparator[K]
}

func entryCompare[K comparable, V any](kc cmp.Comparator[K]) cmp.Comparator[entry[K, V]] {
	return func(a, b entry[K, V]) int { return kc(a.key, b.key) }
}

// New creates an empty weight-balanced tree with a default comparator for
// ordered key types.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewWith[K, V](cmp.GenericComparator[K])
}

// NewWith creates an empty weight-balanced tree with a custom key
// comparator.
func NewWith[K comparable, V any](comparator cmp.Comparator[K]) *Tree[K, V] {
	bal := joinable.WBBalancer[entry[K, V], struct{}]{Aug: joinable.Plain[entry[K, V]]{}}

	return &Tree[K, V]{
		core: joinable.New[entry[K, V], struct{}](entryCompare[K, V](comparator), bal, nil),
		cmp:  comparator,
	}
}

// Put inserts or updates a key-value pair in the tree. Time complexity:
// O(log n).
func (t *Tree[K, V]) Put(key K, val V) {
	t.core.Upsert(entry[K, V]{key: key, val: val})
}

// Delete removes the node with the specified key from the tree. Returns
// true if a node was removed. Time complexity: O(log n).
func (t *Tree[K, V]) Delete(key K) bool {
	_, found := t.core.Delete(entry[K, V]{key: key})

	return found
}

// Remove removes the node with the specified key, satisfying
// container.Map.
func (t *Tree[K, V]) Remove(key K) { t.Delete(key) }

// PutStrict inserts a key-value pair only if the key is absent, returning
// ErrDuplicateKey (wrapped with the key) instead of overwriting an existing
// mapping.
func (t *Tree[K, V]) PutStrict(key K, val V) error {
	_, existed := t.core.Insert(entry[K, V]{key: key, val: val})
	if existed {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	return nil
}

// MustGet retrieves the value associated with key, panicking with
// ErrKeyNotFound if the key is absent.
func (t *Tree[K, V]) MustGet(key K) V {
	val, found := t.Get(key)
	if !found {
		panic(fmt.Errorf("%w: %v", ErrKeyNotFound, key))
	}

	return val
}

// Get retrieves the value associated with the specified key. Time
// complexity: O(log n).
func (t *Tree[K, V]) Get(key K) (val V, found bool) {
	e, found := t.core.Find(entry[K, V]{key: key})

	return e.val, found
}

// GetNode retrieves the node associated with the specified key, or nil if
// not found.
func (t *Tree[K, V]) GetNode(key K) *Node[K, V] {
	n := t.core.Root()
	for n != nil {
		switch c := t.cmp(key, n.Value().key); {
		case c == 0:
			return wrap(n)
		case c < 0:
			n = n.Left()
		default:
			n = n.Right()
		}
	}

	return nil
}

// Has checks if the specified key exists in the tree.
func (t *Tree[K, V]) Has(key K) bool {
	_, ok := t.Get(key)

	return ok
}

// GetBeginNode returns the node holding the smallest key, or nil if empty.
func (t *Tree[K, V]) GetBeginNode() *Node[K, V] {
	n := t.core.Root()
	if n == nil {
		return nil
	}

	for n.Left() != nil {
		n = n.Left()
	}

	return wrap(n)
}

// GetEndNode returns the node holding the largest key, or nil if empty.
func (t *Tree[K, V]) GetEndNode() *Node[K, V] {
	n := t.core.Root()
	if n == nil {
		return nil
	}

	for n.Right() != nil {
		n = n.Right()
	}

	return wrap(n)
}

// Floor finds the node with the largest key less than or equal to the
// given key.
func (t *Tree[K, V]) Floor(key K) (*Node[K, V], bool) {
	var floor *joinable.Node[entry[K, V], struct{}]

	n := t.core.Root()
	for n != nil {
		switch c := t.cmp(key, n.Value().key); {
		case c == 0:
			return wrap(n), true
		case c > 0:
			floor = n
			n = n.Right()
		default:
			n = n.Left()
		}
	}

	return wrap(floor), floor != nil
}

// Ceiling finds the node with the smallest key greater than or equal to
// the given key.
func (t *Tree[K, V]) Ceiling(key K) (*Node[K, V], bool) {
	var ceil *joinable.Node[entry[K, V], struct{}]

	n := t.core.Root()
	for n != nil {
		switch c := t.cmp(key, n.Value().key); {
		case c == 0:
			return wrap(n), true
		case c < 0:
			ceil = n
			n = n.Left()
		default:
			n = n.Right()
		}
	}

	return wrap(ceil), ceil != nil
}

// Keys returns all keys in ascending order. Time complexity: O(n).
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.core.Len())
	for k := range t.Iter() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns all values in key order. Time complexity: O(n).
func (t *Tree[K, V]) Values() []V {
	values := make([]V, 0, t.core.Len())
	for _, v := range t.Iter() {
		values = append(values, v)
	}

	return values
}

// KeysAndValues returns all keys and values in key order, traversing the
// tree only once.
func (t *Tree[K, V]) KeysAndValues() ([]K, []V) {
	keys := make([]K, 0, t.core.Len())
	vals := make([]V, 0, t.core.Len())

	for k, v := range t.Iter() {
		keys = append(keys, k)
		vals = append(vals, v)
	}

	return keys, vals
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int { return t.core.Len() }

// IsEmpty checks if the tree contains no entries.
func (t *Tree[K, V]) IsEmpty() bool { return t.core.Len() == 0 }

// Size returns the number of entries in the tree, satisfying
// container.Container.
func (t *Tree[K, V]) Size() int { return t.core.Len() }

// Empty reports whether the tree has no entries, satisfying
// container.Container.
func (t *Tree[K, V]) Empty() bool { return t.core.Len() == 0 }

// Clear removes all entries from the tree.
func (t *Tree[K, V]) Clear() { t.core.Clear() }

// Clone creates a persistent snapshot of the tree: both the receiver and
// the returned clone are independent from this point on, sharing nodes
// until either side writes (joinable.Tree.Fork).
func (t *Tree[K, V]) Clone() container.Map[K, V] {
	fork := t.core.Fork(false)

	return &Tree[K, V]{core: fork, cmp: t.cmp}
}

// Iter returns an in-order iterator over all key-value pairs.
func (t *Tree[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.core.Iterator()
		for ok := it.First(); ok; ok = it.Succ() {
			e := it.Value()
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// RIter returns a reverse in-order iterator over all key-value pairs.
func (t *Tree[K, V]) RIter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.core.Iterator()
		for ok := it.Last(); ok; ok = it.Pred() {
			e := it.Value()
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// At returns the key-value pair at in-order index i.
func (t *Tree[K, V]) At(i int) (K, V, error) {
	e, err := t.core.Nth(i)
	if err != nil {
		var zeroK K

		var zeroV V

		return zeroK, zeroV, err
	}

	return e.key, e.val, nil
}

// Validate checks every structural invariant (BST order, size
// consistency, weight-balance ratio) of the tree.
func (t *Tree[K, V]) Validate() error {
	return t.core.Validate()
}

// Comparator returns the tree's key comparator.
func (t *Tree[K, V]) Comparator() cmp.Comparator[K] { return t.cmp }

var (
	_ json.Marshaler   = (*Tree[string, int])(nil)
	_ json.Unmarshaler = (*Tree[string, int])(nil)
)

// MarshalJSON outputs the JSON representation of the tree.
func (t *Tree[K, V]) MarshalJSON() ([]byte, error) {
	elems := make(map[K]V, t.core.Len())
	for k, v := range t.Iter() {
		elems[k] = v
	}

	return json.Marshal(&elems)
}

// UnmarshalJSON populates the tree from the input JSON representation.
func (t *Tree[K, V]) UnmarshalJSON(data []byte) error {
	elems := make(map[K]V)

	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("wbtree: unmarshal: %w", err)
	}

	t.Clear()

	for key, value := range elems {
		t.Put(key, value)
	}

	return nil
}

// String returns a string representation of the tree.
func (t *Tree[K, V]) String() string {
	if t.IsEmpty() {
		return "WBTree[]"
	}

	var sb strings.Builder

	sb.WriteString("WBTree\n")
	output(t.core.Root(), "", true, &sb)

	return sb.String()
}

func output[K comparable, V any](n *joinable.Node[entry[K, V], struct{}], prefix string, isTail bool, sb *strings.Builder) {
	if n.Right() != nil {
		next := prefix
		if isTail {
			next += "│   "
		} else {
			next += "    "
		}

		output(n.Right(), next, false, sb)
	}

	sb.WriteString(prefix)

	if isTail {
		sb.WriteString("└── ")
	} else {
		sb.WriteString("┌── ")
	}

	fmt.Fprintf(sb, "%v\n", n.Value().key)

	if n.Left() != nil {
		next := prefix
		if isTail {
			next += "    "
		} else {
			next += "│   "
		}

		output(n.Left(), next, true, sb)
	}
}
