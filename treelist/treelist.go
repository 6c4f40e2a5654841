// Package treelist provides an ordered sequence of comparable elements that
// is also a constant-time-count, O(log n)-indexed list: a sequence view
// (add/remove/contains/in-order enumeration) plus an indexed-read view
// (At(i) via joinable.Nth), per spec.md section 4.8's "indexed read-only
// view: constant-time count, O(log n) [i] via nth."
//
// Unlike avltree/wbtree/treeset, List augments with joinable.SizeAugmenter
// instead of Plain, so every node's Aug also holds its subtree count. At
// does not read that count: it selects through joinable.Nth, which uses the
// balancer's own subtree size field.
package treelist

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/qntx/jointree/cmp"
	"github.com/qntx/jointree/container"
	"github.com/qntx/jointree/joinable"
)

var (
	_ container.Container[int]           = (*List[int])(nil)
	_ container.EnumerableWithIndex[int] = (*List[int])(nil)
	_ container.JSONCodec                = (*List[int])(nil)
)

// List is an ordered sequence of elements with no duplicates, stored
// directly as the joinable tree's element type.
type List[T any] struct {
	core *joinable.Tree[T, int]
}

func avlBalancer[T any]() joinable.Balancer[T, int] {
	return joinable.AVLBalancer[T, int]{Aug: joinable.SizeAugmenter[T]{}}
}

func wbBalancer[T any]() joinable.Balancer[T, int] {
	return joinable.WBBalancer[T, int]{Aug: joinable.SizeAugmenter[T]{}}
}

// NewAVL creates an empty AVL-balanced list for ordered element types, with
// optional initial values.
func NewAVL[T cmp.Ordered](values ...T) *List[T] {
	return NewAVLWith(cmp.GenericComparator[T], values...)
}

// NewAVLWith creates an empty AVL-balanced list with a custom comparator.
func NewAVLWith[T any](comparator cmp.Comparator[T], values ...T) *List[T] {
	l := &List[T]{core: joinable.New[T, int](comparator, avlBalancer[T](), nil)}
	l.Add(values...)

	return l
}

// NewWB creates an empty weight-balanced list for ordered element types,
// with optional initial values.
func NewWB[T cmp.Ordered](values ...T) *List[T] {
	return NewWBWith(cmp.GenericComparator[T], values...)
}

// NewWBWith creates an empty weight-balanced list with a custom comparator.
func NewWBWith[T any](comparator cmp.Comparator[T], values ...T) *List[T] {
	l := &List[T]{core: joinable.New[T, int](comparator, wbBalancer[T](), nil)}
	l.Add(values...)

	return l
}

// New creates an empty list for ordered element types, defaulting to the
// AVL discipline.
func New[T cmp.Ordered](values ...T) *List[T] {
	return NewAVL(values...)
}

// NewWith creates an empty list with a custom comparator, defaulting to the
// AVL discipline.
func NewWith[T any](comparator cmp.Comparator[T], values ...T) *List[T] {
	return NewAVLWith(comparator, values...)
}

// Add inserts values into the list, keeping order and skipping any already
// present. Reports how many were actually added.
func (l *List[T]) Add(values ...T) int {
	added := 0

	for _, v := range values {
		if _, existed := l.core.Insert(v); !existed {
			added++
		}
	}

	return added
}

// Remove deletes values from the list. Reports how many were actually
// present and removed.
func (l *List[T]) Remove(values ...T) int {
	removed := 0

	for _, v := range values {
		if _, found := l.core.Delete(v); found {
			removed++
		}
	}

	return removed
}

// Contains checks if all specified values are present in the list. Returns
// true if no values are provided.
func (l *List[T]) Contains(values ...T) bool {
	for _, v := range values {
		if _, ok := l.core.Find(v); !ok {
			return false
		}
	}

	return true
}

// Len returns the number of elements in the list. Constant time.
func (l *List[T]) Len() int { return l.core.Len() }

// Size returns the number of elements in the list, satisfying
// container.Container.
func (l *List[T]) Size() int { return l.core.Len() }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.core.Len() == 0 }

// Clear removes every element from the list.
func (l *List[T]) Clear() { l.core.Clear() }

// At returns the element at in-order index i. O(log n).
func (l *List[T]) At(i int) (T, error) { return l.core.Nth(i) }

// Values returns a slice of all elements, in order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.core.Len())
	for v := range l.Iter() {
		values = append(values, v)
	}

	return values
}

// Iter returns an iterator over all elements in ascending order.
func (l *List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.core.Iterator()
		for ok := it.First(); ok; ok = it.Succ() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// RIter returns an iterator over all elements in descending order.
func (l *List[T]) RIter() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.core.Iterator()
		for ok := it.Last(); ok; ok = it.Pred() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Validate checks every structural invariant of the underlying tree.
func (l *List[T]) Validate() error { return l.core.Validate() }

// Clone creates a persistent snapshot of the list: both the receiver and
// the returned clone are independent from this point on, sharing nodes
// until either side writes (joinable.Tree.Fork).
func (l *List[T]) Clone() *List[T] {
	return &List[T]{core: l.core.Fork(false)}
}

// Each invokes fn once for each element in ascending order, passing the
// element's index and value.
func (l *List[T]) Each(fn func(index int, value T)) {
	i := 0
	for v := range l.Iter() {
		fn(i, v)
		i++
	}
}

// Any reports whether fn returns true for at least one element.
func (l *List[T]) Any(fn func(index int, value T) bool) bool {
	i := 0
	for v := range l.Iter() {
		if fn(i, v) {
			return true
		}

		i++
	}

	return false
}

// All reports whether fn returns true for every element.
func (l *List[T]) All(fn func(index int, value T) bool) bool {
	i := 0
	for v := range l.Iter() {
		if !fn(i, v) {
			return false
		}

		i++
	}

	return true
}

// Find returns the first index and value for which fn returns true, or -1
// and the zero value if no element matches.
func (l *List[T]) Find(fn func(index int, value T) bool) (int, T) {
	i := 0
	for v := range l.Iter() {
		if fn(i, v) {
			return i, v
		}

		i++
	}

	var zero T

	return -1, zero
}

// MarshalJSON outputs the JSON representation of the list.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Values())
}

// UnmarshalJSON populates the list from the input JSON representation.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var elements []T

	if err := json.Unmarshal(data, &elements); err != nil {
		return fmt.Errorf("treelist: unmarshal: %w", err)
	}

	l.Clear()
	l.Add(elements...)

	return nil
}

// String returns a string representation of the list.
func (l *List[T]) String() string {
	var b strings.Builder

	b.WriteString("TreeList\n")

	for v := range l.Iter() {
		fmt.Fprintf(&b, "%v\n", v)
	}

	return b.String()
}
