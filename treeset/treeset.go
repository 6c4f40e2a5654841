// Package treeset provides an ordered set of comparable elements, backed by
// whichever balance discipline the caller selects for the shared
// joinable-tree core (NewAVL or NewWB). Union, Intersection, and Difference
// are delegated straight to the package-level, Split/Join-based set algebra
// instead of iterate-and-reinsert, so they inherit its O(m·log(n/m+1)) cost
// bound.
package treeset

import (
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/qntx/jointree/cmp"
	"github.com/qntx/jointree/container"
	"github.com/qntx/jointree/joinable"
)

var (
	_ container.Container[int]           = (*Set[int])(nil)
	_ container.EnumerableWithIndex[int] = (*Set[int])(nil)
	_ container.JSONCodec                = (*Set[int])(nil)
)

// Set is an ordered set of elements, stored directly as the joinable tree's
// element type (no key/value wrapper is needed since the element IS the
// value being compared).
type Set[T any] struct {
	core *joinable.Tree[T, struct{}]
}

func avlBalancer[T any]() joinable.Balancer[T, struct{}] {
	return joinable.AVLBalancer[T, struct{}]{Aug: joinable.Plain[T]{}}
}

func wbBalancer[T any]() joinable.Balancer[T, struct{}] {
	return joinable.WBBalancer[T, struct{}]{Aug: joinable.Plain[T]{}}
}

// NewAVL creates an empty AVL-balanced set for ordered element types, with
// optional initial values.
func NewAVL[T cmp.Ordered](values ...T) *Set[T] {
	return NewAVLWith(cmp.GenericComparator[T], values...)
}

// NewAVLWith creates an empty AVL-balanced set with a custom comparator.
func NewAVLWith[T any](comparator cmp.Comparator[T], values ...T) *Set[T] {
	s := &Set[T]{core: joinable.New[T, struct{}](comparator, avlBalancer[T](), nil)}
	s.Add(values...)

	return s
}

// NewWB creates an empty weight-balanced set for ordered element types, with
// optional initial values.
func NewWB[T cmp.Ordered](values ...T) *Set[T] {
	return NewWBWith(cmp.GenericComparator[T], values...)
}

// NewWBWith creates an empty weight-balanced set with a custom comparator.
func NewWBWith[T any](comparator cmp.Comparator[T], values ...T) *Set[T] {
	s := &Set[T]{core: joinable.New[T, struct{}](comparator, wbBalancer[T](), nil)}
	s.Add(values...)

	return s
}

// New creates an empty set for ordered element types, defaulting to the
// AVL discipline.
func New[T cmp.Ordered](values ...T) *Set[T] {
	return NewAVL(values...)
}

// NewWith creates an empty set with a custom comparator, defaulting to the
// AVL discipline.
func NewWith[T any](comparator cmp.Comparator[T], values ...T) *Set[T] {
	return NewAVLWith(comparator, values...)
}

// Add inserts one or more elements into the set.
func (s *Set[T]) Add(values ...T) {
	for _, v := range values {
		s.core.Upsert(v)
	}
}

// Remove deletes one or more elements from the set.
func (s *Set[T]) Remove(values ...T) {
	for _, v := range values {
		s.core.Delete(v)
	}
}

// Contains checks if all specified elements are present in the set. Returns
// true if no elements are provided, as a set is a superset of an empty set.
func (s *Set[T]) Contains(values ...T) bool {
	for _, v := range values {
		if _, ok := s.core.Find(v); !ok {
			return false
		}
	}

	return true
}

// Empty reports whether the set contains no elements.
func (s *Set[T]) Empty() bool { return s.core.Len() == 0 }

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int { return s.core.Len() }

// Size returns the number of elements in the set, satisfying
// container.Container.
func (s *Set[T]) Size() int { return s.core.Len() }

// Clear removes all elements from the set.
func (s *Set[T]) Clear() { s.core.Clear() }

// Values returns a slice of all elements in the set, in order.
func (s *Set[T]) Values() []T {
	values := make([]T, 0, s.core.Len())
	for v := range s.Iter() {
		values = append(values, v)
	}

	return values
}

// At returns the element at in-order index i.
func (s *Set[T]) At(i int) (T, error) { return s.core.Nth(i) }

// Iter returns an iterator over all elements in ascending order.
func (s *Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.core.Iterator()
		for ok := it.First(); ok; ok = it.Succ() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Validate checks every structural invariant of the underlying tree.
func (s *Set[T]) Validate() error { return s.core.Validate() }

// Clone creates a persistent snapshot of the set: both the receiver and the
// returned clone are independent from this point on, sharing nodes until
// either side writes (joinable.Tree.Fork).
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{core: s.core.Fork(false)}
}

// MarshalJSON outputs the JSON representation of the set.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON populates the set from the input JSON representation.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var elements []T

	if err := json.Unmarshal(data, &elements); err != nil {
		return fmt.Errorf("treeset: unmarshal: %w", err)
	}

	s.Clear()
	s.Add(elements...)

	return nil
}

// String returns a string representation of the set.
func (s *Set[T]) String() string {
	var b strings.Builder

	b.WriteString("TreeSet\n")

	for v := range s.Iter() {
		fmt.Fprintf(&b, "%v\n", v)
	}

	return b.String()
}

// sameComparator reports whether s and other were built with the identical
// comparator function, the precondition for the Join-based set-algebra
// operations below to produce a meaningful result.
func sameComparator[T any](s, other *Set[T]) bool {
	return reflect.ValueOf(s.core.Comparator()).Pointer() == reflect.ValueOf(other.core.Comparator()).Pointer()
}

func (s *Set[T]) empty() *Set[T] {
	return &Set[T]{core: joinable.New[T, struct{}](s.core.Comparator(), s.core.Balancer(), nil)}
}

// Union returns a new set containing every element of s or other (or both).
// Returns an empty set if the two sets' comparators differ.
//
// Ref: https://en.wikipedia.org/wiki/Union_(set_theory)
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	res := s.empty()
	if !sameComparator(s, other) {
		return res
	}

	root := joinable.Union(s.core.Root(), other.core.Root(), s.core.Comparator(), s.core.Balancer(), nil, res.core.Transient())
	res.core.Adopt(root)

	return res
}

// Intersection returns a new set containing only the elements present in
// both s and other. Returns an empty set if the two sets' comparators
// differ.
//
// Ref: https://en.wikipedia.org/wiki/Intersection_(set_theory)
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	res := s.empty()
	if !sameComparator(s, other) {
		return res
	}

	root := joinable.Intersection(s.core.Root(), other.core.Root(), s.core.Comparator(), s.core.Balancer(), nil, res.core.Transient())
	res.core.Adopt(root)

	return res
}

// Difference returns a new set containing every element of s not present
// in other. Returns an empty set if the two sets' comparators differ.
//
// Ref: https://proofwiki.org/wiki/Definition:Set_Difference
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	res := s.empty()
	if !sameComparator(s, other) {
		return res
	}

	root := joinable.Difference(s.core.Root(), other.core.Root(), s.core.Comparator(), s.core.Balancer(), res.core.Transient())
	res.core.Adopt(root)

	return res
}

// SetEquals reports whether s and other contain the same elements. Sets
// built with different comparators are never equal.
func (s *Set[T]) SetEquals(other *Set[T]) bool {
	if !sameComparator(s, other) {
		return false
	}

	return joinable.SetEquals(s.core.Root(), other.core.Root(), s.core.Comparator())
}

// IsSubset reports whether every element of s is also in other, checked by
// probing other for each of s's elements (iterating the smaller side).
func (s *Set[T]) IsSubset(other *Set[T]) bool {
	if s.Len() > other.Len() {
		return false
	}

	for v := range s.Iter() {
		if !other.Contains(v) {
			return false
		}
	}

	return true
}

// IsSuperset reports whether every element of other is also in s.
func (s *Set[T]) IsSuperset(other *Set[T]) bool {
	return other.IsSubset(s)
}

// Overlaps reports whether s and other share at least one element, probing
// the smaller set's elements against the larger.
func (s *Set[T]) Overlaps(other *Set[T]) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}

	for v := range small.Iter() {
		if large.Contains(v) {
			return true
		}
	}

	return false
}
