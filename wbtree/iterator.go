// Package wbtree provides a stateful, position-based iterator over Tree,
// adapting the joinable package's stack-based Iterator to the begin /
// between / end cursor model used by container.ReverseIteratorWithKey.
package wbtree

import (
	"errors"

	"github.com/qntx/jointree/container"
	"github.com/qntx/jointree/joinable"
)

type position byte

const (
	begin position = iota
	between
	end
)

// ErrInvalidIteratorPosition is the value Key and Value panic with when the
// iterator is not positioned at an element.
var ErrInvalidIteratorPosition = errors.New("wbtree: iterator accessed at invalid position")

var _ container.ReverseIteratorWithKey[string, int] = (*Iterator[string, int])(nil)

// Iterator provides forward and reverse traversal over a Tree's key-value
// pairs using the begin/between/end cursor model.
type Iterator[K comparable, V any] struct {
	it       *joinable.Iterator[entry[K, V], struct{}]
	position position
}

// Iterator creates a new iterator positioned before the first element.
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{it: t.core.Iterator(), position: begin}
}

// Next advances the iterator to the next element in ascending order.
// Returns true if the iterator lands on a valid element.
func (it *Iterator[K, V]) Next() bool {
	switch it.position {
	case end:
		return false
	case begin:
		if it.it.First() {
			it.position = between

			return true
		}

		it.position = end

		return false
	case between:
		if it.it.Succ() {
			return true
		}
	}

	it.position = end

	return false
}

// Prev retreats the iterator to the previous element in ascending order.
// Returns true if the iterator lands on a valid element.
func (it *Iterator[K, V]) Prev() bool {
	switch it.position {
	case begin:
		return false
	case end:
		if it.it.Last() {
			it.position = between

			return true
		}

		it.position = begin

		return false
	case between:
		if it.it.Pred() {
			return true
		}
	}

	it.position = begin

	return false
}

// Key returns the current element's key. Panics if not at a valid
// position.
func (it *Iterator[K, V]) Key() K {
	if it.position != between || !it.it.Valid() {
		panic(ErrInvalidIteratorPosition)
	}

	return it.it.Value().key
}

// Value returns the current element's value. Panics if not at a valid
// position.
func (it *Iterator[K, V]) Value() V {
	if it.position != between || !it.it.Valid() {
		panic(ErrInvalidIteratorPosition)
	}

	return it.it.Value().val
}

// Begin resets the iterator to before the first element.
func (it *Iterator[K, V]) Begin() { it.position = begin }

// End moves the iterator past the last element.
func (it *Iterator[K, V]) End() { it.position = end }

// First moves the iterator to the first element. Returns true if the
// tree is non-empty.
func (it *Iterator[K, V]) First() bool {
	it.Begin()

	return it.Next()
}

// Last moves the iterator to the last element. Returns true if the tree
// is non-empty.
func (it *Iterator[K, V]) Last() bool {
	it.End()

	return it.Prev()
}

// NextTo advances to the next element satisfying fn.
func (it *Iterator[K, V]) NextTo(fn func(key K, value V) bool) bool {
	for it.Next() {
		if fn(it.Key(), it.Value()) {
			return true
		}
	}

	return false
}

// PrevTo retreats to the previous element satisfying fn.
func (it *Iterator[K, V]) PrevTo(fn func(key K, value V) bool) bool {
	for it.Prev() {
		if fn(it.Key(), it.Value()) {
			return true
		}
	}

	return false
}
