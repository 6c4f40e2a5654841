// Package gen issues the transient generation tags that back copy-on-write
// sharing across the tree and vector packages.
//
// A tag identifies the exclusive owner of a node: a node may be mutated in
// place only by the holder of a matching tag, and any other holder must
// clone it first. The source itself holds no structural state beyond the
// counter; it is safe to share one Source across many trees and vectors, or
// to give each collection its own for reproducible generation sequences in
// tests.
package gen

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrOverflow is the value Next panics with when the 64-bit generation
// counter wraps around. A process that manages to issue 2^64 generations
// has a bug elsewhere, so this is fatal rather than returned.
var ErrOverflow = errors.New("gen: transient counter overflow")

// Source is a process-wide (or test-local) monotonic counter of generation
// tags. The zero value is ready to use and starts at tag 1, reserving 0 to
// mean "no generation" / "frozen forever" for nodes that should never be
// mutated in place (e.g. nodes produced by Copy into a read-only snapshot).
type Source struct {
	counter atomic.Uint64
}

// Frozen is the reserved tag meaning "never mutate in place." Nodes
// stamped with it always take the clone-before-write path.
const Frozen uint64 = 0

// Next atomically issues a fresh, previously-unused tag.
//
// Panics with ErrOverflow if the counter has been exhausted; this mirrors
// spec.md's "overflow is treated as fatal invariant violation" and the
// teacher corpus's convention of panicking on corrupted invariants (see
// avltree.Tree.Put's panic on comparator mismatch).
func (s *Source) Next() uint64 {
	v := s.counter.Add(1)
	if v == 0 {
		panic(fmt.Errorf("%w", ErrOverflow))
	}

	return v
}

// Default is the process-wide source used by collections constructed
// without an explicit Source.
var Default = &Source{}
