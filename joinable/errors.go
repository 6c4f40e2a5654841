package joinable

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core algorithms. Adapter packages (avltree,
// wbtree, treelist, vector) either pass on the core's error as is (Nth) or
// wrap these with fmt.Errorf("%w: ...") at their own call sites (vector),
// rather than minting new sentinels, so a caller can test for e.g.
// ErrIndexOutOfBounds regardless of which adapter raised it.
var (
	// ErrIndexOutOfBounds is returned by Nth (and by adapters built on it)
	// when the requested index is outside [0, size).
	ErrIndexOutOfBounds = errors.New("joinable: index out of bounds")

	// ErrStructureViolation is returned only by ValidateStructure, and only
	// indicates a bug in a Balancer/Augmenter implementation or in the core
	// itself.
	ErrStructureViolation = errors.New("joinable: structure violation")
)

// structureErrorf wraps ErrStructureViolation with a formatted detail
// message, matching the teacher corpus's errors.New + fmt.Errorf("%w: ...")
// idiom (see rbtree.ErrInvalidKeyType).
func structureErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStructureViolation, fmt.Sprintf(format, args...))
}
