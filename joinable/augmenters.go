package joinable

// SizeAugmenter maintains a subtree element count as the monoidal tag,
// independent of the balancer's own size bookkeeping. It exists mainly to
// exercise the augmentation contract end to end through a second, visible
// channel (Node.Aug). treelist.List is built with it, but List.At selects
// through the balancer's size field and does not read this count.
type SizeAugmenter[T any] struct{}

func (SizeAugmenter[T]) Identity() int                { return 0 }
func (SizeAugmenter[T]) Value(T) int                  { return 1 }
func (SizeAugmenter[T]) Combine(left, middle, right int) int { return left + middle + right }
func (SizeAugmenter[T]) Clone(v T) T                  { return v }
