package treeset

// Each invokes fn once for each element in ascending order, passing the
// element's index and value.
func (s *Set[T]) Each(fn func(index int, value T)) {
	i := 0
	for v := range s.Iter() {
		fn(i, v)
		i++
	}
}

// Any reports whether fn returns true for at least one element, stopping
// at the first match.
func (s *Set[T]) Any(fn func(index int, value T) bool) bool {
	i := 0
	for v := range s.Iter() {
		if fn(i, v) {
			return true
		}

		i++
	}

	return false
}

// All reports whether fn returns true for every element, stopping at the
// first failure.
func (s *Set[T]) All(fn func(index int, value T) bool) bool {
	i := 0
	for v := range s.Iter() {
		if !fn(i, v) {
			return false
		}

		i++
	}

	return true
}

// Find returns the first index and value for which fn returns true, or
// -1 and the zero value if no element matches.
func (s *Set[T]) Find(fn func(index int, value T) bool) (int, T) {
	i := 0
	for v := range s.Iter() {
		if fn(i, v) {
			return i, v
		}

		i++
	}

	var zero T

	return -1, zero
}

// Map invokes fn once for each element, in order, and returns a new set of
// the same discipline and comparator containing the returned values.
func (s *Set[T]) Map(fn func(index int, value T) T) *Set[T] {
	res := s.empty()

	i := 0
	for v := range s.Iter() {
		res.Add(fn(i, v))
		i++
	}

	return res
}

// Select returns a new set containing every element for which fn returns
// true.
func (s *Set[T]) Select(fn func(index int, value T) bool) *Set[T] {
	res := s.empty()

	i := 0
	for v := range s.Iter() {
		if fn(i, v) {
			res.Add(v)
		}

		i++
	}

	return res
}
