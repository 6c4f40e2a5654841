// Package testutil provides permutation and random-sequence generators
// shared by the joinable/avltree/wbtree/vector test suites.
//
// Generalized from the teacher corpus's GenerateRandomInts /
// GeneratePermutedInts to also produce the seven named permutation shapes
// used by the tree invariant tests: ascending, descending, balanced
// (recursive-midpoint order), zig-zag, shifted, bitonic, and a seeded
// random permutation.
package testutil

import (
	"math/rand"
	"time"
)

// GenerateRandomInts generates a slice of 'count' random integers,
// with each integer being in the range [0, maxVal).
func GenerateRandomInts(count int, maxVal int) []int {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // test data only
	nums := make([]int, count)

	for i := range nums {
		nums[i] = rng.Intn(maxVal)
	}

	return nums
}

// GeneratePermutedInts generates a slice of integers from 0 to count-1
// in a random order.
func GeneratePermutedInts(count int) []int {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // test data only

	return rng.Perm(count)
}

// Ascending returns [0, 1, ..., n-1].
func Ascending(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Descending returns [n-1, ..., 1, 0].
func Descending(n int) []int {
	p := Ascending(n)
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// Balanced returns a permutation of [0, n) that inserts the midpoint of
// each remaining range first, recursively — the order that keeps a naive
// unbalanced BST perfectly balanced by construction.
func Balanced(n int) []int {
	out := make([]int, 0, n)

	var rec func(lo, hi int)

	rec = func(lo, hi int) {
		if lo > hi {
			return
		}

		mid := lo + (hi-lo)/2
		out = append(out, mid)
		rec(lo, mid-1)
		rec(mid+1, hi)
	}

	rec(0, n-1)

	return out
}

// ZigZag returns a permutation alternating low and high remaining values:
// 0, n-1, 1, n-2, 2, n-3, ...
func ZigZag(n int) []int {
	out := make([]int, 0, n)

	lo, hi := 0, n-1
	for lo <= hi {
		out = append(out, lo)

		lo++
		if lo > hi {
			break
		}

		out = append(out, hi)
		hi--
	}

	return out
}

// Shifted returns the ascending permutation rotated by n/3 positions.
func Shifted(n int) []int {
	p := Ascending(n)
	if n == 0 {
		return p
	}

	k := n / 3

	return append(append([]int{}, p[k:]...), p[:k]...)
}

// Bitonic returns the even values of [0, n) ascending, followed by the odd
// values descending.
func Bitonic(n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i += 2 {
		out = append(out, i)
	}

	odd := n - 1
	if odd >= 0 && odd%2 == 0 {
		odd--
	}

	for i := odd; i > 0; i -= 2 {
		out = append(out, i)
	}

	return out
}

// SeededRandom returns a reproducible pseudo-random permutation of [0, n)
// using the given seed.
func SeededRandom(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))

	return rng.Perm(n)
}

// Permutations returns the seven named permutation shapes of spec.md
// section 8 scenarios 1/2, each a permutation of [0, n).
func Permutations(n int) map[string][]int {
	return map[string][]int{
		"ascending":  Ascending(n),
		"descending": Descending(n),
		"balanced":   Balanced(n),
		"zigzag":     ZigZag(n),
		"shifted":    Shifted(n),
		"bitonic":    Bitonic(n),
		"random3141": SeededRandom(n, 3141),
	}
}
