package wbtree_test

import (
	"sort"
	"testing"

	"github.com/qntx/jointree/wbtree"
)

const (
	defaultSize = 5000 // Default benchmark size for consistent testing
)

// BenchmarkWBTree measures the performance of weight-balanced tree operations.
// It tests insertion and key retrieval separately for clarity.
func BenchmarkWBTree(b *testing.B) {
	b.Run("Insert", func(b *testing.B) {
		for range b.N {
			t := wbtree.New[int, struct{}]()
			for i := range defaultSize {
				t.Put(i, struct{}{})
			}
		}
	})

	t := wbtree.New[int, struct{}]()
	for i := range defaultSize {
		t.Put(i, struct{}{})
	}

	b.Run("Keys", func(b *testing.B) {
		b.ResetTimer()

		for range b.N {
			_ = t.Keys()
		}
	})
}

// BenchmarkMap measures the performance of Go map operations with sorted keys.
// It tests insertion and sorted key retrieval separately for clarity.
func BenchmarkMap(b *testing.B) {
	b.Run("Insert", func(b *testing.B) {
		for range b.N {
			m := make(map[int]struct{}, defaultSize)
			for i := range defaultSize {
				m[i] = struct{}{}
			}
		}
	})

	m := make(map[int]struct{}, defaultSize)
	for i := range defaultSize {
		m[i] = struct{}{}
	}

	b.Run("SortedKeys", func(b *testing.B) {
		b.ResetTimer()

		for range b.N {
			keys := make([]int, 0, defaultSize)
			for k := range m {
				keys = append(keys, k)
			}

			sort.Ints(keys)
		}
	})
}

func benchmarkGet(b *testing.B, tree *wbtree.Tree[int, struct{}], size int) {
	b.Helper()

	for range b.N {
		for n := range size {
			tree.Get(n)
		}
	}
}

func benchmarkPut(b *testing.B, tree *wbtree.Tree[int, struct{}], size int) {
	b.Helper()

	for range b.N {
		for n := range size {
			tree.Put(n, struct{}{})
		}
	}
}

func benchmarkRemove(b *testing.B, tree *wbtree.Tree[int, struct{}], size int) {
	b.Helper()

	for range b.N {
		for n := range size {
			tree.Remove(n)
		}
	}
}

func BenchmarkWBTreeGet100(b *testing.B) {
	b.StopTimer()

	size := 100
	tree := wbtree.New[int, struct{}]()

	for n := range size {
		tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkGet(b, tree, size)
}

func BenchmarkWBTreeGet1000(b *testing.B) {
	b.StopTimer()

	size := 1000
	tree := wbtree.New[int, struct{}]()

	for n := range size {
		tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkGet(b, tree, size)
}

func BenchmarkWBTreeGet10000(b *testing.B) {
	b.StopTimer()

	size := 10000
	tree := wbtree.New[int, struct{}]()

	for n := range size {
		tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkGet(b, tree, size)
}

func BenchmarkWBTreeGet100000(b *testing.B) {
	b.StopTimer()

	size := 100000
	tree := wbtree.New[int, struct{}]()

	for n := range size {
		tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkGet(b, tree, size)
}

func BenchmarkWBTreePut100(b *testing.B) {
	b.StopTimer()

	size := 100
	tree := wbtree.New[int, struct{}]()

	b.StartTimer()
	benchmarkPut(b, tree, size)
}

func BenchmarkWBTreePut1000(b *testing.B) {
	b.StopTimer()

	size := 1000
	tree := wbtree.New[int, struct{}]()

	for n := range size {
		tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkPut(b, tree, size)
}

func BenchmarkWBTreePut10000(b *testing.B) {
	b.StopTimer()

	size := 10000
	tree := wbtree.New[int, struct{}]()

	for n := range size {
		tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkPut(b, tree, size)
}

func BenchmarkWBTreePut100000(b *testing.B) {
	b.StopTimer()

	size := 100000
	tree := wbtree.New[int, struct{}]()

	for n := range size {
		tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkPut(b, tree, size)
}

func BenchmarkWBTreeRemove100(b *testing.B) {
	b.StopTimer()

	size := 100
	tree := wbtree.New[int, struct{}]()

	for n := range size {
		tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkRemove(b, tree, size)
}

func BenchmarkWBTreeRemove1000(b *testing.B) {
	b.StopTimer()

	size := 1000
	tree := wbtree.New[int, struct{}]()

	for n := range size {
		tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkRemove(b, tree, size)
}

func BenchmarkWBTreeRemove10000(b *testing.B) {
	b.StopTimer()

	size := 10000
	tree := wbtree.New[int, struct{}]()

	for n := range size {
		tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkRemove(b, tree, size)
}

func BenchmarkWBTreeRemove100000(b *testing.B) {
	b.StopTimer()

	size := 100000
	tree := wbtree.New[int, struct{}]()

	for n := range size {
		tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkRemove(b, tree, size)
}
