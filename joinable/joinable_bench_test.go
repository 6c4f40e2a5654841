package joinable_test

import (
	"testing"

	"github.com/qntx/jointree/cmp"
	"github.com/qntx/jointree/internal/testutil"
	"github.com/qntx/jointree/joinable"
)

func benchmarkInsert(b *testing.B, d discipline, keys []int) {
	b.Helper()

	for range b.N {
		tree := newTree(d)
		for _, key := range keys {
			tree.Insert(key)
		}
	}
}

func benchmarkFind(b *testing.B, tree *joinable.Tree[int, struct{}], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			tree.Find(key)
		}
	}
}

func benchmarkDelete(b *testing.B, d discipline, keys []int) {
	b.Helper()

	for range b.N {
		b.StopTimer()

		tree := newTree(d)
		for _, key := range keys {
			tree.Insert(key)
		}

		b.StartTimer()

		for _, key := range keys {
			tree.Delete(key)
		}
	}
}

func BenchmarkAVLInsert1000(b *testing.B) {
	benchmarkInsert(b, disciplines()[0], testutil.GeneratePermutedInts(1000))
}

func BenchmarkAVLInsert100000(b *testing.B) {
	benchmarkInsert(b, disciplines()[0], testutil.GeneratePermutedInts(100000))
}

func BenchmarkWBInsert1000(b *testing.B) {
	benchmarkInsert(b, disciplines()[1], testutil.GeneratePermutedInts(1000))
}

func BenchmarkWBInsert100000(b *testing.B) {
	benchmarkInsert(b, disciplines()[1], testutil.GeneratePermutedInts(100000))
}

func BenchmarkAVLFind1000(b *testing.B) {
	b.StopTimer()

	d := disciplines()[0]
	keys := testutil.GeneratePermutedInts(1000)
	tree := newTree(d)

	for _, key := range keys {
		tree.Insert(key)
	}

	b.StartTimer()
	benchmarkFind(b, tree, keys)
}

func BenchmarkWBFind1000(b *testing.B) {
	b.StopTimer()

	d := disciplines()[1]
	keys := testutil.GeneratePermutedInts(1000)
	tree := newTree(d)

	for _, key := range keys {
		tree.Insert(key)
	}

	b.StartTimer()
	benchmarkFind(b, tree, keys)
}

func BenchmarkAVLDelete1000(b *testing.B) {
	benchmarkDelete(b, disciplines()[0], testutil.GeneratePermutedInts(1000))
}

func BenchmarkWBDelete1000(b *testing.B) {
	benchmarkDelete(b, disciplines()[1], testutil.GeneratePermutedInts(1000))
}

func BenchmarkUnion1000(b *testing.B) {
	b.StopTimer()

	d := disciplines()[0]
	a := newTree(d)
	bt := newTree(d)

	for i := range 1000 {
		a.Insert(i)
	}

	for i := 500; i < 1500; i++ {
		bt.Insert(i)
	}

	bal := joinable.AVLBalancer[int, struct{}]{Aug: joinable.Plain[int]{}}

	b.StartTimer()

	for range b.N {
		joinable.Union(a.Root(), bt.Root(), cmp.GenericComparator[int], bal, nil, a.Transient())
	}
}
