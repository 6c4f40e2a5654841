package treelist_test

import (
	"testing"

	"github.com/qntx/jointree/internal/testutil"
	"github.com/qntx/jointree/treelist"
)

func benchmarkListAt(b *testing.B, list *treelist.List[int], size int) {
	b.Helper()

	for range b.N {
		for i := range size {
			list.At(i) //nolint:errcheck
		}
	}
}

func benchmarkListAdd(b *testing.B, list *treelist.List[int], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			list.Add(key)
		}
	}
}

func BenchmarkTreeListAt1000(b *testing.B) {
	b.StopTimer()

	size := 1000
	list := treelist.NewAVL[int]()

	for key := range testutil.GeneratePermutedInts(size) {
		list.Add(key)
	}

	b.StartTimer()
	benchmarkListAt(b, list, size)
}

func BenchmarkTreeListAt100000(b *testing.B) {
	b.StopTimer()

	size := 100000
	list := treelist.NewAVL[int]()

	for key := range testutil.GeneratePermutedInts(size) {
		list.Add(key)
	}

	b.StartTimer()
	benchmarkListAt(b, list, size)
}

func BenchmarkTreeListAdd1000(b *testing.B) {
	b.StopTimer()

	size := 1000
	list := treelist.NewAVL[int]()
	keys := testutil.GeneratePermutedInts(size)

	b.StartTimer()
	benchmarkListAdd(b, list, keys)
}

func BenchmarkTreeListAdd100000(b *testing.B) {
	b.StopTimer()

	size := 100000
	list := treelist.NewAVL[int]()
	keys := testutil.GeneratePermutedInts(size)

	b.StartTimer()
	benchmarkListAdd(b, list, keys)
}
