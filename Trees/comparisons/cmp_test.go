package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchmarkItemCount = 1 << 16

var keys = rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)

// compares with https://github.com/google/btree, https://github.com/petar/GoLLRB and
// https://github.com/emirpasic/gods using the same random permutation of keys.
func setupRB(b *testing.B) *Trees.RBTree[int, int, uint32] {
	b.Helper()
	t := Trees.NewOrderedRB[int, int](uint32(benchmarkItemCount))
	for _, k := range keys {
		t.AddOrUpdate(k, k)
	}
	return t
}

func setupAVL(b *testing.B) *Trees.AVLTree[int, int, uint32] {
	b.Helper()
	t := Trees.NewOrderedAVL[int, int](uint32(benchmarkItemCount))
	for _, k := range keys {
		t.AddOrUpdate(k, k)
	}
	return t
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	t := btree.NewOrderedG[int](32)
	for _, k := range keys {
		t.ReplaceOrInsert(k)
	}
	return t
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for _, k := range keys {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	return t
}

func setupGods(b *testing.B) *redblacktree.Tree {
	b.Helper()
	t := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		t.Put(k, k)
	}
	return t
}

var sideEff bool

func BenchmarkWriteRB(b *testing.B) {
	for range b.N {
		setupRB(b)
	}
}

func BenchmarkWriteAVL(b *testing.B) {
	for range b.N {
		setupAVL(b)
	}
}

func BenchmarkWriteBTree(b *testing.B) {
	for range b.N {
		setupBTree(b)
	}
}

func BenchmarkWriteLLRB(b *testing.B) {
	for range b.N {
		setupLLRB(b)
	}
}

func BenchmarkWriteGods(b *testing.B) {
	for range b.N {
		setupGods(b)
	}
}

func BenchmarkReadRB(b *testing.B) {
	t := setupRB(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			sideEff = t.Has(k)
		}
	}
}

func BenchmarkReadAVL(b *testing.B) {
	t := setupAVL(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			sideEff = t.Has(k)
		}
	}
}

func BenchmarkReadBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			sideEff = t.Has(k)
		}
	}
}

func BenchmarkReadLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			sideEff = t.Has(llrb.Int(k))
		}
	}
}

func BenchmarkReadGods(b *testing.B) {
	t := setupGods(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			_, sideEff = t.Get(k)
		}
	}
}

func BenchmarkDeleteRB(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupRB(b)
		b.StartTimer()
		for _, k := range keys {
			t.Remove(k)
		}
	}
}

func BenchmarkDeleteBTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupBTree(b)
		b.StartTimer()
		for _, k := range keys {
			t.Delete(k)
		}
	}
}

func BenchmarkDeleteLLRB(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupLLRB(b)
		b.StartTimer()
		for _, k := range keys {
			t.Delete(llrb.Int(k))
		}
	}
}

func BenchmarkDeleteGods(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupGods(b)
		b.StartTimer()
		for _, k := range keys {
			t.Remove(k)
		}
	}
}

// range scans of 1/16 of the keys.
const span = benchmarkItemCount / 16

func BenchmarkRangeRB(b *testing.B) {
	t := setupRB(b)
	b.ResetTimer()
	for i := range b.N {
		lo := i % (benchmarkItemCount - span)
		for k := range t.Between(lo, lo+span-1) {
			sideEff = k == 0
		}
	}
}

func BenchmarkRangeBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for i := range b.N {
		lo := i % (benchmarkItemCount - span)
		t.AscendRange(lo, lo+span, func(k int) bool {
			sideEff = k == 0
			return true
		})
	}
}

func BenchmarkRangeLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for i := range b.N {
		lo := i % (benchmarkItemCount - span)
		t.AscendRange(llrb.Int(lo), llrb.Int(lo+span), func(k llrb.Item) bool {
			sideEff = k.(llrb.Int) == 0
			return true
		})
	}
}
