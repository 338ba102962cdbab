package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-trees/Sets"
	"github.com/g-m-twostay/go-trees/Trees"
)

const benchmarkItemCount = 1024

// membership of a finite set compared with https://github.com/cornelk/hashmap and
// https://github.com/alphadose/haxmap. Half of the queries miss.
func setupElements(b *testing.B) Sets.Set[uintptr] {
	b.Helper()
	es := make([]uintptr, benchmarkItemCount)
	for i := range es {
		es[i] = uintptr(i)
	}
	return Sets.Of(es...)
}

func setupMembers(b *testing.B) Sets.Set[uintptr] {
	b.Helper()
	t := Trees.NewOrderedRB[uintptr, struct{}](uint16(benchmarkItemCount))
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		t.AddOrUpdate(i, struct{}{})
	}
	return Sets.Members[uintptr](t)
}

func setupHashMap(b *testing.B) *hashmap.Map[uintptr, struct{}] {
	b.Helper()
	m := hashmap.New[uintptr, struct{}]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, struct{}{})
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, struct{}] {
	b.Helper()
	m := haxmap.New[uintptr, struct{}]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, struct{}{})
	}
	return m
}

var sideEff bool

func BenchmarkContainsElements(b *testing.B) {
	s := setupElements(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < 2*benchmarkItemCount; i++ {
			sideEff = s.Contains(i)
		}
	}
}

func BenchmarkContainsRange(b *testing.B) {
	s := Sets.ClosedRange[uintptr](0, benchmarkItemCount-1)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < 2*benchmarkItemCount; i++ {
			sideEff = s.Contains(i)
		}
	}
}

func BenchmarkContainsMembers(b *testing.B) {
	s := setupMembers(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < 2*benchmarkItemCount; i++ {
			sideEff = s.Contains(i)
		}
	}
}

func BenchmarkContainsHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < 2*benchmarkItemCount; i++ {
			_, sideEff = m.Get(i)
		}
	}
}

func BenchmarkContainsHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < 2*benchmarkItemCount; i++ {
			_, sideEff = m.Get(i)
		}
	}
}

// a union of two halves is answered by evaluating both operands.
func BenchmarkContainsUnion(b *testing.B) {
	lo := make([]uintptr, 0, benchmarkItemCount/2)
	for i := uintptr(0); i < benchmarkItemCount; i += 2 {
		lo = append(lo, i)
	}
	s := Sets.Of(lo...).Union(Sets.Func[uintptr](func(x uintptr) bool { return x%2 == 1 && x < benchmarkItemCount }))
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < 2*benchmarkItemCount; i++ {
			sideEff = s.Contains(i)
		}
	}
}
