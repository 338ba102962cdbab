// Measures the time to remove a growing share of the keys of a tree and then query it, for the trees in this
// module and a few others.
package main

import (
	"math"
	"math/rand"
	"os"
	"slices"
	"testing"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/log"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-trees/Trees"
)

var logger = log.Default.WithNames("measure")

var args = struct {
	N     uint32   `arg:"-n" help:"keys inserted in each run"`
	Kind  []string `arg:"-k,separate" help:"trees to measure: tree, avl, rb, rb-gods, btree, llrb, gods"`
	Seed  int64    `help:"seed of the keys"`
	Steps uint32   `help:"number of removal ratios to measure"`
}{
	N:     1000000,
	Kind:  []string{"avl", "rb", "btree", "llrb", "gods"},
	Steps: 50,
}

// subject is what's measured; the trees of this module satisfy it directly.
type subject interface {
	AddOrUpdate(k int, v struct{}) bool
	Remove(k int) bool
	Has(k int) bool
}

type bTree struct {
	*btree.BTreeG[int]
}

func (t bTree) AddOrUpdate(k int, _ struct{}) bool {
	_, replaced := t.ReplaceOrInsert(k)
	return !replaced
}

func (t bTree) Remove(k int) bool {
	_, ok := t.Delete(k)
	return ok
}

type llrbTree struct {
	*llrb.LLRB
}

func (t llrbTree) AddOrUpdate(k int, _ struct{}) bool {
	return t.ReplaceOrInsert(llrb.Int(k)) == nil
}

func (t llrbTree) Remove(k int) bool {
	return t.Delete(llrb.Int(k)) != nil
}

func (t llrbTree) Has(k int) bool {
	return t.LLRB.Has(llrb.Int(k))
}

type godsTree struct {
	*redblacktree.Tree
}

func (t godsTree) AddOrUpdate(k int, _ struct{}) bool {
	t.Put(k, struct{}{})
	return true
}

func (t godsTree) Remove(k int) bool {
	t.Tree.Remove(k)
	return true
}

func (t godsTree) Has(k int) bool {
	_, ok := t.Get(k)
	return ok
}

var kinds = map[string]func(n uint32) subject{
	"tree": func(n uint32) subject { return Trees.NewOrdered[int, struct{}](n) },
	"avl":  func(n uint32) subject { return Trees.NewOrderedAVL[int, struct{}](n) },
	"rb":   func(n uint32) subject { return Trees.NewOrderedRB[int, struct{}](n) },
	"rb-gods": func(n uint32) subject {
		return Trees.NewRB[int, struct{}](Trees.GodsComparator[int](utils.IntComparator), n)
	},
	"btree": func(uint32) subject { return bTree{btree.NewOrderedG[int](32)} },
	"llrb":  func(uint32) subject { return llrbTree{llrb.New()} },
	"gods":  func(uint32) subject { return godsTree{redblacktree.NewWithIntComparator()} },
}

var sideEff bool

// delQry inserts n keys, removes the ones after rmv, then queries the remaining ones and rmv random keys.
func delQry(mk func(uint32) subject, rg *rand.Rand, n, rmv uint32) func(*testing.B) {
	all := make([]int, n)
	return func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			tree := mk(n)
			for i := range all {
				all[i] = rg.Int()
				tree.AddOrUpdate(all[i], struct{}{})
			}
			m := slices.Max(all[rmv:])
			b.StartTimer()
			for _, v := range all[rmv:] {
				tree.Remove(v)
			}
			for _, v := range all[:rmv] {
				sideEff = tree.Has(v)
			}
			for range rmv {
				sideEff = tree.Has(rg.Intn(m))
			}
		}
	}
}

// measure returns the average and the standard deviation of ms/op over all steps.
func measure(kind string, mk func(uint32) subject, rg *rand.Rand) (avg, dev float64) {
	cs := make([]float64, 0, args.Steps)
	for i := uint32(1); i < args.Steps; i++ {
		rmv := args.N / args.Steps * i
		br := testing.Benchmark(delQry(mk, rg, args.N, rmv))
		cs = append(cs, float64(br.T.Milliseconds())/float64(br.N))
		logger.Levelf(log.Debug, "%s: step %d, removed %d: %v", kind, i, args.N-rmv, br)
	}
	for _, v := range cs {
		avg += v
	}
	avg /= float64(len(cs))
	for _, v := range cs {
		dev += (v - avg) * (v - avg)
	}
	return avg, math.Sqrt(dev / float64(len(cs)))
}

func main() {
	testing.Init()
	arg.MustParse(&args)
	if args.Steps < 2 || args.N < args.Steps {
		logger.Levelf(log.Error, "need at least 2 steps and as many keys as steps")
		os.Exit(2)
	}
	rg := rand.New(rand.NewSource(args.Seed))
	for _, kind := range args.Kind {
		mk, ok := kinds[kind]
		if !ok {
			logger.Levelf(log.Error, "unknown tree %q", kind)
			os.Exit(2)
		}
		avg, dev := measure(kind, mk, rg)
		logger.Levelf(log.Info, "%s: average %fms/op, stddev %fms/op", kind, avg, dev)
	}
}
