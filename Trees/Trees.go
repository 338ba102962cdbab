package Trees

import (
	"cmp"
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Map is the ordered key-value map implemented by Tree, AVLTree and RBTree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. Keys are ordered by the comparator given
// at construction, which must be a total order; keys that compare equal are the
// same key. Implementations aren't safe for concurrent use.
type Map[K, V any] interface {
	//Add k with v. Fails with ErrDuplicateKey if k is present.
	Add(k K, v V) error
	//AddOrUpdate sets the value of k, returning true if k was added and false
	//if an existing value was overwritten.
	AddOrUpdate(k K, v V) bool
	//Remove k. Returns whether it was present.
	Remove(k K) bool
	//Get the value of k.
	Get(k K) (V, bool)
	//Has k in the map.
	Has(k K) bool
	//Lookup is Get failing with ErrKeyNotFound.
	Lookup(k K) (V, error)
	//Update the value of an existing k, failing with ErrKeyNotFound.
	Update(k K, v V) error
	//Len is the number of keys.
	Len() int
	//All pairs in ascending key order.
	All() iter.Seq2[K, V]
	//Between lo and hi inclusive, in ascending key order.
	Between(lo, hi K) iter.Seq2[K, V]
}

// balancer is the strategy a tree uses to restore its invariants. It's always a zero size type so a
// tree can call it without storing it.
type balancer[K, V any, S constraints.Unsigned] interface {
	//inserted is called after node n was linked as a leaf. Sizes are up to date; heights aren't.
	inserted(u *arena[K, V, S], n S)
	//removed is called after a node was unlinked. Sizes are up to date; heights aren't.
	removed(u *arena[K, V, S], rm removal[S])
	//check the invariants of the strategy.
	check(u *arena[K, V, S]) error
}

// base implements the mutating operations of Map on top of arena, delegating rebalancing to B.
type base[K, V any, S constraints.Unsigned, B balancer[K, V, S]] struct {
	arena[K, V, S]
}

func (u *base[K, V, S, B]) insert(loc Location[S], k K, v V) {
	n := u.link(loc, k, v)
	var b B
	b.inserted(&u.arena, n)
}

// Add k with v. Fails with ErrDuplicateKey if k is already present.
// Time: O(D)
func (u *base[K, V, S, B]) Add(k K, v V) error {
	if isNil(k) {
		return errors.WithStack(ErrNilKey)
	}
	loc := u.find(k)
	if loc.Node != 0 {
		return errors.Wrapf(ErrDuplicateKey, "key %v", k)
	}
	u.insert(loc, k, v)
	return nil
}

// AddOrUpdate k with v. Returns true if k was added, false if the value was overwritten in place or k is nil.
// Time: O(D)
func (u *base[K, V, S, B]) AddOrUpdate(k K, v V) bool {
	if isNil(k) {
		return false
	}
	if loc := u.find(k); loc.Node != 0 {
		u.kvs[loc.Node-1].v = v
		return false
	} else {
		u.insert(loc, k, v)
		return true
	}
}

// InsertAt inserts k with v at the slot found by Find(k), without descending again.
// Fails with ErrWrongKey if k doesn't belong at loc, such as a key other than the one passed to Find.
func (u *base[K, V, S, B]) InsertAt(loc Location[S], k K, v V) error {
	if isNil(k) {
		return errors.WithStack(ErrNilKey)
	}
	if loc.version != u.version {
		return errors.WithStack(ErrStaleLocation)
	}
	if loc.Node != 0 {
		if u.cmp(k, u.key(loc.Node)) != 0 {
			return errors.Wrapf(ErrWrongKey, "key %v at %v", k, u.key(loc.Node))
		}
		return errors.Wrapf(ErrDuplicateKey, "key %v", k)
	}
	if !u.fits(loc, k) {
		return errors.Wrapf(ErrWrongKey, "key %v", k)
	}
	u.insert(loc, k, v)
	return nil
}

// Remove k. Returns true if k was present.
// Time: O(D)
func (u *base[K, V, S, B]) Remove(k K) bool {
	if isNil(k) {
		return false
	}
	loc := u.find(k)
	if loc.Node == 0 {
		return false
	}
	rm := u.unlink(loc.Node)
	var b B
	b.removed(&u.arena, rm)
	return true
}

// Corrupt returns nil if the tree satisfies all the properties of its implementation, otherwise
// an error describing the first violation found. Recursive.
func (u *base[K, V, S, B]) Corrupt() error {
	if err := u.corrupt(); err != nil {
		return err
	}
	var b B
	return b.check(&u.arena)
}

// Ordered is the comparator for cmp.Ordered keys.
func Ordered[K cmp.Ordered]() func(K, K) int {
	return cmp.Compare[K]
}

var (
	_ Map[int, int] = (*Tree[int, int, uint])(nil)
	_ Map[int, int] = (*AVLTree[int, int, uint])(nil)
	_ Map[int, int] = (*RBTree[int, int, uint])(nil)
)
