package Trees

import (
	"cmp"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree that keeps the heights of the two subtrees of every node within 1 of each
// other, so D<=1.44*log2(n+2). Each insertion does at most one single or double rotation; a removal may
// rotate at every node on its path.
type AVLTree[K, V any, S constraints.Unsigned] struct {
	base[K, V, S, avl[K, V, S]]
}

// NewAVL is the AVLTree equivalence of New.
func NewAVL[K, V any, S constraints.Unsigned](cmp func(K, K) int, hint S) *AVLTree[K, V, S] {
	t := new(AVLTree[K, V, S])
	t.init(cmp, hint)
	return t
}

// NewOrderedAVL is NewAVL with cmp.Compare as the comparator.
func NewOrderedAVL[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *AVLTree[K, V, S] {
	return NewAVL[K, V](cmp.Compare[K], hint)
}

// BalanceFactor of the node holding k; ok is false if k is absent.
func (u *AVLTree[K, V, S]) BalanceFactor(k K) (bf int, ok bool) {
	if loc := u.Find(k); loc.Node != 0 {
		return u.balance(loc.Node), true
	}
	return
}

type avl[K, V any, S constraints.Unsigned] struct{}

// rotate n whose balance factor is +-2. Same signs of n and its heavier child take a single rotation,
// opposite signs rotate the child first. Returns the new subtree root.
func (avl[K, V, S]) rotate(u *arena[K, V, S], n S) S {
	if u.balance(n) > 0 {
		if u.balance(u.ifs[n].r) < 0 {
			u.rotateRight(u.ifs[n].r)
		}
		return u.rotateLeft(n)
	}
	if u.balance(u.ifs[n].l) > 0 {
		u.rotateLeft(u.ifs[n].l)
	}
	return u.rotateRight(n)
}

// inserted walks up from n. The first unbalanced ancestor is rotated back to its height before the
// insertion, so nothing above it changes.
func (b avl[K, V, S]) inserted(u *arena[K, V, S], n S) {
	for p := u.ifs[n].p; p != 0; p = u.ifs[p].p {
		if bf := u.balance(p); bf > 1 || bf < -1 {
			b.rotate(u, p)
			return
		}
		h := u.height(p)
		if h == u.ifs[p].h {
			return
		}
		u.ifs[p].h = h
	}
}

// removed walks the whole path to the root; a rotation can shorten the subtree and unbalance an ancestor.
func (b avl[K, V, S]) removed(u *arena[K, V, S], rm removal[S]) {
	for p := rm.parent; p != 0; p = u.ifs[p].p {
		if bf := u.balance(p); bf > 1 || bf < -1 {
			p = b.rotate(u, p)
		} else {
			u.ifs[p].h = u.height(p)
		}
	}
}

func (avl[K, V, S]) check(u *arena[K, V, S]) error {
	for i := u.leftmost(u.root); i != 0; i = u.next(i) {
		if bf := u.balance(i); bf > 1 || bf < -1 {
			return errors.Errorf("node %v has balance factor %d", u.key(i), bf)
		}
	}
	return nil
}
