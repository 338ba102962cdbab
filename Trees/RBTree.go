package Trees

import (
	"cmp"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// RBTree is a Red-Black tree: every node is red or black, the root is black, no red node has a red
// parent, and every path from a node down to nil passes the same number of black nodes. D<=2*log2(n+1).
// Insertion rotates at most twice and removal at most three times.
type RBTree[K, V any, S constraints.Unsigned] struct {
	base[K, V, S, redBlack[K, V, S]]
}

// NewRB is the RBTree equivalence of New.
func NewRB[K, V any, S constraints.Unsigned](cmp func(K, K) int, hint S) *RBTree[K, V, S] {
	t := new(RBTree[K, V, S])
	t.init(cmp, hint)
	return t
}

// NewOrderedRB is NewRB with cmp.Compare as the comparator.
func NewOrderedRB[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *RBTree[K, V, S] {
	return NewRB[K, V](cmp.Compare[K], hint)
}

// IsBlack reports the color of the node holding k; ok is false if k is absent.
func (u *RBTree[K, V, S]) IsBlack(k K) (black, ok bool) {
	if loc := u.Find(k); loc.Node != 0 {
		return u.ifs[loc.Node].black, true
	}
	return
}

type redBlack[K, V any, S constraints.Unsigned] struct{}

// rotate n toward left or right, then retrace heights above the new subtree root.
func (redBlack[K, V, S]) rotate(u *arena[K, V, S], n S, left bool) S {
	var top S
	if left {
		top = u.rotateLeft(n)
	} else {
		top = u.rotateRight(n)
	}
	u.retrace(u.ifs[top].p)
	return top
}

// inserted n, which is red.
func (b redBlack[K, V, S]) inserted(u *arena[K, V, S], n S) {
	u.retrace(u.ifs[n].p)
	for {
		p := u.ifs[n].p
		if p == 0 {
			u.paint(n, true)
			return
		}
		g := u.ifs[p].p
		if g == 0 || u.ifs[p].black {
			return
		}
		uncle := u.ifs[g].l
		if uncle == p {
			uncle = u.ifs[g].r
		}
		if !u.ifs[uncle].black {
			u.paint(p, true)
			u.paint(uncle, true)
			u.paint(g, false)
			n = g
			continue
		}
		// n is an inner grandchild: straighten the line first.
		if n == u.ifs[p].r && p == u.ifs[g].l {
			b.rotate(u, p, true)
			n, p = p, n
		} else if n == u.ifs[p].l && p == u.ifs[g].r {
			b.rotate(u, p, false)
			n, p = p, n
		}
		u.paint(p, true)
		u.paint(g, false)
		b.rotate(u, g, n != u.ifs[p].l)
		return
	}
}

// removed fixes the double black left by removing a black node. x is the node in the vacated slot, possibly
// nil, so its parent and side are tracked explicitly.
func (b redBlack[K, V, S]) removed(u *arena[K, V, S], rm removal[S]) {
	u.retrace(rm.parent)
	if !rm.black {
		return
	}
	if x := rm.child; !u.ifs[x].black || rm.parent == 0 {
		u.paint(x, true)
		return
	}
	x, p, left := rm.child, rm.parent, rm.edge == Left
	for p != 0 {
		s := u.ifs[p].l
		if left {
			s = u.ifs[p].r
		}
		if !u.ifs[s].black {
			u.paint(p, false)
			u.paint(s, true)
			b.rotate(u, p, left)
			if s = u.ifs[p].l; left {
				s = u.ifs[p].r
			}
		}
		near, far := u.ifs[s].r, u.ifs[s].l
		if left {
			near, far = far, near
		}
		if u.ifs[near].black && u.ifs[far].black {
			u.paint(s, false)
			if u.ifs[p].black {
				x, p = p, u.ifs[p].p
				left = x == u.ifs[p].l
				continue
			}
			u.paint(p, true)
			return
		}
		if u.ifs[far].black {
			u.paint(s, false)
			u.paint(near, true)
			b.rotate(u, s, !left)
			s, far = near, s
		}
		u.paint(s, u.ifs[p].black)
		u.paint(p, true)
		u.paint(far, true)
		b.rotate(u, p, left)
		return
	}
}

func (redBlack[K, V, S]) check(u *arena[K, V, S]) error {
	if !u.ifs[u.root].black {
		return errors.Errorf("root %v is red", u.key(u.root))
	}
	var blackHeight func(i S) (int, error)
	blackHeight = func(i S) (int, error) {
		if i == 0 {
			return 1, nil
		}
		cur := u.ifs[i]
		if !cur.black && (!u.ifs[cur.l].black || !u.ifs[cur.r].black) {
			return 0, errors.Errorf("red node %v has a red child", u.key(i))
		}
		lh, err := blackHeight(cur.l)
		if err != nil {
			return 0, err
		}
		rh, err := blackHeight(cur.r)
		if err != nil {
			return 0, err
		}
		if lh != rh {
			return 0, errors.Errorf("node %v has black heights %d and %d", u.key(i), lh, rh)
		}
		if cur.black {
			lh++
		}
		return lh, nil
	}
	_, err := blackHeight(u.root)
	return err
}
