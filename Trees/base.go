package Trees

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// arena holds the nodes of a tree in flat slices addressed by index. It implements everything
// that doesn't depend on how the tree balances itself.
type arena[K, V any, S constraints.Unsigned] struct {
	root, free S              // free is the beginning of the linked list of free indexes; info[S]::l represents next.
	ifs        []info[S]      // ifs[0] is nil. len(ifs)=number of used and free indexes+1.
	kvs        []pair[K, V]   // kvs[i] corresponds to ifs[i+1].
	cmp        func(K, K) int // negative if first < second, 0 if equal, positive if first > second.
	version    uint64         // incremented on every structural change.
}

func (u *arena[K, V, S]) init(cmp func(K, K) int, hint S) {
	if cmp == nil {
		panic(errors.WithStack(ErrNilComparator))
	}
	u.ifs = make([]info[S], 1, uint(hint)+1)
	u.ifs[0] = info[S]{h: -1, black: true}
	u.kvs = make([]pair[K, V], 0, hint)
	u.cmp = cmp
}

// addFree index once.
func (u *arena[K, V, S]) addFree(a S) {
	u.kvs[a-1] = pair[K, V]{}
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *arena[K, V, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a node under parent p, filling holes before appending.
func (u *arena[K, V, S]) alloc(k K, v V, p S) S {
	i := u.popFree()
	if i == 0 {
		if uint64(len(u.ifs)) > uint64(^S(0)) {
			panic(errors.WithStack(ErrCapacity))
		}
		i = S(len(u.ifs))
		u.ifs = append(u.ifs, info[S]{p: p, sz: 1})
		u.kvs = append(u.kvs, pair[K, V]{k, v})
	} else {
		u.ifs[i] = info[S]{p: p, sz: 1}
		u.kvs[i-1] = pair[K, V]{k, v}
	}
	return i
}

func (u *arena[K, V, S]) key(i S) K {
	return u.kvs[i-1].k
}

// paint a node; the nil node stays black.
func (u *arena[K, V, S]) paint(i S, black bool) {
	if i != 0 {
		u.ifs[i].black = black
	}
}

// edge of i relative to its parent.
func (u *arena[K, V, S]) edge(i S) Edge {
	if p := u.ifs[i].p; p == 0 {
		return Root
	} else if u.ifs[p].l == i {
		return Left
	}
	return Right
}

// replace the child old of p with n. p==0 means old is the root.
func (u *arena[K, V, S]) replace(p, old, n S) {
	if p == 0 {
		u.root = n
	} else if u.ifs[p].l == old {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
}

// height of i computed from its children.
func (u *arena[K, V, S]) height(i S) int32 {
	return max(u.ifs[u.ifs[i].l].h, u.ifs[u.ifs[i].r].h) + 1
}

// balance factor of i: height of right subtree - height of left subtree.
func (u *arena[K, V, S]) balance(i S) int {
	return int(u.ifs[u.ifs[i].r].h) - int(u.ifs[u.ifs[i].l].h)
}

// refresh sz and h of i from its children.
func (u *arena[K, V, S]) refresh(i S) {
	n := &u.ifs[i]
	n.sz = u.ifs[n.l].sz + u.ifs[n.r].sz + 1
	n.h = max(u.ifs[n.l].h, u.ifs[n.r].h) + 1
}

// retrace heights from i upward, stopping at the first node whose height doesn't change.
// Everything below i must already be correct.
func (u *arena[K, V, S]) retrace(i S) {
	for ; i != 0; i = u.ifs[i].p {
		h := u.height(i)
		if h == u.ifs[i].h {
			return
		}
		u.ifs[i].h = h
	}
}

// rotateLeft around n: its right child takes its place. Returns the new subtree root.
// Time: O(1); Space: O(1)
func (u *arena[K, V, S]) rotateLeft(n S) S {
	rc := u.ifs[n].r
	p := u.ifs[n].p
	if u.ifs[n].r = u.ifs[rc].l; u.ifs[n].r != 0 {
		u.ifs[u.ifs[n].r].p = n
	}
	u.ifs[rc].l, u.ifs[rc].p = n, p
	u.ifs[n].p = rc
	u.replace(p, n, rc)
	u.refresh(n)
	u.refresh(rc)
	return rc
}

// rotateRight around n: its left child takes its place. Returns the new subtree root.
// Time: O(1); Space: O(1)
func (u *arena[K, V, S]) rotateRight(n S) S {
	lc := u.ifs[n].l
	p := u.ifs[n].p
	if u.ifs[n].l = u.ifs[lc].r; u.ifs[n].l != 0 {
		u.ifs[u.ifs[n].l].p = n
	}
	u.ifs[lc].r, u.ifs[lc].p = n, p
	u.ifs[n].p = lc
	u.replace(p, n, lc)
	u.refresh(n)
	u.refresh(lc)
	return lc
}

// find k with a single descent.
func (u *arena[K, V, S]) find(k K) Location[S] {
	loc := Location[S]{version: u.version}
	for curI := u.root; curI != 0; {
		if order := u.cmp(k, u.key(curI)); order < 0 {
			loc.Parent, loc.Edge = curI, Left
			curI = u.ifs[curI].l
		} else if order > 0 {
			loc.Parent, loc.Edge = curI, Right
			curI = u.ifs[curI].r
		} else {
			loc.Node = curI
			break
		}
	}
	return loc
}

// fits reports whether k is strictly between the in-order neighbours of the empty slot named by loc.
func (u *arena[K, V, S]) fits(loc Location[S], k K) bool {
	switch loc.Edge {
	case Left:
		if u.ifs[loc.Parent].l != 0 || u.cmp(k, u.key(loc.Parent)) >= 0 {
			return false
		}
		p := u.prev(loc.Parent)
		return p == 0 || u.cmp(k, u.key(p)) > 0
	case Right:
		if u.ifs[loc.Parent].r != 0 || u.cmp(k, u.key(loc.Parent)) <= 0 {
			return false
		}
		n := u.next(loc.Parent)
		return n == 0 || u.cmp(k, u.key(n)) < 0
	}
	return u.root == 0
}

// link a new node at the slot named by loc. Sizes of all ancestors are updated; heights are left
// to the caller.
func (u *arena[K, V, S]) link(loc Location[S], k K, v V) S {
	n := u.alloc(k, v, loc.Parent)
	switch loc.Edge {
	case Left:
		u.ifs[loc.Parent].l = n
	case Right:
		u.ifs[loc.Parent].r = n
	default:
		u.root = n
	}
	for a := loc.Parent; a != 0; a = u.ifs[a].p {
		u.ifs[a].sz++
	}
	u.version++
	return n
}

// unlink node n. When n has two children its key and value are swapped with its in-order
// predecessor, which is then removed instead. Sizes of all ancestors are updated; heights are left
// to the caller.
func (u *arena[K, V, S]) unlink(n S) removal[S] {
	if u.ifs[n].l != 0 && u.ifs[n].r != 0 {
		pred := u.ifs[n].l
		for u.ifs[pred].r != 0 {
			pred = u.ifs[pred].r
		}
		u.kvs[n-1], u.kvs[pred-1] = u.kvs[pred-1], u.kvs[n-1]
		n = pred
	}
	cur := u.ifs[n]
	rm := removal[S]{parent: cur.p, child: cur.l, edge: u.edge(n), black: cur.black}
	if rm.child == 0 {
		rm.child = cur.r
	}
	if rm.child != 0 {
		u.ifs[rm.child].p = cur.p
	}
	u.replace(cur.p, n, rm.child)
	for a := cur.p; a != 0; a = u.ifs[a].p {
		u.ifs[a].sz--
	}
	if cur.p != 0 {
		rm.shrunk = u.height(cur.p) != u.ifs[cur.p].h
	}
	u.addFree(n)
	u.version++
	return rm
}

// leftmost node of the subtree at i.
func (u *arena[K, V, S]) leftmost(i S) S {
	if i != 0 {
		for u.ifs[i].l != 0 {
			i = u.ifs[i].l
		}
	}
	return i
}

// rightmost node of the subtree at i.
func (u *arena[K, V, S]) rightmost(i S) S {
	if i != 0 {
		for u.ifs[i].r != 0 {
			i = u.ifs[i].r
		}
	}
	return i
}

// next node in in-order: leftmost of the right subtree, or the first ancestor reached via a left edge.
func (u *arena[K, V, S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.leftmost(r)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].r == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// prev is the mirror of next.
func (u *arena[K, V, S]) prev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.rightmost(l)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].l == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// ceiling is the first node whose key is >=k; strict makes it >k.
func (u *arena[K, V, S]) ceiling(k K, strict bool) (c S) {
	for curI := u.root; curI != 0; {
		if order := u.cmp(k, u.key(curI)); order < 0 || (order == 0 && !strict) {
			c = curI
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return
}

// floor is the last node whose key is <=k; strict makes it <k.
func (u *arena[K, V, S]) floor(k K, strict bool) (f S) {
	for curI := u.root; curI != 0; {
		if order := u.cmp(k, u.key(curI)); order > 0 || (order == 0 && !strict) {
			f = curI
			curI = u.ifs[curI].r
		} else {
			curI = u.ifs[curI].l
		}
	}
	return
}

func (u *arena[K, V, S]) at(i S) (k K, v V, ok bool) {
	if i != 0 {
		k, v, ok = u.kvs[i-1].k, u.kvs[i-1].v, true
	}
	return
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *arena[K, V, S]) Size() S {
	return u.ifs[u.root].sz
}

// Len is Size as an int.
func (u *arena[K, V, S]) Len() int {
	return int(u.ifs[u.root].sz)
}

// Height of the tree; -1 when empty.
func (u *arena[K, V, S]) Height() int {
	return int(u.ifs[u.root].h)
}

// Get the value stored under k.
// Time: O(D); Space: O(1)
func (u *arena[K, V, S]) Get(k K) (v V, ok bool) {
	if isNil(k) {
		return
	}
	if loc := u.find(k); loc.Node != 0 {
		v, ok = u.kvs[loc.Node-1].v, true
	}
	return
}

// Has k in the tree.
// Time: O(D); Space: O(1)
func (u *arena[K, V, S]) Has(k K) bool {
	return !isNil(k) && u.find(k).Node != 0
}

// Lookup is Get that fails with ErrKeyNotFound.
func (u *arena[K, V, S]) Lookup(k K) (V, error) {
	if isNil(k) {
		return *new(V), errors.WithStack(ErrNilKey)
	}
	if loc := u.find(k); loc.Node != 0 {
		return u.kvs[loc.Node-1].v, nil
	}
	return *new(V), errors.Wrapf(ErrKeyNotFound, "key %v", k)
}

// Update the value of an existing key. Fails with ErrKeyNotFound if k is absent. This isn't a structural change.
func (u *arena[K, V, S]) Update(k K, v V) error {
	if isNil(k) {
		return errors.WithStack(ErrNilKey)
	}
	if loc := u.find(k); loc.Node != 0 {
		u.kvs[loc.Node-1].v = v
		return nil
	}
	return errors.Wrapf(ErrKeyNotFound, "key %v", k)
}

// Find k with a single descent. See Location.
func (u *arena[K, V, S]) Find(k K) Location[S] {
	if isNil(k) {
		return Location[S]{}
	}
	return u.find(k)
}

// ValueAt returns a pointer to the value at a found Location, or nil if loc isn't found or is stale.
// The pointer is invalidated by the next structural change.
func (u *arena[K, V, S]) ValueAt(loc Location[S]) *V {
	if loc.Node == 0 || loc.version != u.version {
		return nil
	}
	return &u.kvs[loc.Node-1].v
}

// Minimum element of the tree.
func (u *arena[K, V, S]) Minimum() (K, V, bool) {
	return u.at(u.leftmost(u.root))
}

// Maximum element of the tree.
func (u *arena[K, V, S]) Maximum() (K, V, bool) {
	return u.at(u.rightmost(u.root))
}

// Predecessor of k. If strict is true, result<k if found; otherwise, result<=k.
func (u *arena[K, V, S]) Predecessor(k K, strict bool) (K, V, bool) {
	if isNil(k) {
		return u.at(0)
	}
	return u.at(u.floor(k, strict))
}

// Successor of k. If strict is true, result>k if found; otherwise, result>=k.
func (u *arena[K, V, S]) Successor(k K, strict bool) (K, V, bool) {
	if isNil(k) {
		return u.at(0)
	}
	return u.at(u.ceiling(k, strict))
}

// RankOf k, starting from 0. If k isn't found, returns the rank as if k is added to the tree.
func (u *arena[K, V, S]) RankOf(k K) (S, bool) {
	if isNil(k) {
		return 0, false
	}
	var ra S = 0
	for curI := u.root; curI != 0; {
		if order := u.cmp(k, u.key(curI)); order < 0 {
			curI = u.ifs[curI].l
		} else if order > 0 {
			ra += u.ifs[u.ifs[curI].l].sz + 1
			curI = u.ifs[curI].r
		} else {
			return ra + u.ifs[u.ifs[curI].l].sz, true
		}
	}
	return ra, false
}

// RankK element in tree, starting from 0.
func (u *arena[K, V, S]) RankK(k S) (K, V, bool) {
	for curI := u.root; curI != 0; {
		if li := u.ifs[curI].l; k < u.ifs[li].sz {
			curI = li
		} else if k > u.ifs[li].sz {
			k -= u.ifs[li].sz + 1
			curI = u.ifs[curI].r
		} else {
			return u.at(curI)
		}
	}
	return u.at(0)
}

// Clear the tree. The underlying arrays are kept for reuse.
func (u *arena[K, V, S]) Clear() {
	clear(u.kvs)
	u.ifs, u.kvs = u.ifs[:1], u.kvs[:0]
	u.root, u.free = 0, 0
	u.version++
}

// corrupt checks the structure shared by all variants: ordering, parent links, sizes and heights.
func (u *arena[K, V, S]) corrupt() error {
	if u.ifs[0].sz != 0 || u.ifs[0].h != -1 || !u.ifs[0].black || u.ifs[0].l != 0 {
		return errors.New("nil node modified")
	}
	if u.root != 0 && u.ifs[u.root].p != 0 {
		return errors.Errorf("root %d has parent %d", u.root, u.ifs[u.root].p)
	}
	var walk func(i S) error
	walk = func(i S) error {
		if i == 0 {
			return nil
		}
		cur := u.ifs[i]
		for _, c := range [2]S{cur.l, cur.r} {
			if c != 0 && u.ifs[c].p != i {
				return errors.Errorf("node %d has parent %d, want %d", c, u.ifs[c].p, i)
			}
		}
		if cur.l != 0 && u.cmp(u.key(cur.l), u.key(i)) >= 0 {
			return errors.Errorf("left child %v not less than %v", u.key(cur.l), u.key(i))
		}
		if cur.r != 0 && u.cmp(u.key(cur.r), u.key(i)) <= 0 {
			return errors.Errorf("right child %v not greater than %v", u.key(cur.r), u.key(i))
		}
		if err := walk(cur.l); err != nil {
			return err
		}
		if err := walk(cur.r); err != nil {
			return err
		}
		if sz := u.ifs[cur.l].sz + u.ifs[cur.r].sz + 1; sz != cur.sz {
			return errors.Errorf("node %v has size %d, want %d", u.key(i), cur.sz, sz)
		}
		if h := u.height(i); h != cur.h {
			return errors.Errorf("node %v has height %d, want %d", u.key(i), cur.h, h)
		}
		return nil
	}
	if err := walk(u.root); err != nil {
		return err
	}
	// subtree ordering is only checked locally above; the in-order walk makes it global.
	var prev S
	for i := u.leftmost(u.root); i != 0; i = u.next(i) {
		if prev != 0 && u.cmp(u.key(prev), u.key(i)) >= 0 {
			return errors.Errorf("in-order keys %v, %v not increasing", u.key(prev), u.key(i))
		}
		prev = i
	}
	return nil
}
