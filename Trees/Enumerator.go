package Trees

import (
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Enumerator walks a tree in ascending key order, optionally within inclusive bounds. It holds a cursor
// into the tree, and stops with ErrModified if the tree changes structurally while it's in use; changing
// the value of an existing key isn't a structural change.
//
//	e := t.Enumerate(&lo, nil)
//	for e.Next() {
//		use(e.Key(), e.Value())
//	}
//	if err := e.Err(); err != nil {
//		...
//	}
type Enumerator[K, V any, S constraints.Unsigned] struct {
	u       *arena[K, V, S]
	cur     S
	hi      K
	bounded bool // whether hi is set.
	started bool
	version uint64
	err     error
}

// Enumerate keys in [lo, hi]. A nil bound is unbounded. The bounds are copied. A bound holding a nil key
// gives an empty enumeration.
// Time: O(D) to create; amortized O(1) for each Next.
func (u *arena[K, V, S]) Enumerate(lo, hi *K) *Enumerator[K, V, S] {
	e := &Enumerator[K, V, S]{u: u, version: u.version}
	if (lo != nil && isNil(*lo)) || (hi != nil && isNil(*hi)) {
		return e
	}
	if lo == nil {
		e.cur = u.leftmost(u.root)
	} else {
		e.cur = u.ceiling(*lo, false)
	}
	if hi != nil {
		e.hi, e.bounded = *hi, true
	}
	return e
}

// Next advances to the next key, returning false when the enumeration is exhausted or the tree was modified.
func (e *Enumerator[K, V, S]) Next() bool {
	if e.err != nil || e.cur == 0 {
		return false
	}
	if e.version != e.u.version {
		e.err = errors.WithStack(ErrModified)
		e.cur = 0
		return false
	}
	if e.started {
		e.cur = e.u.next(e.cur)
	} else {
		e.started = true
	}
	if e.cur != 0 && e.bounded && e.u.cmp(e.u.key(e.cur), e.hi) > 0 {
		e.cur = 0
	}
	return e.cur != 0
}

// Key at the cursor; the zero K once Next returned false.
func (e *Enumerator[K, V, S]) Key() (k K) {
	if e.cur != 0 {
		k = e.u.kvs[e.cur-1].k
	}
	return
}

// Value at the cursor; the zero V once Next returned false.
func (e *Enumerator[K, V, S]) Value() (v V) {
	if e.cur != 0 {
		v = e.u.kvs[e.cur-1].v
	}
	return
}

// Set the value at the cursor. Does nothing once Next returned false.
func (e *Enumerator[K, V, S]) Set(v V) {
	if e.cur != 0 {
		e.u.kvs[e.cur-1].v = v
	}
}

// Err is ErrModified if the enumeration stopped because of a structural change, nil otherwise.
func (e *Enumerator[K, V, S]) Err() error {
	return e.err
}

func (u *arena[K, V, S]) seq(lo, hi *K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		e := u.Enumerate(lo, hi)
		for e.Next() {
			if !yield(e.Key(), e.Value()) {
				return
			}
		}
		if e.err != nil {
			panic(e.err)
		}
	}
}

// All pairs in ascending order. Panics with ErrModified if the tree is changed structurally during the loop.
func (u *arena[K, V, S]) All() iter.Seq2[K, V] {
	return u.seq(nil, nil)
}

// Between lo and hi inclusive. See All.
func (u *arena[K, V, S]) Between(lo, hi K) iter.Seq2[K, V] {
	return u.seq(&lo, &hi)
}

// From lo inclusive to the end. See All.
func (u *arena[K, V, S]) From(lo K) iter.Seq2[K, V] {
	return u.seq(&lo, nil)
}

// To hi inclusive from the beginning. See All.
func (u *arena[K, V, S]) To(hi K) iter.Seq2[K, V] {
	return u.seq(nil, &hi)
}

// Backward yields all pairs in descending order. See All.
func (u *arena[K, V, S]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		version := u.version
		for i := u.rightmost(u.root); i != 0; i = u.prev(i) {
			if !yield(u.kvs[i-1].k, u.kvs[i-1].v) {
				return
			}
			if version != u.version {
				panic(errors.WithStack(ErrModified))
			}
		}
	}
}

// InOrder traversal of the tree, calling f on every key and a pointer to its value until f returns false.
// f mustn't change the tree structurally; it may write through the pointer.
func (u *arena[K, V, S]) InOrder(f func(K, *V) bool) {
	for i := u.leftmost(u.root); i != 0; i = u.next(i) {
		if !f(u.kvs[i-1].k, &u.kvs[i-1].v) {
			break
		}
	}
}
