package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree that doesn't rebalance itself. K is the type of the keys, V of the values, and S
// of the indexes addressing nodes in the underlying arrays; S must be wide enough to address every node the
// tree will hold at once plus one, since index 0 is reserved.
// The height D is n-1 in the worst case, such as inserting sorted keys. Use AVLTree or RBTree when the
// insertion order isn't known to be random.
type Tree[K, V any, S constraints.Unsigned] struct {
	base[K, V, S, plain[K, V, S]]
}

// New Tree ordered by cmp, with room for hint nodes before the arrays grow. Panics with ErrNilComparator
// if cmp is nil.
func New[K, V any, S constraints.Unsigned](cmp func(K, K) int, hint S) *Tree[K, V, S] {
	t := new(Tree[K, V, S])
	t.init(cmp, hint)
	return t
}

// NewOrdered is New with cmp.Compare as the comparator.
func NewOrdered[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *Tree[K, V, S] {
	return New[K, V](cmp.Compare[K], hint)
}

// plain keeps heights up to date and nothing else.
type plain[K, V any, S constraints.Unsigned] struct{}

func (plain[K, V, S]) inserted(u *arena[K, V, S], n S) {
	u.retrace(u.ifs[n].p)
}

func (plain[K, V, S]) removed(u *arena[K, V, S], rm removal[S]) {
	if rm.shrunk {
		u.retrace(rm.parent)
	}
}

func (plain[K, V, S]) check(*arena[K, V, S]) error {
	return nil
}
