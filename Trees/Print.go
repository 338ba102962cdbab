package Trees

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-trees/Queues"
)

type level[S any] struct {
	i S
	d int
}

// Print the tree to w in level order, one line per depth. Each node is written as key:value, followed by
// * if the node is black in an RBTree. Nil children aren't printed.
func (u *arena[K, V, S]) Print(w io.Writer) error {
	if u.root == 0 {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	q := Queues.MakeArrayQueue[level[S]](uint(u.Size()/2) + 1)
	q.Push(level[S]{u.root, 0})
	for d := -1; !q.Empty(); {
		cur, err := q.Pop()
		if err != nil {
			return err
		}
		if cur.d != d {
			if d >= 0 {
				if _, err = fmt.Fprintln(w); err != nil {
					return err
				}
			}
			d = cur.d
			if _, err = fmt.Fprintf(w, "%d:", d); err != nil {
				return err
			}
		}
		mark := ""
		if u.ifs[cur.i].black {
			mark = "*"
		}
		if _, err = fmt.Fprintf(w, " %v:%v%s", u.key(cur.i), u.kvs[cur.i-1].v, mark); err != nil {
			return err
		}
		for _, c := range [2]S{u.ifs[cur.i].l, u.ifs[cur.i].r} {
			if c != 0 {
				q.Push(level[S]{c, cur.d + 1})
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
