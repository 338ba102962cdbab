package Trees

import "golang.org/x/exp/constraints"

// A node in the arena. Index 0 is the nil node: sz=0, h=-1, black, and its fields are never written.
// l, r, p are indexes of the left child, right child and parent.
type info[S constraints.Unsigned] struct {
	l, r, p, sz S
	h           int32 // height of the subtree; a leaf has 0.
	black       bool  // only meaningful in RBTree.
}

// key value pair stored at kvs[i-1] for the node ifs[i].
type pair[K, V any] struct {
	k K
	v V
}

// Edge is the relation of a node to its parent.
type Edge int8

const (
	Root Edge = iota // no parent.
	Left
	Right
)

func (e Edge) String() string {
	switch e {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "root"
	}
}

// Location is the result of Find. If the key was found, Node is its index; otherwise Node is 0 and
// Parent, Edge name the slot the key would be inserted at. Passing it to InsertAt avoids a second
// descent. A Location is only valid until the next structural change of the tree that produced it.
type Location[S constraints.Unsigned] struct {
	Node, Parent S
	Edge         Edge
	version      uint64
}

// Found reports whether the key was present.
func (l Location[S]) Found() bool {
	return l.Node != 0
}

// removal describes the slot vacated by unlink.
type removal[S constraints.Unsigned] struct {
	parent, child S    // parent of the vacated slot; the node now occupying it, possibly 0.
	edge          Edge // side of parent the slot is on.
	black         bool // color of the node physically removed.
	shrunk        bool // the height of parent may have decreased.
}
