package BSTree

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Node is a handle to a value in a BinarySearchTree, or a detached node holding only a value.
// The zero Node is the empty marker and holds no value.
// A handle follows its value through rotations, removals of other values and Balance. Once its
// own value is removed, the handle behaves like a detached node.
// Two Nodes are Equal when their values are, regardless of position or tree.
type Node[T cmp.Ordered, S constraints.Unsigned] struct {
	t   *BinarySearchTree[T, S]
	i   S
	v   T
	has bool
}

// NewNode returns a detached node holding v.
func NewNode[T cmp.Ordered, S constraints.Unsigned](v T) Node[T, S] {
	return Node[T, S]{v: v, has: true}
}

func (n Node[T, S]) live() bool {
	return n.t != nil && n.i != 0 && int(n.i) < len(n.t.ifs) && n.t.ifs[n.i].h != 0 && n.t.ifs[n.i].v == n.v
}

func (n Node[T, S]) links() (l, r, p S) {
	if n.live() {
		s := &n.t.ifs[n.i]
		return s.l, s.r, s.p
	}
	return
}

func (n Node[T, S]) Value() T {
	return n.v
}

// HasValue is false only for the empty marker.
func (n Node[T, S]) HasValue() bool {
	return n.has
}

func (n Node[T, S]) Left() (Node[T, S], bool) {
	l, _, _ := n.links()
	return n.t.at(l)
}

func (n Node[T, S]) Right() (Node[T, S], bool) {
	_, r, _ := n.links()
	return n.t.at(r)
}

func (n Node[T, S]) Parent() (Node[T, S], bool) {
	_, _, p := n.links()
	return n.t.at(p)
}

// Sibling is the other child of the parent.
func (n Node[T, S]) Sibling() (Node[T, S], bool) {
	_, _, p := n.links()
	if p == 0 {
		return Node[T, S]{}, false
	}
	if s := n.t.ifs[p]; s.l == n.i {
		return n.t.at(s.r)
	} else {
		return n.t.at(s.l)
	}
}

// Height of the subtree rooted at n; a leaf is 1, the empty marker 0.
func (n Node[T, S]) Height() uint {
	if n.live() {
		return uint(n.t.ifs[n.i].h)
	} else if n.has {
		return 1
	}
	return 0
}

// Balanced reports whether the heights of n's children differ by at most 1.
func (n Node[T, S]) Balanced() bool {
	return !n.live() || n.t.balancedAt(n.i)
}

func (n Node[T, S]) IsLeaf() bool {
	l, r, _ := n.links()
	return l == 0 && r == 0
}

func (n Node[T, S]) IsRoot() bool {
	_, _, p := n.links()
	return p == 0
}

func (n Node[T, S]) IsChild() bool {
	_, _, p := n.links()
	return p != 0
}

// IsParent reports whether n has at least one child.
func (n Node[T, S]) IsParent() bool {
	l, r, _ := n.links()
	return l != 0 || r != 0
}

func (n Node[T, S]) Equal(o Node[T, S]) bool {
	if n.has != o.has {
		return false
	}
	return !n.has || n.v == o.v
}
