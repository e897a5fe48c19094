package BSTree

import (
	"github.com/g-m-twostay/ds-utils/Queues"
	"github.com/g-m-twostay/ds-utils/Stacks"
)

// Order of a traversal.
type Order byte

const (
	Preorder Order = iota
	Inorder
	Postorder
	Levelorder
)

// The traversals below call f on the nodes in their order until f returns false. Each call
// starts over from the root. f mustn't modify the tree.

func (u *BinarySearchTree[T, S]) stack() *Stacks.ArrayStack[S] {
	return Stacks.MakeArrayStack[S](uint(u.ifs[u.root].h))
}

// PreOrder visits a node before the subtrees of its children.
// Time: O(n); Space: O(D)
func (u *BinarySearchTree[T, S]) PreOrder(f func(Node[T, S]) bool) {
	if u.root == 0 {
		return
	}
	st := u.stack()
	for st.Push(u.root); !st.Empty(); {
		i, _ := st.Pop()
		if !f(Node[T, S]{u, i, u.ifs[i].v, true}) {
			return
		}
		if r := u.ifs[i].r; r != 0 {
			st.Push(r)
		}
		if l := u.ifs[i].l; l != 0 {
			st.Push(l)
		}
	}
}

// InOrder visits a node between the subtrees of its children, so values come in ascending order.
// Time: O(n); Space: O(D)
func (u *BinarySearchTree[T, S]) InOrder(f func(Node[T, S]) bool) {
	st := u.stack()
	for cur := u.root; cur != 0 || !st.Empty(); cur = u.ifs[cur].r {
		for ; cur != 0; cur = u.ifs[cur].l {
			st.Push(cur)
		}
		cur, _ = st.Pop()
		if !f(Node[T, S]{u, cur, u.ifs[cur].v, true}) {
			return
		}
	}
}

// PostOrder visits a node after the subtrees of its children.
// Time: O(n); Space: O(D)
func (u *BinarySearchTree[T, S]) PostOrder(f func(Node[T, S]) bool) {
	st := u.stack()
	var last S
	for cur := u.root; cur != 0 || !st.Empty(); {
		if cur != 0 {
			st.Push(cur)
			cur = u.ifs[cur].l
			continue
		}
		top, _ := st.Peek()
		if r := u.ifs[top].r; r != 0 && r != last {
			cur = r
			continue
		}
		st.Pop()
		if !f(Node[T, S]{u, top, u.ifs[top].v, true}) {
			return
		}
		last = top
	}
}

// LevelOrder visits nodes by increasing depth, left to right within a level.
// Time: O(n); Space: O(n)
func (u *BinarySearchTree[T, S]) LevelOrder(f func(Node[T, S]) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[S](uint(u.sz/2 + 1))
	for q.Push(u.root); !q.Empty(); {
		i, _ := q.Pop()
		if !f(Node[T, S]{u, i, u.ifs[i].v, true}) {
			return
		}
		if l := u.ifs[i].l; l != 0 {
			q.Push(l)
		}
		if r := u.ifs[i].r; r != 0 {
			q.Push(r)
		}
	}
}

// Traverse in the given order.
func (u *BinarySearchTree[T, S]) Traverse(o Order, f func(Node[T, S]) bool) {
	switch o {
	case Preorder:
		u.PreOrder(f)
	case Inorder:
		u.InOrder(f)
	case Postorder:
		u.PostOrder(f)
	case Levelorder:
		u.LevelOrder(f)
	}
}

// All nodes in the given order.
func (u *BinarySearchTree[T, S]) All(o Order) []Node[T, S] {
	ns := make([]Node[T, S], 0, u.sz)
	u.Traverse(o, func(n Node[T, S]) bool {
		ns = append(ns, n)
		return true
	})
	return ns
}

// Values in the given order.
func (u *BinarySearchTree[T, S]) Values(o Order) []T {
	vs := make([]T, 0, u.sz)
	u.Traverse(o, func(n Node[T, S]) bool {
		vs = append(vs, n.v)
		return true
	})
	return vs
}
