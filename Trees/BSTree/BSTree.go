package BSTree

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Strategy decides what a BinarySearchTree does after Put and Remove.
type Strategy byte

const (
	// Unbalanced keeps the shape the insertion order gives.
	Unbalanced Strategy = iota
	// AVL restores the height-balance property on the path to the root after every mutation.
	AVL
)

func (s Strategy) String() string {
	switch s {
	case Unbalanced:
		return "bst"
	case AVL:
		return "avl"
	default:
		return "unknown"
	}
}

// BinarySearchTree holds unique values of T in a binary search tree. Nodes live in an arena
// and are addressed by indexes of type S, so S must be wide enough for the number of values.
// The parent of a node is an index, as are its children.
// Every node stores the height of its subtree, which both strategies keep up to date; with
// the AVL strategy the heights of the children of any node differ by at most 1 after every
// public method returns.
// Lookups, insertion and removal are iterative and O(D) where D is the height of the tree.
// Traversals use an explicit stack, so degenerate trees don't overflow the goroutine stack.
// Not safe for concurrent use.
type BinarySearchTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
	strategy Strategy
}

// New returns an empty tree. hint is the expected number of values.
// The first Put on an empty tree creates the root.
func New[T cmp.Ordered, S constraints.Unsigned](strategy Strategy, hint S) *BinarySearchTree[T, S] {
	return &BinarySearchTree[T, S]{makeBase[T](hint), strategy}
}

// WithRoot returns a tree whose root holds v.
func WithRoot[T cmp.Ordered, S constraints.Unsigned](strategy Strategy, v T, hint S) *BinarySearchTree[T, S] {
	u := New[T](strategy, hint)
	u.root = u.alloc(v, 0)
	u.sz = 1
	return u
}

func (u *BinarySearchTree[T, S]) Strategy() Strategy {
	return u.strategy
}

func (u *BinarySearchTree[T, S]) at(i S) (Node[T, S], bool) {
	if i == 0 {
		return Node[T, S]{}, false
	}
	return Node[T, S]{u, i, u.ifs[i].v, true}, true
}

// search returns the slot holding v, 0 if there's none.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T, S]) search(v T) S {
	cur := u.root
	for cur != 0 {
		if c := u.ifs[cur].v; v < c {
			cur = u.ifs[cur].l
		} else if v > c {
			cur = u.ifs[cur].r
		} else {
			break
		}
	}
	return cur
}

func (u *BinarySearchTree[T, S]) rebalances() bool {
	return u.strategy == AVL
}

// Get the node holding v.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T, S]) Get(v T) (Node[T, S], bool) {
	return u.at(u.search(v))
}

func (u *BinarySearchTree[T, S]) Contains(v T) bool {
	return u.search(v) != 0
}

// Put v into the tree as a new leaf. Returns *DuplicateValueError and leaves the tree
// untouched if v is already present.
// Time: O(D)
func (u *BinarySearchTree[T, S]) Put(v T) error {
	var p S
	left := false
	for cur := u.root; cur != 0; {
		p = cur
		if c := u.ifs[cur].v; v < c {
			cur, left = u.ifs[cur].l, true
		} else if v > c {
			cur, left = u.ifs[cur].r, false
		} else {
			return &DuplicateValueError{v}
		}
	}
	n := u.alloc(v, p)
	if p == 0 {
		u.root = n
	} else if left {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
	u.sz++
	u.retrace(p, u.rebalances())
	return nil
}

// Remove v from the tree, returning a detached node holding it. Returns *InvalidNodeError and
// leaves the tree untouched if v is absent. A node with two children is replaced by its
// in-order successor.
// Time: O(D)
func (u *BinarySearchTree[T, S]) Remove(v T) (Node[T, S], error) {
	z := u.search(v)
	if z == 0 {
		return Node[T, S]{}, &InvalidNodeError{v}
	}
	from := u.unlink(z)
	u.addFree(z)
	u.sz--
	u.retrace(from, u.rebalances())
	return NewNode[T, S](v), nil
}

// Replace old by nv. Fails with *DuplicateValueError if nv is present, or *InvalidNodeError
// if old is absent, before anything changes.
func (u *BinarySearchTree[T, S]) Replace(old, nv T) error {
	if old == nv {
		if u.search(old) == 0 {
			return &InvalidNodeError{old}
		}
		return nil
	}
	if u.search(nv) != 0 {
		return &DuplicateValueError{nv}
	}
	if _, err := u.Remove(old); err != nil {
		return err
	}
	return u.Put(nv)
}

// Size returns the number of values.
// Time: O(1); Space: O(1)
func (u *BinarySearchTree[T, S]) Size() uint {
	return uint(u.sz)
}

func (u *BinarySearchTree[T, S]) Empty() bool {
	return u.sz == 0
}

func (u *BinarySearchTree[T, S]) Root() (Node[T, S], bool) {
	return u.at(u.root)
}

// Clear the tree, keeping the allocated memory. Outstanding handles become detached.
func (u *BinarySearchTree[T, S]) Clear() {
	u.reset()
}

// Min returns the node holding the smallest value, or *NilRootError on an empty tree.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T, S]) Min() (Node[T, S], error) {
	if u.root == 0 {
		return Node[T, S]{}, &NilRootError{}
	}
	n, _ := u.at(u.minimum(u.root))
	return n, nil
}

// Max returns the node holding the largest value, or *NilRootError on an empty tree.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T, S]) Max() (Node[T, S], error) {
	if u.root == 0 {
		return Node[T, S]{}, &NilRootError{}
	}
	n, _ := u.at(u.maximum(u.root))
	return n, nil
}

// Predecessor returns the greatest value less than v. v doesn't need to be in the tree.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T, S]) Predecessor(v T) (T, bool) {
	var p S
	for cur := u.root; cur != 0; {
		if v <= u.ifs[cur].v {
			cur = u.ifs[cur].l
		} else {
			p = cur
			cur = u.ifs[cur].r
		}
	}
	return u.ifs[p].v, p != 0
}

// Successor returns the smallest value greater than v. v doesn't need to be in the tree.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T, S]) Successor(v T) (T, bool) {
	var p S
	for cur := u.root; cur != 0; {
		if v < u.ifs[cur].v {
			p = cur
			cur = u.ifs[cur].l
		} else {
			cur = u.ifs[cur].r
		}
	}
	return u.ifs[p].v, p != 0
}

// Height of the subtree rooted at the node holding v: a leaf is 1, 0 if v is absent.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T, S]) Height(v T) uint {
	return uint(u.ifs[u.search(v)].h)
}

// TreeHeight is the Height of the root, 0 for an empty tree.
func (u *BinarySearchTree[T, S]) TreeHeight() uint {
	return uint(u.ifs[u.root].h)
}

// Depth of the node holding v: the number of parent links to the root, which has depth 0.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T, S]) Depth(v T) (uint, bool) {
	i := u.search(v)
	if i == 0 {
		return 0, false
	}
	var d uint
	for i = u.ifs[i].p; i != 0; i = u.ifs[i].p {
		d++
	}
	return d, true
}

// Corrupt returns whether the tree breaks its own invariants: ordering, parent links,
// stored heights, size, and with the AVL strategy the balance of every node. Recursive.
// Time: O(n)
func (u *BinarySearchTree[T, S]) Corrupt() bool {
	if u.ifs[u.root].p != 0 || u.ifs[0] != (info[T, S]{}) {
		return true
	}
	var cnt S
	var check func(i S, lo, hi *T) (S, bool)
	check = func(i S, lo, hi *T) (S, bool) {
		if i == 0 {
			return 0, true
		}
		n := &u.ifs[i]
		if (lo != nil && n.v <= *lo) || (hi != nil && n.v >= *hi) {
			return 0, false
		}
		if (n.l != 0 && u.ifs[n.l].p != i) || (n.r != 0 && u.ifs[n.r].p != i) {
			return 0, false
		}
		cnt++
		lh, ok := check(n.l, lo, &n.v)
		if !ok {
			return 0, false
		}
		rh, ok := check(n.r, &n.v, hi)
		if !ok || n.h != 1+max(lh, rh) || (u.rebalances() && !balanced(lh, rh)) {
			return 0, false
		}
		return n.h, true
	}
	_, ok := check(u.root, nil, nil)
	return !ok || cnt != u.sz
}
