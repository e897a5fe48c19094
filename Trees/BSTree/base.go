package BSTree

import (
	"golang.org/x/exp/constraints"
)

// A slot in the arena.
// The slot at index 0 is the nil sentinel: all links 0, h=0. It is never written.
// h is the height of the subtree rooted here: an empty subtree is 0, a leaf is 1.
// A released slot has h=0 and l pointing to the next free slot.
type info[T any, S constraints.Unsigned] struct {
	v       T
	l, r, p S
	h       S
}

type base[T any, S constraints.Unsigned] struct {
	ifs      []info[T, S]
	root, sz S
	free     S // head of the linked list of released slots; info[S]::l represents next.
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[T, S], 1, uint(hint)+1)}
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[T, S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index.
func (u *base[T, S]) popFree() S {
	b := u.free
	if b != 0 {
		u.free = u.ifs[b].l
	}
	return b
}

// alloc a leaf holding v under parent p. Released slots are reused before the arena grows.
// The parent's child link isn't set.
func (u *base[T, S]) alloc(v T, p S) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[T, S]{v: v, p: p, h: 1}
		return i
	}
	u.ifs = append(u.ifs, info[T, S]{v: v, p: p, h: 1})
	return S(len(u.ifs) - 1)
}

func (u *base[T, S]) reset() {
	clear(u.ifs)
	u.ifs = u.ifs[:1]
	u.root, u.sz, u.free = 0, 0, 0
}

// fix the stored height of i from its children.
func (u *base[T, S]) fix(i S) {
	n := &u.ifs[i]
	n.h = 1 + max(u.ifs[n.l].h, u.ifs[n.r].h)
}

func balanced[S constraints.Unsigned](lh, rh S) bool {
	if lh > rh {
		return lh-rh <= 1
	}
	return rh-lh <= 1
}

func (u *base[T, S]) balancedAt(i S) bool {
	return balanced(u.ifs[u.ifs[i].l].h, u.ifs[u.ifs[i].r].h)
}

// tallerChild of i. A tie goes to the child on the same side as i is to its parent,
// and to the left child at the root.
func (u *base[T, S]) tallerChild(i S) S {
	n := &u.ifs[i]
	if lh, rh := u.ifs[n.l].h, u.ifs[n.r].h; lh > rh {
		return n.l
	} else if rh > lh {
		return n.r
	}
	if p := n.p; p != 0 && u.ifs[p].r == i {
		return n.r
	}
	return n.l
}

func (u *base[T, S]) setLeft(p, c S) {
	u.ifs[p].l = c
	if c != 0 {
		u.ifs[c].p = p
	}
}

func (u *base[T, S]) setRight(p, c S) {
	u.ifs[p].r = c
	if c != 0 {
		u.ifs[c].p = p
	}
}

// replace o with n under o's parent, or at the root. n may be 0. o's own links are kept.
func (u *base[T, S]) replace(o, n S) {
	p := u.ifs[o].p
	if p == 0 {
		u.root = n
	} else if u.ifs[p].l == o {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
	if n != 0 {
		u.ifs[n].p = p
	}
}

func (u *base[T, S]) minimum(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *base[T, S]) maximum(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// unlink slot z from the tree without releasing it. A node with two children is replaced
// by its in-order successor, which is moved, not copied, so other slots keep their values.
// Returns the lowest slot whose subtree changed, where retracing must start.
// Time: O(D); Space: O(1)
func (u *base[T, S]) unlink(z S) S {
	zn := u.ifs[z]
	if zn.l == 0 {
		u.replace(z, zn.r)
		return zn.p
	} else if zn.r == 0 {
		u.replace(z, zn.l)
		return zn.p
	}
	from, y := S(0), u.minimum(zn.r)
	if y != zn.r {
		from = u.ifs[y].p
		u.replace(y, u.ifs[y].r)
		u.setRight(y, zn.r)
	} else {
		from = y
	}
	u.replace(z, y)
	u.setLeft(y, zn.l)
	return from
}

// restructure performs the trinode restructuring at x, its parent y and grandparent z, which
// must exist. With (a,b,c) the in-order listing of {x,y,z} and T0..T3 the in-order listing
// of their other subtrees, b takes z's place with children a and c; T0,T1 go under a and T2,T3
// under c. This covers all four single and double rotations. Heights of a, b, c are fixed.
// Returns b.
// Time: O(1); Space: O(1)
func (u *base[T, S]) restructure(x S) S {
	y := u.ifs[x].p
	z := u.ifs[y].p
	xn, yn, zn := u.ifs[x], u.ifs[y], u.ifs[z]
	var a, b, c, t0, t1, t2, t3 S
	if zn.r == y {
		if yn.r == x {
			a, b, c = z, y, x
			t0, t1, t2, t3 = zn.l, yn.l, xn.l, xn.r
		} else {
			a, b, c = z, x, y
			t0, t1, t2, t3 = zn.l, xn.l, xn.r, yn.r
		}
	} else {
		if yn.l == x {
			a, b, c = x, y, z
			t0, t1, t2, t3 = xn.l, xn.r, yn.r, zn.r
		} else {
			a, b, c = y, x, z
			t0, t1, t2, t3 = yn.l, xn.l, xn.r, zn.r
		}
	}
	u.replace(z, b)
	u.setLeft(b, a)
	u.setRight(b, c)
	u.setLeft(a, t0)
	u.setRight(a, t1)
	u.setLeft(c, t2)
	u.setRight(c, t3)
	u.fix(a)
	u.fix(c)
	u.fix(b)
	return b
}

// retrace walks from i up to the root fixing heights. With rebalance, any unbalanced node met
// is restructured at its taller grandchild and the walk continues above the new local root.
// Returns whether every node visited was balanced when it was reached.
// Time: O(D)
func (u *base[T, S]) retrace(i S, rebalance bool) bool {
	ok := true
	for i != 0 {
		u.fix(i)
		if !u.balancedAt(i) {
			ok = false
			if rebalance {
				i = u.restructure(u.tallerChild(u.tallerChild(i)))
			}
		}
		i = u.ifs[i].p
	}
	return ok
}
