package BSTree

// Balance rebuilds the tree into a perfectly balanced shape: the middle of the sorted values
// becomes the root and both halves are built the same way. The height becomes
// ceil(log2(n+1)), which satisfies the AVL property. Slots are relinked in place, so
// handles stay valid. Recursive, with depth O(log n).
// Time: O(n); Space: O(n)
func (u *BinarySearchTree[T, S]) Balance() {
	if u.root == 0 {
		return
	}
	is := make([]S, 0, u.sz)
	u.InOrder(func(n Node[T, S]) bool {
		is = append(is, n.i)
		return true
	})
	var build func(lo, hi int, p S) S
	build = func(lo, hi int, p S) S {
		if lo >= hi {
			return 0
		}
		mid := int(uint(lo+hi) >> 1)
		i := is[mid]
		n := &u.ifs[i]
		n.p = p
		n.l = build(lo, mid, i)
		n.r = build(mid+1, hi, i)
		u.fix(i)
		return i
	}
	u.root = build(0, len(is), 0)
}

// IsBalanced reports whether the heights of the children of every node differ by at most 1.
// Time: O(n); Space: O(1)
func (u *BinarySearchTree[T, S]) IsBalanced() bool {
	for i := 1; i < len(u.ifs); i++ {
		if u.ifs[i].h != 0 && !u.balancedAt(S(i)) {
			return false
		}
	}
	return true
}

// Restructure performs a trinode restructuring at the node x holding v, its parent y and
// grandparent z: the middle of the three in sorted order takes z's place with the other two
// as its children, and the four subtrees hanging off them are reattached in order. It
// implements the single and double rotations alike. Returns the new local root, or
// *InvalidNodeError if v is absent or its node has no grandparent.
// With the AVL strategy, a restructuring that leaves any node unbalanced is followed by Balance.
// Time: O(D)
func (u *BinarySearchTree[T, S]) Restructure(v T) (Node[T, S], error) {
	x := u.search(v)
	if x == 0 || u.ifs[x].p == 0 || u.ifs[u.ifs[x].p].p == 0 {
		return Node[T, S]{}, &InvalidNodeError{v}
	}
	b := u.restructure(x)
	ok := u.retrace(b, false) && u.balancedAt(u.ifs[b].l) && u.balancedAt(u.ifs[b].r)
	if !ok && u.rebalances() {
		u.Balance()
	}
	n, _ := u.at(b)
	return n, nil
}
