package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/g-m-twostay/ds-utils/Trees/BSTree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cross checks BSTree against https://github.com/emirpasic/gods avltree,
// https://github.com/google/btree and https://github.com/petar/GoLLRB as ordered set oracles.

const (
	opN      = 20000
	valRange = 5000
)

func godsKeys(t *avltree.Tree) []int {
	ks := make([]int, 0, t.Size())
	for _, k := range t.Keys() {
		ks = append(ks, k.(int))
	}
	return ks
}

func btreeKeys(t *btree.BTreeG[int]) []int {
	ks := make([]int, 0, t.Len())
	t.Ascend(func(k int) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

func llrbKeys(t *llrb.LLRB) []int {
	ks := make([]int, 0, t.Len())
	t.AscendGreaterOrEqual(llrb.Inf(-1), func(i llrb.Item) bool {
		ks = append(ks, int(i.(llrb.Int)))
		return true
	})
	return ks
}

func TestAgainstOracles(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	avl := BSTree.New[int](BSTree.AVL, uint32(valRange))
	bst := BSTree.New[int](BSTree.Unbalanced, uint32(valRange))
	g := avltree.NewWithIntComparator()
	bt := btree.NewOrderedG[int](8)
	lr := llrb.New()

	for range opN {
		v := rg.Intn(valRange)
		if rg.Intn(3) == 0 {
			_, had := bt.Delete(v)
			_, err := avl.Remove(v)
			assert.Equal(t, had, err == nil, "avl remove %d", v)
			_, err = bst.Remove(v)
			assert.Equal(t, had, err == nil, "bst remove %d", v)
			g.Remove(v)
			lr.Delete(llrb.Int(v))
		} else {
			_, had := bt.ReplaceOrInsert(v)
			err := avl.Put(v)
			if had {
				var dup *BSTree.DuplicateValueError
				assert.ErrorAs(t, err, &dup, "avl put %d", v)
			} else {
				assert.NoError(t, err, "avl put %d", v)
			}
			assert.Equal(t, had, bst.Put(v) != nil, "bst put %d", v)
			g.Put(v, struct{}{})
			lr.ReplaceOrInsert(llrb.Int(v))
		}
	}

	want := btreeKeys(bt)
	require.Equal(t, want, godsKeys(g))
	require.Equal(t, want, llrbKeys(lr))
	require.Equal(t, want, avl.Values(BSTree.Inorder))
	require.Equal(t, want, bst.Values(BSTree.Inorder))
	require.Equal(t, uint(bt.Len()), avl.Size())
	require.False(t, avl.Corrupt())
	require.False(t, bst.Corrupt())
	require.True(t, avl.IsBalanced())

	for v := range valRange {
		_, found := g.Get(v)
		assert.Equal(t, found, avl.Contains(v), "contains %d", v)
		assert.Equal(t, lr.Has(llrb.Int(v)), bst.Contains(v), "contains %d", v)
	}
	if n, err := avl.Min(); assert.NoError(t, err) {
		assert.Equal(t, int(lr.Min().(llrb.Int)), n.Value())
	}
	if n, err := avl.Max(); assert.NoError(t, err) {
		assert.Equal(t, int(lr.Max().(llrb.Int)), n.Value())
	}
}

func TestHeightAgainstGods(t *testing.T) {
	rg := rand.New(rand.NewSource(2))
	avl := BSTree.New[int](BSTree.AVL, uint32(0))
	g := avltree.NewWithIntComparator()
	for _, v := range rg.Perm(4096) {
		require.NoError(t, avl.Put(v))
		g.Put(v, nil)
	}
	var godsHeight func(n *avltree.Node) uint
	godsHeight = func(n *avltree.Node) uint {
		if n == nil {
			return 0
		}
		return 1 + max(godsHeight(n.Children[0]), godsHeight(n.Children[1]))
	}
	//both are AVL trees of the same size, so their heights obey the same bounds; they needn't be equal.
	h, gh := avl.TreeHeight(), godsHeight(g.Root)
	assert.InDelta(t, float64(gh), float64(h), 2)
	assert.LessOrEqual(t, h, uint(17))
}
