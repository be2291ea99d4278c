package bst_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlathds/bst"
	"github.com/katalvlaran/lvlathds/heap"
)

func TestSplay_AccessSplaysToRoot(t *testing.T) {
	tree := bst.NewOrderedSplay[int, int]()
	for i := 0; i < 100; i++ {
		tree.Insert(i)
	}
	_, err := tree.Find(37)
	require.NoError(t, err)
	root, ok := bst.SplayRoot(tree)
	require.True(t, ok)
	assert.Equal(t, 37, root)

	_, err = tree.FindMin()
	require.NoError(t, err)
	root, _ = bst.SplayRoot(tree)
	assert.Equal(t, 0, root)

	_, err = tree.FindGreater(50)
	require.NoError(t, err)
	root, _ = bst.SplayRoot(tree)
	assert.Equal(t, 51, root)
	require.NoError(t, bst.CheckSplay(tree))
	assert.Equal(t, 100, tree.Size())
}

// Neighbor queries splay both the queried node and the answer, so a long
// unsplayed chain collapses around them.
func TestSplay_NeighborsSplayBothEnds(t *testing.T) {
	const n = 1000
	tree := bst.NewOrderedSplay[int, int]()
	refs := make([]heap.Ref[int, int], n)
	for i := 0; i < n; i++ {
		refs[i] = tree.Insert(i) // ascending inserts leave a left chain
	}
	require.Equal(t, n-1, bst.SplayDepth(refs[0]))

	s, err := tree.Successor(refs[0])
	require.NoError(t, err)
	assert.Equal(t, 1, s.Key())
	assert.Equal(t, 0, bst.SplayDepth(s))
	assert.Equal(t, 1, bst.SplayDepth(refs[0]))

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		k := 1 + rng.Intn(n-2)
		s, err := tree.Successor(refs[k])
		require.NoError(t, err)
		assert.Equal(t, k+1, s.Key())
		assert.Equal(t, 0, bst.SplayDepth(s))
		assert.Equal(t, 1, bst.SplayDepth(refs[k]), "key %d", k)

		p, err := tree.Predecessor(refs[k])
		require.NoError(t, err)
		assert.Equal(t, k-1, p.Key())
		assert.Equal(t, 1, bst.SplayDepth(refs[k]), "key %d", k)
	}
	require.NoError(t, bst.CheckSplay(tree))
	assert.Equal(t, n, tree.Size())
}

func TestSplay_SplitProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 100; trial++ {
		tree := bst.NewOrderedSplay[int, int]()
		n := rng.Intn(60)
		orig := make([]int, 0, n)
		for i := 0; i < n; i++ {
			k := rng.Intn(40)
			tree.Insert(k)
			orig = append(orig, k)
		}
		sort.Ints(orig)
		pivot := rng.Intn(44) - 2

		var part *bst.Splay[int, int]
		var splitSmaller bool
		if rng.Intn(2) == 0 {
			p, err := tree.SplitSmaller(pivot)
			require.NoError(t, err)
			part, splitSmaller = p.(*bst.Splay[int, int]), true
		} else {
			p, err := tree.SplitGreater(pivot)
			require.NoError(t, err)
			part = p.(*bst.Splay[int, int])
		}
		require.NoError(t, bst.CheckSplay(tree))
		require.NoError(t, bst.CheckSplay(part))
		require.Equal(t, n, tree.Size()+part.Size(), "trial %d", trial)

		for r := range part.All() {
			if splitSmaller {
				require.Less(t, r.Key(), pivot)
			} else {
				require.Greater(t, r.Key(), pivot)
			}
		}
		for r := range tree.All() {
			if splitSmaller {
				require.GreaterOrEqual(t, r.Key(), pivot)
			} else {
				require.LessOrEqual(t, r.Key(), pivot)
			}
		}

		require.NoError(t, tree.Meld(part))
		require.NoError(t, bst.CheckSplay(tree))
		got := make([]int, 0, n)
		for r := range tree.All() {
			got = append(got, r.Key())
		}
		if diff := cmp.Diff(orig, got); diff != "" {
			t.Fatalf("trial %d: split+meld lost keys (-want +got):\n%s", trial, diff)
		}
	}
}

func TestSplay_SplitByRef(t *testing.T) {
	tree := bst.NewOrderedSplay[int, string]()
	for i := 0; i < 10; i++ {
		tree.Insert(i)
	}
	pivot, err := tree.Find(6)
	require.NoError(t, err)

	right, err := tree.Split(pivot)
	require.NoError(t, err)
	assert.Equal(t, 6, tree.Size())
	assert.Equal(t, 4, right.Size())
	m, err := right.FindMin()
	require.NoError(t, err)
	assert.Same(t, pivot, m)

	// pivot now belongs to the new tree.
	require.NoError(t, right.Remove(pivot))
	assert.Equal(t, 3, right.Size())
}

func TestSplay_MeldDisjointBothWays(t *testing.T) {
	low := bst.NewOrderedSplay[int, int]()
	high := bst.NewOrderedSplay[int, int]()
	for i := 0; i < 20; i++ {
		low.Insert(i)
		high.Insert(100 + i)
	}
	require.NoError(t, high.Meld(low))
	require.NoError(t, bst.CheckSplay(high))
	assert.Equal(t, 40, high.Size())
	m, _ := high.FindMin()
	x, _ := high.FindMax()
	assert.Equal(t, 0, m.Key())
	assert.Equal(t, 119, x.Key())
}
