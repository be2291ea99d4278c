package lca_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlathds/lca"
)

// randomForest returns a parent array where every vertex either is a root
// or points to a vertex with a smaller id, relabelled by a permutation.
func randomForest(rng *rand.Rand, n, roots int) []int {
	perm := rng.Perm(n)
	parent := make([]int, n)
	for i := 0; i < n; i++ {
		if i < roots {
			parent[perm[i]] = -1
			continue
		}
		parent[perm[i]] = perm[rng.Intn(i)]
	}
	return parent
}

func naiveLCA(parent []int, u, v int) int {
	seen := map[int]bool{}
	for x := u; x != -1; x = parent[x] {
		seen[x] = true
	}
	for x := v; x != -1; x = parent[x] {
		if seen[x] {
			return x
		}
	}
	return -1
}

func naiveDepth(parent []int, v int) int {
	d := 0
	for ; parent[v] != -1; v = parent[v] {
		d++
	}
	return d
}

func TestQuery_RandomForests(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, tc := range []struct{ n, roots int }{{1, 1}, {2, 1}, {10, 1}, {50, 3}, {300, 1}, {300, 20}} {
		parent := randomForest(rng, tc.n, tc.roots)
		idx, err := lca.New(parent)
		require.NoError(t, err)
		require.Equal(t, tc.n, idx.Len())

		for u := 0; u < tc.n; u++ {
			d, err := idx.Depth(u)
			require.NoError(t, err)
			require.Equal(t, naiveDepth(parent, u), d)

			for v := 0; v < tc.n; v++ {
				got, err := idx.Query(u, v)
				want := naiveLCA(parent, u, v)
				if want == -1 {
					require.ErrorIs(t, err, lca.ErrDifferentTrees, "n=%d (%d,%d)", tc.n, u, v)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, want, got, "n=%d (%d,%d)", tc.n, u, v)
			}
		}
	}
}

func TestQuery_Path(t *testing.T) {
	// A long path stresses the tour depth.
	const n = 2000
	parent := make([]int, n)
	parent[0] = -1
	for v := 1; v < n; v++ {
		parent[v] = v - 1
	}
	idx, err := lca.New(parent)
	require.NoError(t, err)

	got, err := idx.Query(n-1, 700)
	require.NoError(t, err)
	assert.Equal(t, 700, got)
	d, _ := idx.Depth(n - 1)
	assert.Equal(t, n-1, d)
}

func TestNew_BadParent(t *testing.T) {
	for name, parent := range map[string][]int{
		"out of range": {-1, 5},
		"negative":     {-1, -2},
		"self loop":    {-1, 1},
		"cycle":        {-1, 2, 3, 1},
	} {
		_, err := lca.New(parent)
		assert.ErrorIs(t, err, lca.ErrBadParent, name)
	}
}

func TestQuery_OutOfRange(t *testing.T) {
	idx, err := lca.New([]int{-1, 0, 0})
	require.NoError(t, err)
	_, err = idx.Query(0, 3)
	assert.ErrorIs(t, err, lca.ErrVertexOutOfRange)
	_, err = idx.Query(-1, 0)
	assert.ErrorIs(t, err, lca.ErrVertexOutOfRange)
	_, err = idx.Depth(7)
	assert.ErrorIs(t, err, lca.ErrVertexOutOfRange)

	empty, err := lca.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}
