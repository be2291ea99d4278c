package dscheck

import (
	"github.com/katalvlaran/lvlathds/builder"
	"github.com/katalvlaran/lvlathds/lca"
)

// naiveLCA lifts the deeper vertex, then both, until they meet; -1 when u
// and v are in different trees.
func naiveLCA(parent, depth []int, u, v int) int {
	for depth[u] > depth[v] {
		u = parent[u]
	}
	for depth[v] > depth[u] {
		v = parent[v]
	}
	for u != v {
		if parent[u] == -1 {
			return -1
		}
		u, v = parent[u], parent[v]
	}
	return u
}

func lcaTrial(r *runner, t *trial) error {
	n := r.in.N
	roots := 1 + t.rng.Intn(min(n, 3))
	parent := builder.RandomParents(n, roots, builder.WithRand(t.rng))

	// RandomParents points to smaller ids, so one forward pass sets depths.
	depth := make([]int, n)
	for v := range parent {
		if p := parent[v]; p != -1 {
			depth[v] = depth[p] + 1
		}
	}

	idx, err := lca.New(parent)
	if err != nil {
		return err
	}

	bad := 0
	for q := 0; q < n; q++ {
		u, v := t.rng.Intn(n), t.rng.Intn(n)
		want := naiveLCA(parent, depth, u, v)
		got, err := idx.Query(u, v)
		switch {
		case want == -1:
			if err == nil {
				bad++
			}
		case err != nil || got != want:
			bad++
		}
	}

	t.record("eulertour", bad)
	return nil
}
