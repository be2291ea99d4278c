package dyntree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlathds/dyntree"
)

const benchN = 1 << 12

func benchForest(b *testing.B, opts func() []dyntree.Option) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < b.N; i++ {
		dt := dyntree.New(opts()...)
		vs := make([]*dyntree.Vertex, benchN)
		for j := range vs {
			vs[j] = dt.MakeTree()
		}
		for j := 1; j < benchN; j++ {
			_ = dt.Link(vs[j], vs[rng.Intn(j)], float64(rng.Intn(1000)))
		}
		for j := 0; j < benchN; j++ {
			v := vs[rng.Intn(benchN)]
			dt.AddWeight(v, 1)
			_, _, _ = dt.FindMinEdge(v)
		}
	}
}

func BenchmarkTree(b *testing.B) {
	benchForest(b, func() []dyntree.Option {
		return []dyntree.Option{dyntree.WithWeightLimit(1e7)}
	})
}

func BenchmarkTreeWithSize(b *testing.B) {
	benchForest(b, func() []dyntree.Option {
		return []dyntree.Option{dyntree.WithWeightLimit(1e7), dyntree.WithExtensions(dyntree.NewTreeSize())}
	})
}
