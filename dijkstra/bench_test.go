package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/lvlathds/builder"
	"github.com/katalvlaran/lvlathds/dijkstra"
)

// BenchmarkDijkstra_Grid runs from a corner of a 100x100 grid with random weights.
func BenchmarkDijkstra_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 10)},
		builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, dijkstra.Source(0))
	}
}
