// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlathds/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every edge is registered at the hub.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200 // number of concurrent adds
	g := core.NewGraph(core.WithVertices(num + 1))
	var wg sync.WaitGroup
	wg.Add(num)

	// Launch num goroutines to connect the hub (vertex num) to vertex i
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge(num, id, float64(id))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	out, err := g.OutEdges(num)
	require.NoError(t, err)
	require.Len(t, out, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadersAndWriters mixes vertex growth, edge insertion and
// snapshot iteration to surface races under -race.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithVertices(1))
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)

	for i := 0; i < rounds; i++ {
		go func() {
			defer wg.Done()
			v := g.AddVertex()
			_, err := g.AddEdge(0, v, 1)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := g.AddEdge(0, 0, 2)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			for id, e := range g.Edges() {
				got, err := g.Edge(id)
				assert.NoError(t, err)
				assert.Equal(t, e, got)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, rounds+1, g.VertexCount())
	assert.Equal(t, 2*rounds, g.EdgeCount())
}
