package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/bst"
	"github.com/katalvlaran/lvlathds/builder"
	"github.com/katalvlaran/lvlathds/core"
	"github.com/katalvlaran/lvlathds/heap"
	"github.com/katalvlaran/lvlathds/rmq"
)

// ExampleNewHeap selects a splittable implementation by capability.
func ExampleNewHeap() {
	h, err := builder.NewHeap[int, struct{}](heap.Natural[int](), builder.WithSplit())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, k := range []int{8, 3, 5, 1} {
		h.Insert(k)
	}
	high, _ := h.(bst.Tree[int, struct{}]).SplitGreater(4)
	lo, _ := h.FindMin()
	hi, _ := high.FindMin()
	fmt.Println(lo.Key(), hi.Key())

	_, err = builder.NewHeap[int, struct{}](heap.Natural[int](),
		builder.WithHeapImpl(builder.Pairing), builder.WithSplit())
	fmt.Println(err)
	// Output:
	// 1 5
	// NewHeap: pairing cannot split: builder: implementation does not support the requested capability
}

// ExampleNewRMQ answers a range-minimum query with the default structure.
func ExampleNewRMQ() {
	s := []int{4, 2, 7, 2, 9}
	r, _ := builder.NewRMQ(rmq.OfInts(s), len(s))
	i, _ := r.RangeMin(1, 4)
	fmt.Println(i, s[i])
	// Output: 1 2
}

// ExampleBuildGraph composes two fixtures into one graph.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected()},
		[]builder.BuilderOption{builder.WithConstantWeight(2)},
		builder.Path(3),
		builder.Star(3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Print(e.From, "→", e.To, " ")
	}
	fmt.Println()
	// Output:
	// 6 6
	// 0→1 1→2 3→4 4→3 3→5 5→3
}
