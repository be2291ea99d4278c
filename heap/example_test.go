package heap_test

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/heap"
)

// ExamplePairing extracts keys in ascending order.
func ExamplePairing() {
	h := heap.NewOrderedPairing[int, struct{}]()
	for _, k := range []int{5, 10, 1, 3, 9} {
		h.Insert(k)
	}
	for !h.IsEmpty() {
		r, _ := h.ExtractMin()
		fmt.Print(r.Key(), " ")
	}
	fmt.Println()
	// Output: 1 3 5 9 10
}

// ExamplePairing_DecreaseKey moves an element to the front of the queue.
func ExamplePairing_DecreaseKey() {
	h := heap.NewOrderedPairing[int, string]()
	h.InsertWithValue(3, "c")
	h.InsertWithValue(2, "b")
	late := h.InsertWithValue(9, "z")

	_ = h.DecreaseKey(late, 1)
	m, _ := h.FindMin()
	fmt.Println(m.Key(), m.Value())
	// Output: 1 z
}

// ExampleIndexPairing shows the id-addressed variant.
func ExampleIndexPairing() {
	h := heap.NewIndexPairing[float64](4, heap.Natural[float64]())
	_ = h.Insert(0, 2.5)
	_ = h.Insert(3, 0.5)
	_ = h.Insert(1, 1.5)
	_ = h.DecreaseKey(0, 0.25)

	for !h.IsEmpty() {
		id, _ := h.ExtractMin()
		fmt.Print(id, " ")
	}
	fmt.Println()
	// Output: 0 3 1
}
