package rmq_test

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/rmq"
)

// ExampleNewCartesian finds range minima of a slice.
func ExampleNewCartesian() {
	s := []int{5, 2, 8, 2, 9, 1, 7}
	r, _ := rmq.NewCartesian(rmq.OfInts(s), len(s))

	for _, q := range [][2]int{{0, 4}, {2, 4}, {4, 6}, {6, 6}} {
		m, _ := r.RangeMin(q[0], q[1])
		fmt.Printf("[%d,%d] -> s[%d]=%d\n", q[0], q[1], m, s[m])
	}
	// Output:
	// [0,4] -> s[1]=2
	// [2,4] -> s[3]=2
	// [4,6] -> s[5]=1
	// [6,6] -> s[6]=7
}

// ExampleNewPlusMinusOne queries depths along an Euler tour.
func ExampleNewPlusMinusOne() {
	depth := []int{0, 1, 2, 1, 2, 1, 0, 1, 0}
	r, _ := rmq.NewPlusMinusOne(rmq.OfInts(depth), len(depth))

	m, _ := r.RangeMin(2, 4)
	fmt.Println(m, depth[m])
	m, _ = r.RangeMin(1, 7)
	fmt.Println(m, depth[m])
	// Output:
	// 3 1
	// 6 0
}
