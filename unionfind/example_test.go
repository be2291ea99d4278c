package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/unionfind"
)

// ExampleUnionFind merges a few elements and checks connectivity.
func ExampleUnionFind() {
	uf := unionfind.New(unionfind.WithSize(5))
	uf.Union(0, 1)
	uf.Union(3, 4)
	uf.Union(1, 4)

	fmt.Println(uf.Find(0) == uf.Find(3))
	fmt.Println(uf.Find(0) == uf.Find(2))
	// Output:
	// true
	// false
}

// ExampleValueUnionFind shifts the value of a whole set at once.
func ExampleValueUnionFind() {
	uf := unionfind.NewValue()
	a := uf.MakeWithValue(1)
	b := uf.MakeWithValue(2)
	uf.Union(a, b)
	uf.AddValue(a, 10)

	fmt.Println(uf.GetValue(a), uf.GetValue(b))
	// Output: 11 12
}
