package bst_test

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/bst"
)

// ExampleRedBlack shows ordered lookups on a red-black tree.
func ExampleRedBlack() {
	t := bst.NewOrderedRedBlack[int, string]()
	for _, k := range []int{40, 10, 30, 20} {
		t.InsertWithValue(k, fmt.Sprint("v", k))
	}
	r, _ := t.FindOrSmaller(25)
	fmt.Println(r.Key(), r.Value())
	r, _ = t.FindGreater(30)
	fmt.Println(r.Key())
	_, err := t.SplitSmaller(20)
	fmt.Println(err)
	// Output:
	// 20 v20
	// 40
	// bst: operation not supported by this tree
}

// ExampleSizeExtension queries subtree sizes kept by an extension.
func ExampleSizeExtension() {
	size := bst.NewSizeExtension[int, struct{}]()
	t := bst.NewOrderedRedBlack[int, struct{}](size)
	var last = t.Insert(0)
	for k := 1; k < 8; k++ {
		last = t.Insert(k)
	}
	n, _ := size.SubtreeSize(last)
	fmt.Println(n)
	// Output: 1
}

// ExampleSplay_SplitSmaller detaches the low part of a splay tree.
func ExampleSplay_SplitSmaller() {
	t := bst.NewOrderedSplay[int, struct{}]()
	for k := 1; k <= 6; k++ {
		t.Insert(k)
	}
	low, _ := t.SplitSmaller(4)
	for r := range low.All() {
		fmt.Print(r.Key(), " ")
	}
	fmt.Println("|", t.Size())
	// Output: 1 2 3 | 3
}
