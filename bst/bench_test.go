package bst_test

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/katalvlaran/lvlathds/bst"
)

const benchN = 1 << 14

func benchKeys() []int {
	rng := rand.New(rand.NewSource(42))
	keys := make([]int, benchN)
	for i := range keys {
		keys[i] = rng.Intn(1 << 30)
	}
	return keys
}

func benchTree(b *testing.B, build func() bst.Tree[int, struct{}]) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := build()
		for _, k := range keys {
			t.Insert(k)
		}
		for _, k := range keys {
			_, _ = t.FindOrGreater(k)
		}
		for !t.IsEmpty() {
			_, _ = t.ExtractMin()
		}
	}
}

func BenchmarkRedBlack(b *testing.B) {
	benchTree(b, func() bst.Tree[int, struct{}] { return bst.NewOrderedRedBlack[int, struct{}]() })
}

func BenchmarkRedBlackExtended(b *testing.B) {
	benchTree(b, func() bst.Tree[int, struct{}] {
		return bst.NewOrderedRedBlack[int, struct{}](bst.NewSizeExtension[int, struct{}]())
	})
}

func BenchmarkSplay(b *testing.B) {
	benchTree(b, func() bst.Tree[int, struct{}] { return bst.NewOrderedSplay[int, struct{}]() })
}

// BenchmarkLLRB is the left-leaning red-black baseline.
func BenchmarkLLRB(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := llrb.New()
		for _, k := range keys {
			t.InsertNoReplace(llrb.Int(k))
		}
		for _, k := range keys {
			t.AscendGreaterOrEqual(llrb.Int(k), func(llrb.Item) bool { return false })
		}
		for t.Len() > 0 {
			t.DeleteMin()
		}
	}
}

// BenchmarkBTree is the B-tree baseline.
func BenchmarkBTree(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := btree.NewOrderedG[int](32)
		for _, k := range keys {
			t.ReplaceOrInsert(k)
		}
		for _, k := range keys {
			t.AscendGreaterOrEqual(k, func(int) bool { return false })
		}
		for t.Len() > 0 {
			t.DeleteMin()
		}
	}
}
