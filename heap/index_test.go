package heap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlathds/heap"
)

func TestIndexPairing_Basic(t *testing.T) {
	h := heap.NewIndexPairing[float64](6, heap.Natural[float64]())
	require.Equal(t, 6, h.Cap())

	for id, k := range []float64{5, 10, 1, 3, 9} {
		require.NoError(t, h.Insert(id, k))
	}
	require.NoError(t, heap.CheckIndexPairing(h))
	assert.True(t, h.Contains(2))
	assert.False(t, h.Contains(5))
	assert.False(t, h.Contains(99))

	k, err := h.Key(1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, k)

	var order []int
	for !h.IsEmpty() {
		id, err := h.ExtractMin()
		require.NoError(t, err)
		order = append(order, id)
		require.NoError(t, heap.CheckIndexPairing(h))
	}
	assert.Equal(t, []int{2, 3, 0, 4, 1}, order)
	assert.False(t, h.Contains(2), "extracted ids leave the heap")
}

func TestIndexPairing_Errors(t *testing.T) {
	h := heap.NewIndexPairing[int](3, heap.Natural[int]())

	_, err := h.FindMin()
	assert.ErrorIs(t, err, heap.ErrEmpty)
	_, err = h.ExtractMin()
	assert.ErrorIs(t, err, heap.ErrEmpty)

	assert.ErrorIs(t, h.Insert(3, 1), heap.ErrIndexOutOfRange)
	assert.ErrorIs(t, h.Insert(-1, 1), heap.ErrIndexOutOfRange)
	require.NoError(t, h.Insert(0, 4))
	assert.ErrorIs(t, h.Insert(0, 2), heap.ErrAlreadyInserted)

	assert.ErrorIs(t, h.Remove(1), heap.ErrNotInserted)
	assert.ErrorIs(t, h.DecreaseKey(1, 0), heap.ErrNotInserted)
	_, err = h.Key(2)
	assert.ErrorIs(t, err, heap.ErrNotInserted)

	assert.ErrorIs(t, h.DecreaseKey(0, 5), heap.ErrKeyIncreased)
	k, _ := h.Key(0)
	assert.Equal(t, 4, k)

	assert.Panics(t, func() { heap.NewIndexPairing[int](-1, heap.Natural[int]()) })
	assert.Panics(t, func() { heap.NewIndexPairing[int](1, nil) })
}

func TestIndexPairing_RandomAgainstSort(t *testing.T) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	h := heap.NewIndexPairing[int](n, heap.Natural[int]())
	keys := map[int]int{}

	for step := 0; step < 6000; step++ {
		id := rng.Intn(n)
		switch op := rng.Intn(10); {
		case op < 4:
			if h.Contains(id) {
				continue
			}
			k := rng.Intn(1000)
			require.NoError(t, h.Insert(id, k))
			keys[id] = k
		case op < 6:
			if !h.Contains(id) {
				continue
			}
			k := keys[id] - rng.Intn(50)
			require.NoError(t, h.DecreaseKey(id, k))
			keys[id] = k
		case op < 7:
			if !h.Contains(id) {
				continue
			}
			require.NoError(t, h.Remove(id))
			delete(keys, id)
		default:
			if h.IsEmpty() {
				continue
			}
			got, err := h.ExtractMin()
			require.NoError(t, err)
			for _, k := range keys {
				require.LessOrEqual(t, keys[got], k, "step %d: extracted id %d is not minimal", step, got)
			}
			delete(keys, got)
		}
		require.Equal(t, len(keys), h.Size())
	}
	require.NoError(t, heap.CheckIndexPairing(h))

	var ids []int
	for id := range h.All() {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	want := make([]int, 0, len(keys))
	for id := range keys {
		want = append(want, id)
	}
	sort.Ints(want)
	assert.Equal(t, want, ids)

	h.Clear()
	assert.True(t, h.IsEmpty())
	for id := 0; id < n; id++ {
		require.False(t, h.Contains(id))
	}
	require.NoError(t, h.Insert(7, 1), "cleared heap accepts ids again")
}
