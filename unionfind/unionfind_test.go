package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlathds/unionfind"
)

// naiveSets is a relabelling oracle: label[x] names x's set.
type naiveSets struct {
	label []int
	value []float64
}

func (n *naiveSets) make(v float64) {
	n.label = append(n.label, len(n.label))
	n.value = append(n.value, v)
}

func (n *naiveSets) union(a, b int) {
	la, lb := n.label[a], n.label[b]
	for i := range n.label {
		if n.label[i] == lb {
			n.label[i] = la
		}
	}
}

func (n *naiveSets) add(x int, v float64) {
	l := n.label[x]
	for i := range n.label {
		if n.label[i] == l {
			n.value[i] += v
		}
	}
}

func TestUnionFind_Basic(t *testing.T) {
	uf := unionfind.New(unionfind.WithSize(4))
	require.Equal(t, 4, uf.Size())

	for i := 0; i < 4; i++ {
		assert.Equal(t, i, uf.Find(i), "fresh element is its own root")
	}

	r := uf.Union(0, 1)
	assert.Contains(t, []int{0, 1}, r)
	assert.Equal(t, uf.Find(0), uf.Find(1))
	assert.NotEqual(t, uf.Find(0), uf.Find(2))

	assert.Equal(t, uf.Find(2), uf.Union(2, 2), "self union returns the root")
	assert.Equal(t, r, uf.Union(1, 0), "re-union returns the existing root")

	id := uf.Make()
	assert.Equal(t, 4, id)
	assert.Equal(t, id, uf.Find(id))

	uf.Clear()
	assert.Equal(t, 0, uf.Size())
	assert.Equal(t, 0, uf.Make())
}

func TestUnionFind_OutOfRangePanics(t *testing.T) {
	uf := unionfind.New(unionfind.WithSize(2))
	assert.Panics(t, func() { uf.Find(2) })
	assert.Panics(t, func() { uf.Find(-1) })
	assert.Panics(t, func() { uf.Union(0, 5) })
	assert.Panics(t, func() { unionfind.WithSize(-1) })
	assert.Panics(t, func() { unionfind.WithCapacity(-3) })
}

func TestUnionFind_RandomAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 300

	var uf unionfind.Interface = unionfind.New(unionfind.WithCapacity(n))
	oracle := &naiveSets{}
	for i := 0; i < n; i++ {
		uf.Make()
		oracle.make(0)
	}

	for step := 0; step < 2000; step++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if rng.Intn(3) == 0 {
			uf.Union(a, b)
			oracle.union(a, b)
			continue
		}
		same := oracle.label[a] == oracle.label[b]
		require.Equal(t, same, uf.Find(a) == uf.Find(b), "step %d: %d ~ %d", step, a, b)
	}
}

func TestValueUnionFind_Semantics(t *testing.T) {
	uf := unionfind.NewValue()
	a := uf.MakeWithValue(1)
	b := uf.MakeWithValue(10)
	c := uf.Make()

	uf.AddValue(a, 2)
	assert.InDelta(t, 3, uf.GetValue(a), 1e-12)

	uf.Union(a, b)
	assert.InDelta(t, 3, uf.GetValue(a), 1e-12, "union preserves values")
	assert.InDelta(t, 10, uf.GetValue(b), 1e-12, "union preserves values")

	uf.AddValue(b, 5)
	assert.InDelta(t, 8, uf.GetValue(a), 1e-12)
	assert.InDelta(t, 15, uf.GetValue(b), 1e-12)
	assert.InDelta(t, 0, uf.GetValue(c), 1e-12, "other sets are untouched")
}

func TestValueUnionFind_RandomAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 200

	uf := unionfind.NewValue()
	oracle := &naiveSets{}
	for i := 0; i < n; i++ {
		v := float64(rng.Intn(100))
		uf.MakeWithValue(v)
		oracle.make(v)
	}

	for step := 0; step < 3000; step++ {
		x := rng.Intn(n)
		switch rng.Intn(4) {
		case 0:
			y := rng.Intn(n)
			uf.Union(x, y)
			oracle.union(x, y)
		case 1:
			v := float64(rng.Intn(21) - 10)
			uf.AddValue(x, v)
			oracle.add(x, v)
		case 2:
			uf.Find(x)
		default:
			require.InDelta(t, oracle.value[x], uf.GetValue(x), 1e-6, "step %d, element %d", step, x)
		}
	}
	for x := 0; x < n; x++ {
		require.InDelta(t, oracle.value[x], uf.GetValue(x), 1e-6, "element %d", x)
	}
}
