package dscheck

import (
	"github.com/katalvlaran/lvlathds/builder"
	"github.com/katalvlaran/lvlathds/unionfind"
)

// unionFindTrial drives both union-find variants through the same random
// unions and value shifts and compares them with an explicit labeling.
func unionFindTrial(r *runner, t *trial) error {
	n := r.in.N
	plain := builder.NewUnionFind(builder.WithExpectedSize(n))
	value, _ := builder.NewUnionFind(builder.WithValues()).(*unionfind.ValueUnionFind)
	for i := 0; i < n; i++ {
		plain.Make()
		value.Make()
	}

	label := make([]int, n)
	vals := make([]float64, n)
	for i := range label {
		label[i] = i
	}

	var plainBad, valueBad int
	for step := 0; step < 2*n; step++ {
		a, b := t.rng.Intn(n), t.rng.Intn(n)
		switch t.rng.Intn(4) {
		case 0, 1:
			plain.Union(a, b)
			value.Union(a, b)
			if la, lb := label[a], label[b]; la != lb {
				for i := range label {
					if label[i] == lb {
						label[i] = la
					}
				}
			}
		case 2:
			d := float64(t.rng.Intn(21) - 10)
			value.AddValue(a, d)
			for i := range label {
				if label[i] == label[a] {
					vals[i] += d
				}
			}
		default:
			same := label[a] == label[b]
			if (plain.Find(a) == plain.Find(b)) != same {
				plainBad++
			}
			if (value.Find(a) == value.Find(b)) != same {
				valueBad++
			}
			if value.GetValue(a) != vals[a] {
				valueBad++
			}
		}
	}

	t.record("plain", plainBad)
	t.record("value", valueBad)
	return nil
}
