package dscheck

import (
	"github.com/katalvlaran/lvlathds/builder"
	"github.com/katalvlaran/lvlathds/rmq"
)

// naiveRangeMin returns the leftmost minimum position of s[i..j].
func naiveRangeMin(s []int, i, j int) int {
	best := i
	for k := i + 1; k <= j; k++ {
		if s[k] < s[best] {
			best = k
		}
	}
	return best
}

func rmqTrial(r *runner, t *trial) error {
	n := r.in.N
	bound := n/2 + 1 // plenty of duplicates
	random, err := builder.RandomInts(n, bound, 0, builder.WithRand(t.rng))
	if err != nil {
		return err
	}
	walk, err := builder.PlusMinusOneWalk(n, 0, builder.WithRand(t.rng))
	if err != nil {
		return err
	}

	queries := make([][2]int, n)
	for q := range queries {
		i, j := t.rng.Intn(n), t.rng.Intn(n)
		queries[q] = [2]int{min(i, j), max(i, j)}
	}

	for _, impl := range r.rmqs {
		inputs := [][]int{walk}
		if impl != builder.PlusMinusOne {
			inputs = append(inputs, random)
		}
		mismatches := 0
		for _, s := range inputs {
			st, err := builder.NewRMQ(rmq.OfInts(s), n, builder.WithRMQImpl(impl))
			if err != nil {
				return err
			}
			for _, q := range queries {
				got, err := st.RangeMin(q[0], q[1])
				if err != nil {
					return err
				}
				if got != naiveRangeMin(s, q[0], q[1]) {
					mismatches++
				}
			}
			if t.index == 0 {
				r.log.WithField("impl", impl.String()).Debugf("rmq size %d bytes for n=%d", st.SizeInBytes(), n)
			}
		}
		t.record(impl.String(), mismatches)
	}
	return nil
}
