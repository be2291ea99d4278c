package rmq

// PowerOf2 is a sparse table: for every k >= 1 and position i it stores the
// minimum of the window [i, i+2^k). A query covers [i, j] with two
// overlapping windows of the largest fitting power of two.
type PowerOf2 struct {
	n      int
	cmp    Comparator
	levels [][]int32 // levels[k-1][i] = min position of [i, i+2^k)
}

// NewPowerOf2 builds a sparse table over n positions in O(n log n).
func NewPowerOf2(cmp Comparator, n int) (*PowerOf2, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	t := &PowerOf2{n: n, cmp: cmp, levels: make([][]int32, log2(n))}

	// 1) Windows of length 2 compare neighbours directly.
	// 2) Each further level merges two windows of the previous one.
	for k := 1; k <= len(t.levels); k++ {
		lvl := make([]int32, n-(1<<k)+1)
		half := 1 << (k - 1)
		for i := range lvl {
			if k == 1 {
				lvl[i] = int32(leftMin(cmp, i, i+1))
				continue
			}
			prev := t.levels[k-2]
			lvl[i] = int32(leftMin(cmp, int(prev[i]), int(prev[i+half])))
		}
		t.levels[k-1] = lvl
	}

	return t, nil
}

// Len returns the sequence length.
func (t *PowerOf2) Len() int { return t.n }

// RangeMin returns the position of the leftmost minimum in [i, j].
func (t *PowerOf2) RangeMin(i, j int) (int, error) {
	if err := checkRange(i, j, t.n); err != nil {
		return 0, err
	}
	return t.rangeMin(i, j), nil
}

func (t *PowerOf2) rangeMin(i, j int) int {
	if i == j {
		return i
	}
	k := log2(j - i + 1)
	lvl := t.levels[k-1]

	return leftMin(t.cmp, int(lvl[i]), int(lvl[j-(1<<k)+1]))
}

// SizeInBytes estimates the memory held by the table.
func (t *PowerOf2) SizeInBytes() int {
	s := 8 + 8 + 24 + 24*len(t.levels)
	for _, lvl := range t.levels {
		s += 4 * len(lvl)
	}
	return s
}
