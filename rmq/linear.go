package rmq

// blocks is the linear-time decomposition shared by Cartesian and
// PlusMinusOne. The sequence is cut into blocks of size positions, the last
// one padded past n. For every block it keeps
//
//   - left[i]:  offset of the minimum of the prefix [blockStart, i],
//   - right[i]: offset of the minimum of the suffix [i, blockEnd),
//
// a sparse table over the block minima, and a reference to an in-block
// answer table shared by every block with the same key.
type blocks struct {
	n, size int
	cmp     Comparator

	left, right []uint8 // indexed by position (padding included)
	outer       *PowerOf2
	inner       []int32   // block -> index into tables
	tables      [][]uint8 // tables[t][i*size+j] = offset of the minimum of [i, j]
}

// keyFunc returns the shape key of the block starting at base. Blocks with
// the same key must have the same in-block answers.
type keyFunc func(c Comparator, base int) uint64

func newBlocks(cmp Comparator, n, size int, key keyFunc) *blocks {
	num := (n + size - 1) / size
	b := &blocks{
		n:     n,
		size:  size,
		cmp:   cmp,
		left:  make([]uint8, num*size),
		right: make([]uint8, num*size),
		inner: make([]int32, num),
	}
	memo := make(map[uint64]int32)
	pc := padded(cmp, n)

	for blk := 0; blk < num; blk++ {
		base := blk * size
		c := cmp
		if base+size > n {
			c = pc
		}

		// 1) Prefix and suffix minima, leftmost on ties.
		var m uint8
		for i := 0; i < size; i++ {
			if c(base+i, base+int(m)) < 0 {
				m = uint8(i)
			}
			b.left[base+i] = m
		}
		m = uint8(size - 1)
		for i := size - 1; i >= 0; i-- {
			if c(base+i, base+int(m)) <= 0 {
				m = uint8(i)
			}
			b.right[base+i] = m
		}

		// 2) Share the in-block table between blocks of the same shape.
		k := key(c, base)
		t, ok := memo[k]
		if !ok {
			t = int32(len(b.tables))
			memo[k] = t
			b.tables = append(b.tables, innerTable(c, base, size))
		}
		b.inner[blk] = t
	}

	// 3) Sparse table over the block minima; num >= 1 so the build cannot fail.
	b.outer, _ = NewPowerOf2(func(x, y int) int {
		return cmp(b.blockMin(x), b.blockMin(y))
	}, num)

	return b
}

// innerTable answers every in-block query of the block at base.
func innerTable(c Comparator, base, size int) []uint8 {
	t := make([]uint8, size*size)
	for i := 0; i < size; i++ {
		m := i
		for j := i; j < size; j++ {
			m = leftMin(c, base+m, base+j) - base
			t[i*size+j] = uint8(m)
		}
	}
	return t
}

// blockMin returns the position of the minimum of block blk.
func (b *blocks) blockMin(blk int) int {
	base := blk * b.size
	return base + int(b.right[base])
}

// Len returns the sequence length.
func (b *blocks) Len() int { return b.n }

// RangeMin returns the position of the leftmost minimum in [i, j].
func (b *blocks) RangeMin(i, j int) (int, error) {
	if err := checkRange(i, j, b.n); err != nil {
		return 0, err
	}
	return b.rangeMin(i, j), nil
}

func (b *blocks) rangeMin(i, j int) int {
	if i == j {
		return i
	}
	b0, b1 := i/b.size, j/b.size
	base0 := b0 * b.size
	if b0 == b1 {
		t := b.tables[b.inner[b0]]
		return base0 + int(t[(i-base0)*b.size+j-base0])
	}

	// Suffix of i's block, the blocks in between, prefix of j's block.
	m := base0 + int(b.right[i])
	if b0+1 < b1 {
		m = leftMin(b.cmp, m, b.blockMin(b.outer.rangeMin(b0+1, b1-1)))
	}
	return leftMin(b.cmp, m, b1*b.size+int(b.left[j]))
}

// SizeInBytes estimates the memory held by the structure. Shared in-block
// tables are counted once.
func (b *blocks) SizeInBytes() int {
	s := 8 + 8 + 8 + 24*4 + len(b.left) + len(b.right) + 4*len(b.inner)
	s += b.outer.SizeInBytes()
	for _, t := range b.tables {
		s += 24 + len(t)
	}
	return s
}

// clampBlockSize keeps the block size in [2, 32]: offsets fit a byte and
// keys fit 64 bits.
func clampBlockSize(size int) int {
	return min(max(size, 2), 32)
}
