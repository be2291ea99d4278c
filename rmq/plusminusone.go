package rmq

import "math/bits"

// PlusMinusOne is the linear-time RMQ for sequences whose adjacent elements
// differ by exactly one, such as the depths along an Euler tour. A block is
// keyed by its size-1 up/down steps, which fix every element relative to the
// first one. Answers on other sequences are unspecified.
type PlusMinusOne struct {
	*blocks
}

// NewPlusMinusOne builds the structure over n positions in O(n).
func NewPlusMinusOne(cmp Comparator, n int) (*PlusMinusOne, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	size := clampBlockSize((bits.Len(uint(n)) + 1) / 2)

	return &PlusMinusOne{newBlocks(cmp, n, size, func(c Comparator, base int) uint64 {
		var key uint64
		for i := 1; i < size; i++ {
			key <<= 1
			if c(base+i, base+i-1) < 0 {
				key |= 1
			}
		}
		return key
	})}, nil
}
