package rmq

import "math/bits"

// Cartesian is the linear-time RMQ for arbitrary sequences.
//
// A block is keyed by the signature of its Cartesian tree: scanning left to
// right with a stack of increasing elements, each pop writes a 0 bit and
// each push a 1 bit. Two blocks with the same signature have the same
// Cartesian tree, hence the same minimum position for every in-block range.
type Cartesian struct {
	*blocks
}

// NewCartesian builds the structure over n positions in O(n).
func NewCartesian(cmp Comparator, n int) (*Cartesian, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	size := clampBlockSize((bits.Len(uint(n)) + 3) / 4)
	stack := make([]int, 0, size)

	return &Cartesian{newBlocks(cmp, n, size, func(c Comparator, base int) uint64 {
		var key uint64
		stack = stack[:0]
		for i := 0; i < size; i++ {
			// Equal elements stay on the stack, so the leftmost of them is the ancestor.
			for len(stack) > 0 && c(base+stack[len(stack)-1], base+i) > 0 {
				stack = stack[:len(stack)-1]
				key <<= 1
			}
			stack = append(stack, i)
			key = key<<1 | 1
		}
		return key
	})}, nil
}
