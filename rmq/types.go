package rmq

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Comparator compares the elements at positions i and j: negative when the
// element at i is smaller, zero when equal, positive when greater.
type Comparator func(i, j int) int

// RMQ is a static range-minimum structure.
type RMQ interface {
	// Len returns the sequence length the structure was built for.
	Len() int
	// RangeMin returns the position of the leftmost minimum in [i, j].
	RangeMin(i, j int) (int, error)
	// SizeInBytes estimates the memory held by the structure.
	SizeInBytes() int
}

// OfSlice returns a comparator over the elements of s.
func OfSlice[T constraints.Ordered](s []T) Comparator {
	return func(i, j int) int {
		switch a, b := s[i], s[j]; {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// OfInts returns a comparator over an int slice.
func OfInts(s []int) Comparator { return OfSlice(s) }

// OfFloat64s returns a comparator over a float64 slice. NaNs compare equal
// to everything and are never reported as a strict minimum.
func OfFloat64s(s []float64) Comparator { return OfSlice(s) }

// checkRange validates a query against a sequence of length n.
func checkRange(i, j, n int) error {
	if 0 <= i && i <= j && j < n {
		return nil
	}
	return fmt.Errorf("%w: [%d, %d] with n=%d", ErrBadRange, i, j, n)
}

func checkLength(n int) error {
	if n > 0 {
		return nil
	}
	return fmt.Errorf("%w: n=%d", ErrBadLength, n)
}

// leftMin returns whichever of the positions a < b holds the smaller element,
// preferring a on ties.
func leftMin(cmp Comparator, a, b int) int {
	if cmp(b, a) < 0 {
		return b
	}
	return a
}

// padded extends cmp past n with elements greater than every real element
// and equal to each other.
func padded(cmp Comparator, n int) Comparator {
	return func(i, j int) int {
		switch {
		case i < n && j < n:
			return cmp(i, j)
		case i >= n && j >= n:
			return 0
		case i >= n:
			return 1
		default:
			return -1
		}
	}
}

// log2 returns floor(log2(x)) for x >= 1.
func log2(x int) int { return bits.Len(uint(x)) - 1 }
