package compact

import (
	"github.com/hideo55/go-popcount"
)

// smear copies the most significant set bit of x into all the lower bits:
//
//	0b_0010_0110 -> 0b_0011_1111
func smear(x uint64) uint64 {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32

	return x
}

// highestBit returns the index of the most significant set bit of x, or -1
// when x is zero.
func highestBit(x uint64) int {
	return int(popcount.Count(smear(x))) - 1
}

// nextCapacity returns the smallest 2^k-1 that is not less than size.
func nextCapacity(size int) int {
	if size <= 0 {
		return 0
	}

	return 1<<(highestBit(uint64(size))+1) - 1
}
