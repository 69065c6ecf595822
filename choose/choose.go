// Package choose holds the binomial coefficient table used to rank
// piece placements on the board.
package choose

import (
	"errors"
	"fmt"
)

// MaxN is the largest n (and k) the table is built for. C(31, 15) is the
// largest entry and fits in 32 bits; raising MaxN past 33 needs a wider
// element type.
const MaxN = 31

var ErrOutOfRange = errors.New("binomial argument out of range")

var table [MaxN + 1][MaxN + 1]uint32

func init() {
	for n := 0; n <= MaxN; n++ {
		table[n][0] = 1
		table[n][n] = 1
		for k := 1; k < n; k++ {
			table[n][k] = table[n-1][k-1] + table[n-1][k]
		}
	}
}

// Choose returns C(n, k). Entries with k > n are zero. Arguments outside
// [0, MaxN] return ErrOutOfRange.
func Choose(n, k int) (uint32, error) {
	if n < 0 || n > MaxN || k < 0 || k > MaxN {
		return 0, fmt.Errorf("%w: C(%d, %d)", ErrOutOfRange, n, k)
	}
	return table[n][k], nil
}

// MustChoose is like Choose but panics on out-of-range arguments.
func MustChoose(n, k int) uint32 {
	c, err := Choose(n, k)
	if err != nil {
		panic(err)
	}
	return c
}
