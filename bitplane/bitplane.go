// Package bitplane manipulates the strided bit planes of morton codes.
//
// A morton code over D dimensions assigns bit position i to dimension
// i mod D; dimension d therefore owns exactly the positions
// {d, d+D, d+2D, …} — its bit plane. Everything in this package reads or
// writes along one such plane and never touches positions outside it.
// That distinction carries the correctness of the range scanner: "the
// lower bits of this plane" is a strictly smaller set than "all lower
// bits" whenever D > 1.
package bitplane

import "math/big"

// Gather compacts the plane of n starting at start with the given stride:
// bit k of the result is bit start+k·stride of n, for positions below
// totalBits. It is the read side of Scatter.
func Gather(n *big.Int, start, stride, totalBits int) *big.Int {
	out := new(big.Int)
	for k, i := 0, start; i < totalBits; k, i = k+1, i+stride {
		if n.Bit(i) == 1 {
			out.SetBit(out, k, 1)
		}
	}
	return out
}

// Scatter spreads v along the plane of n starting at start with the given
// stride: bit start+k·stride of n becomes bit k of v, for positions below
// totalBits. n is modified in place.
func Scatter(n *big.Int, start, stride, totalBits int, v *big.Int) {
	for k, i := 0, start; i < totalBits; k, i = k+1, i+stride {
		n.SetBit(n, i, v.Bit(k))
	}
}

// RaiseFloor writes the pattern "1000…" into the plane of bit i: bit i
// becomes 1 and the lower bits of the same plane (i−stride, i−2·stride, …)
// become 0. The result is the smallest plane value whose bit i is set.
// n is modified in place.
func RaiseFloor(n *big.Int, i, stride int) {
	n.SetBit(n, i, 1)
	for j := i - stride; j >= 0; j -= stride {
		n.SetBit(n, j, 0)
	}
}

// LowerCeil writes the pattern "0111…" into the plane of bit i: bit i
// becomes 0 and the lower bits of the same plane become 1. The result is
// the largest plane value whose bit i is clear. n is modified in place.
func LowerCeil(n *big.Int, i, stride int) {
	n.SetBit(n, i, 0)
	for j := i - stride; j >= 0; j -= stride {
		n.SetBit(n, j, 1)
	}
}
