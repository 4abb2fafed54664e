package zcurvego

import (
	"math/big"

	"github.com/hupe1980/zcurvego/bitplane"
)

// Interlace encodes a multi-dimensional point into its 1D morton code:
// bit k of coordinate i lands on bit i + k·dims of the code, so dimension
// i owns the bit plane {i, i+dims, i+2·dims, …}.
//
// The dimensionality defaults to len(point) and the bits per dimension to
// the bit length of the largest coordinate; pin either with WithDims /
// WithBitsPerDim to fix the code space across calls. Within a pinned
// width the mapping is a bijection between [0, 2^bitsPerDim)^dims and
// [0, 2^(dims·bitsPerDim)).
func Interlace(point []*big.Int, optFns ...Option) (*big.Int, error) {
	l, err := layoutForPoint(point, applyOptions(optFns))
	if err != nil {
		return nil, err
	}

	code := new(big.Int)
	for i, v := range point {
		bitplane.Scatter(code, i, l.Dims, l.TotalBits, v)
	}

	return code, nil
}

// Deinterlace decodes a morton code back into its dims-dimensional point,
// reconstructing dimension i from the bit plane {i, i+dims, i+2·dims, …}.
//
// It inverts Interlace exactly when both calls use the same dims and total
// width. The width defaults to the smallest multiple of dims covering the
// code's bit length; a code produced under a larger pinned space must be
// decoded with the same width (WithTotalBits) to round-trip.
func Deinterlace(code *big.Int, dims int, optFns ...Option) ([]*big.Int, error) {
	l, err := layoutForCodes(dims, applyOptions(optFns).totalBits, code)
	if err != nil {
		return nil, err
	}

	point := make([]*big.Int, l.Dims)
	for i := range point {
		point[i] = bitplane.Gather(code, i, l.Dims, l.TotalBits)
	}

	return point, nil
}

// Point builds a coordinate vector from uint64 values. It is a
// convenience for the common case; coordinates beyond 64 bits can be
// passed to Interlace as *big.Int directly.
func Point(vals ...uint64) []*big.Int {
	point := make([]*big.Int, len(vals))
	for i, v := range vals {
		point[i] = new(big.Int).SetUint64(v)
	}
	return point
}
