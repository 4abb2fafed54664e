package zcurvego

import "math/big"

// Layout is the resolved shape of one code space: how many dimensions it
// interleaves, how many bits each dimension carries, and the resulting
// total width. All operands of a single range call must share one Layout;
// mixing widths silently corrupts results, so the resolvers below compute
// the width once from every operand and the callers reuse it.
type Layout struct {
	Dims       int
	BitsPerDim int
	TotalBits  int
}

// PointLayout resolves the layout Interlace would use for point under the
// same options. Useful for discovering the derived width before pinning it
// across a whole data set.
func PointLayout(point []*big.Int, optFns ...Option) (Layout, error) {
	return layoutForPoint(point, applyOptions(optFns))
}

// CodeLayout resolves the layout the range functions would share across
// codes under the same options.
func CodeLayout(dims int, codes []*big.Int, optFns ...Option) (Layout, error) {
	return layoutForCodes(dims, applyOptions(optFns).totalBits, codes...)
}

// layoutForPoint resolves the encode-side layout. Dims defaults to the
// point length; bits per dimension default to the bit length of the
// largest coordinate, minimum 1.
func layoutForPoint(point []*big.Int, o options) (Layout, error) {
	dims := o.dims
	if dims == 0 {
		dims = len(point)
	}
	if dims <= 0 {
		return Layout{}, &ErrInvalidDims{Dims: dims}
	}
	if len(point) != dims {
		return Layout{}, &ErrDimensionMismatch{Expected: dims, Actual: len(point)}
	}

	maxLen := 0
	for _, v := range point {
		if v.Sign() < 0 {
			return Layout{}, ErrNegative
		}
		if l := v.BitLen(); l > maxLen {
			maxLen = l
		}
	}

	bitsPerDim := o.bitsPerDim
	switch {
	case bitsPerDim == 0:
		bitsPerDim = max(maxLen, 1)
	case bitsPerDim < 0:
		return Layout{}, &ErrInvalidWidth{TotalBits: bitsPerDim * dims, Dims: dims}
	default:
		for i, v := range point {
			if v.BitLen() > bitsPerDim {
				return Layout{}, &ErrCoordinateOverflow{Dim: i, Bits: bitsPerDim}
			}
		}
	}

	return Layout{Dims: dims, BitsPerDim: bitsPerDim, TotalBits: dims * bitsPerDim}, nil
}

// layoutForCodes resolves the decode-side layout shared by every code of
// one call. The width defaults to the smallest multiple of dims covering
// the largest code's bit length, minimum one bit per dimension.
func layoutForCodes(dims, totalBits int, codes ...*big.Int) (Layout, error) {
	if dims <= 0 {
		return Layout{}, &ErrInvalidDims{Dims: dims}
	}
	for _, c := range codes {
		if c.Sign() < 0 {
			return Layout{}, ErrNegative
		}
	}

	if totalBits == 0 {
		maxLen := 0
		for _, c := range codes {
			if l := c.BitLen(); l > maxLen {
				maxLen = l
			}
		}
		totalBits = max((maxLen+dims-1)/dims, 1) * dims
	} else if totalBits < 0 || totalBits%dims != 0 {
		return Layout{}, &ErrInvalidWidth{TotalBits: totalBits, Dims: dims}
	}

	return Layout{Dims: dims, BitsPerDim: totalBits / dims, TotalBits: totalBits}, nil
}
