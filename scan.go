package zcurvego

import (
	"fmt"
	"math/big"

	"github.com/hupe1980/zcurvego/bitplane"
)

// direction selects which end of the range a seek moves toward.
type direction int

const (
	seekNext direction = iota // BIGMIN: smallest in-range code after the point
	seekPrev                  // LITMAX: largest in-range code before the point
)

// seek is the BIGMIN/LITMAX decision table (Tropf/Herzog range splitting).
//
// It scans the bit triples of (code, min, max) from the most significant
// position down, keeping working copies of the bounds. Whenever the range
// splits around the point at bit i, the half not containing the point is
// recorded as a candidate (the accumulator) and the bounds are tightened
// to the half that does — always through RaiseFloor/LowerCeil, which touch
// only the lower bits of bit i's own plane, never the full tail of the
// integer. NEXT and PREV are mirror images: min/max swap the roles of
// "candidate source" and "tightened bound", so one table serves both.
//
// For points strictly inside the range the scan returns the in-range code
// strictly after (seekNext) or before (seekPrev) the point along the
// curve; InRange relies on that strictness to detect membership via the
// prev∘next fixed point. The public wrappers handle points at or beyond
// the bounds before calling here.
func seek(code, rmin, rmax *big.Int, l Layout, dir direction) (*big.Int, error) {
	lo := new(big.Int).Set(rmin)
	hi := new(big.Int).Set(rmax)
	acc := new(big.Int)

	for i := l.TotalBits - 1; i >= 0; i-- {
		c, m, h := code.Bit(i), lo.Bit(i), hi.Bit(i)

		switch {
		case c == m && c == h:
			// Point and both bounds agree; nothing splits here.

		case c == 0 && m == 0 && h == 1:
			// Range splits, point stays in the lower half.
			if dir == seekNext {
				// Candidate: the floor of the upper half.
				acc.Set(lo)
				bitplane.RaiseFloor(acc, i, l.Dims)
			}
			bitplane.LowerCeil(hi, i, l.Dims)

		case c == 0 && m == 1 && h == 1:
			// Whole remaining range lies after the point.
			if dir == seekNext {
				return lo, nil
			}
			return acc, nil

		case c == 1 && m == 0 && h == 0:
			// Whole remaining range lies before the point.
			if dir == seekPrev {
				return hi, nil
			}
			return acc, nil

		case c == 1 && m == 0 && h == 1:
			// Range splits, point stays in the upper half.
			if dir == seekPrev {
				// Candidate: the ceiling of the lower half.
				acc.Set(hi)
				bitplane.LowerCeil(acc, i, l.Dims)
			}
			bitplane.RaiseFloor(lo, i, l.Dims)

		default:
			// c == 0, m == 1, h == 0: impossible while min ≤ max holds.
			return nil, fmt.Errorf("%w: min bit %d set above max", ErrInvariantViolation, i)
		}
	}

	return acc, nil
}

// NextInRange returns BIGMIN: the smallest code inside the range
// [rmin, rmax] that is ≥ code. The range is the box spanned by the
// decoded corners of rmin and rmax; codes numerically between the bounds
// can still lie outside it, and NextInRange skips past them in one step.
//
// code may lie anywhere below rmax, inside the range or not. A code above
// rmax has no successor in range and yields ErrNoCodeInRange.
//
// All three operands are resolved against one shared width (see
// WithTotalBits); rmin > rmax yields ErrInvalidBounds.
func NextInRange(code, rmin, rmax *big.Int, dims int, optFns ...Option) (*big.Int, error) {
	l, err := layoutForCodes(dims, applyOptions(optFns).totalBits, code, rmin, rmax)
	if err != nil {
		return nil, err
	}
	if rmin.Cmp(rmax) > 0 {
		return nil, fmt.Errorf("%w: %v > %v", ErrInvalidBounds, rmin, rmax)
	}

	switch {
	case code.Cmp(rmin) <= 0:
		return new(big.Int).Set(rmin), nil
	case code.Cmp(rmax) > 0:
		return nil, fmt.Errorf("%w: %v lies after the range maximum", ErrNoCodeInRange, code)
	case code.Cmp(rmax) == 0:
		return new(big.Int).Set(rmax), nil
	}

	ok, err := member(code, rmin, rmax, l)
	if err != nil {
		return nil, err
	}
	if ok {
		return new(big.Int).Set(code), nil
	}

	return seek(code, rmin, rmax, l, seekNext)
}

// PrevInRange returns LITMAX: the largest code inside the range
// [rmin, rmax] that is ≤ code. It mirrors NextInRange; a code below rmin
// has no predecessor in range and yields ErrNoCodeInRange.
func PrevInRange(code, rmin, rmax *big.Int, dims int, optFns ...Option) (*big.Int, error) {
	l, err := layoutForCodes(dims, applyOptions(optFns).totalBits, code, rmin, rmax)
	if err != nil {
		return nil, err
	}
	if rmin.Cmp(rmax) > 0 {
		return nil, fmt.Errorf("%w: %v > %v", ErrInvalidBounds, rmin, rmax)
	}

	switch {
	case code.Cmp(rmax) >= 0:
		return new(big.Int).Set(rmax), nil
	case code.Cmp(rmin) < 0:
		return nil, fmt.Errorf("%w: %v lies before the range minimum", ErrNoCodeInRange, code)
	case code.Cmp(rmin) == 0:
		return new(big.Int).Set(rmin), nil
	}

	ok, err := member(code, rmin, rmax, l)
	if err != nil {
		return nil, err
	}
	if ok {
		return new(big.Int).Set(code), nil
	}

	return seek(code, rmin, rmax, l, seekPrev)
}

// InRange reports whether code lies inside the box spanned by the decoded
// corners of rmin and rmax. Codes outside [rmin, rmax] are never inside;
// the bounds themselves always are. Everything in between is decided by
// the prev∘next composition over one shared width, without decoding.
func InRange(code, rmin, rmax *big.Int, dims int, optFns ...Option) (bool, error) {
	l, err := layoutForCodes(dims, applyOptions(optFns).totalBits, code, rmin, rmax)
	if err != nil {
		return false, err
	}
	if rmin.Cmp(rmax) > 0 {
		return false, fmt.Errorf("%w: %v > %v", ErrInvalidBounds, rmin, rmax)
	}

	if code.Cmp(rmin) < 0 || code.Cmp(rmax) > 0 {
		return false, nil
	}
	if code.Cmp(rmin) == 0 || code.Cmp(rmax) == 0 {
		return true, nil
	}

	return member(code, rmin, rmax, l)
}

// member decides membership for rmin < code < rmax: code is inside the box
// exactly when it is a fixed point of prev∘next. Both scans reuse the one
// resolved layout; deriving a fresh width per scan could disagree with the
// caller's and corrupt the verdict.
func member(code, rmin, rmax *big.Int, l Layout) (bool, error) {
	next, err := seek(code, rmin, rmax, l, seekNext)
	if err != nil {
		return false, err
	}
	prev, err := seek(next, rmin, rmax, l, seekPrev)
	if err != nil {
		return false, err
	}
	return prev.Cmp(code) == 0, nil
}
