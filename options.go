package zcurvego

type options struct {
	dims       int
	bitsPerDim int
	totalBits  int
}

// Option configures how a call resolves its code-space layout.
//
// Every parameter has a derivation rule (see Layout), so options exist for
// callers that need one fixed code space across many calls rather than a
// per-call derived one.
type Option func(*options)

// WithDims pins the dimensionality on encode instead of deriving it from
// the point length. Decode and range calls take dims as an explicit
// argument and ignore this option.
func WithDims(dims int) Option {
	return func(o *options) {
		o.dims = dims
	}
}

// WithBitsPerDim pins the number of encoding bits per dimension on encode.
//
// Use this when many points must share one code space: the derived width
// follows each point's largest coordinate, so two points encoded with
// derived widths may live in differently sized spaces. A coordinate that
// does not fit the pinned width is rejected with ErrCoordinateOverflow.
func WithBitsPerDim(bits int) Option {
	return func(o *options) {
		o.bitsPerDim = bits
	}
}

// WithTotalBits pins the total code width on decode and range calls
// instead of deriving it from the operands. It must be a positive multiple
// of dims.
//
// Pinning a width smaller than an operand's bit length silently drops the
// operand's high bits; the derivation never does.
func WithTotalBits(bits int) Option {
	return func(o *options) {
		o.totalBits = bits
	}
}

func applyOptions(optFns []Option) options {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
