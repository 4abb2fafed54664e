package zcurvego

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds is returned when a range minimum exceeds its range maximum.
	ErrInvalidBounds = errors.New("range minimum exceeds range maximum")

	// ErrNoCodeInRange is returned when no code inside the range can satisfy
	// the requested direction (NextInRange above the maximum, PrevInRange
	// below the minimum).
	ErrNoCodeInRange = errors.New("no code in range")

	// ErrNegative is returned when a coordinate or code is negative.
	ErrNegative = errors.New("negative values have no morton code")

	// ErrInvariantViolation is returned when the bit scan observes a triple
	// that is impossible for a valid morton interval. It indicates corrupt
	// caller-supplied bounds, never a recoverable condition.
	ErrInvariantViolation = errors.New("morton interval invariant violated")
)

// ErrDimensionMismatch indicates a point whose length differs from the
// declared dimensionality.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d coordinates, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDims indicates a non-positive dimensionality or bit width.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDims struct {
	Dims  int
	cause error
}

func (e *ErrInvalidDims) Error() string {
	return fmt.Sprintf("invalid dimensionality: %d", e.Dims)
}

func (e *ErrInvalidDims) Unwrap() error { return e.cause }

// ErrInvalidWidth indicates a pinned total bit width that is not a positive
// multiple of the dimensionality. All bit planes must be the same height.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidWidth struct {
	TotalBits int
	Dims      int
	cause     error
}

func (e *ErrInvalidWidth) Error() string {
	return fmt.Sprintf("invalid total bit width: %d is not a positive multiple of %d dims", e.TotalBits, e.Dims)
}

func (e *ErrInvalidWidth) Unwrap() error { return e.cause }

// ErrCoordinateOverflow indicates a coordinate that does not fit the pinned
// bits-per-dimension width. Encoding it anyway would scatter its high bits
// into the neighboring dimensions' planes, so it is rejected instead.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCoordinateOverflow struct {
	Dim   int
	Bits  int
	cause error
}

func (e *ErrCoordinateOverflow) Error() string {
	return fmt.Sprintf("coordinate %d does not fit in %d bits", e.Dim, e.Bits)
}

func (e *ErrCoordinateOverflow) Unwrap() error { return e.cause }
