// Package zcurvego provides arbitrary-precision Morton (Z-order) codes and
// the BIGMIN/LITMAX range-decomposition primitives on top of them.
//
// A Morton code interleaves the bits of a multi-dimensional coordinate
// vector into a single integer so that spatial proximity is approximately
// preserved in integer order. Bit i of a code belongs to dimension i mod D;
// within one dimension, significance grows every D positions. Codes,
// coordinates and range bounds are *big.Int values, so the dimensionality
// and the per-dimension precision are unbounded.
//
// # Encoding and decoding
//
//	code, _ := zcurvego.Interlace(zcurvego.Point(5, 3)) // 27
//	point, _ := zcurvego.Deinterlace(code, 2)           // [5 3]
//
// Dimensionality defaults to the length of the point, and the number of
// bits per dimension defaults to the bit length of the largest coordinate.
// Both can be pinned with options; a coordinate that does not fit a pinned
// width is rejected rather than allowed to bleed into a neighboring
// dimension's bit plane:
//
//	code, _ := zcurvego.Interlace(zcurvego.Point(5, 3), zcurvego.WithBitsPerDim(8))
//
// # Range queries
//
// A query box is described by two codes, the interleaved low corner and the
// interleaved high corner. Codes that fall numerically between the two
// bounds may still decode to points outside the box; NextInRange (BIGMIN)
// and PrevInRange (LITMAX) skip directly to the nearest code that is truly
// inside, which lets a caller traverse a Z-order-sorted key space without
// scanning the gaps:
//
//	rmin, _ := zcurvego.Interlace(zcurvego.Point(2, 2)) // 12
//	rmax, _ := zcurvego.Interlace(zcurvego.Point(6, 6)) // 60
//	next, _ := zcurvego.NextInRange(code, rmin, rmax, 2)
//
// InRange composes the two scans into a membership test.
//
// All three operands of a range call are evaluated against one shared total
// bit width, derived from the largest operand unless pinned with
// WithTotalBits. Pinning a width too small to hold an operand silently
// drops its high bits, so a pinned width is the caller's responsibility.
//
// # Concurrency
//
// Every function is pure and allocates only call-local scratch state, so
// the package is safe for concurrent use without synchronization. Fanning
// many independent points out across goroutines is the job of package
// batch.
package zcurvego
