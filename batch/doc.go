// Package batch fans the pure per-point functions of zcurvego out across
// goroutines.
//
// The core package is stateless and safe for concurrent use, so batching
// is plain embarrassingly-parallel mapping: Interlace, Deinterlace and
// InRange apply the corresponding per-point function to every element of
// a slice, bounded by a parallelism limit, and preserve input order in the
// results. The first error cancels the remaining work.
//
//	codes, err := batch.Interlace(ctx, points,
//	    batch.WithParallelism(8),
//	    batch.WithCurveOptions(zcurvego.WithBitsPerDim(32)),
//	)
//
// Callers that schedule their own point queries can use Pool, a fixed
// worker pool that runs submitted closures:
//
//	pool := batch.NewPool(0) // GOMAXPROCS workers
//	defer pool.Close()
//	_ = pool.Submit(ctx, func() { ... })
//
// Note that without pinned widths every encode derives its own code space
// from its largest coordinate; pass zcurvego.WithBitsPerDim through
// WithCurveOptions when the batch must share one space.
package batch
