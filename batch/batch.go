package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"runtime"

	"github.com/hupe1980/zcurvego"
	"golang.org/x/sync/errgroup"
)

type options struct {
	parallelism int
	curveOpts   []zcurvego.Option
	logger      *slog.Logger
}

// Option configures a batch call.
type Option func(*options)

// WithParallelism bounds the number of points processed concurrently.
// Values ≤ 0 fall back to runtime.GOMAXPROCS(0), which fits the CPU-bound
// nature of the per-point functions.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithCurveOptions passes options through to every per-point call, e.g.
// zcurvego.WithBitsPerDim to encode a whole batch into one code space.
func WithCurveOptions(optFns ...zcurvego.Option) Option {
	return func(o *options) {
		o.curveOpts = optFns
	}
}

// WithLogger configures structured logging for batch completion and
// failure. Logging is disabled by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		parallelism: runtime.GOMAXPROCS(0),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.parallelism <= 0 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}
	return o
}

// Interlace encodes every point, preserving input order in the returned
// codes. The first failing point cancels the batch and its error is
// returned, tagged with the point's index.
func Interlace(ctx context.Context, points [][]*big.Int, optFns ...Option) ([]*big.Int, error) {
	o := applyOptions(optFns)

	codes := make([]*big.Int, len(points))
	err := run(ctx, o, len(points), func(i int) error {
		code, err := zcurvego.Interlace(points[i], o.curveOpts...)
		if err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
		codes[i] = code
		return nil
	})
	if err != nil {
		o.logger.ErrorContext(ctx, "batch interlace failed", "count", len(points), "error", err)
		return nil, err
	}

	o.logger.DebugContext(ctx, "batch interlace completed", "count", len(points))
	return codes, nil
}

// Deinterlace decodes every code into a dims-dimensional point, preserving
// input order.
func Deinterlace(ctx context.Context, codes []*big.Int, dims int, optFns ...Option) ([][]*big.Int, error) {
	o := applyOptions(optFns)

	points := make([][]*big.Int, len(codes))
	err := run(ctx, o, len(codes), func(i int) error {
		point, err := zcurvego.Deinterlace(codes[i], dims, o.curveOpts...)
		if err != nil {
			return fmt.Errorf("code %d: %w", i, err)
		}
		points[i] = point
		return nil
	})
	if err != nil {
		o.logger.ErrorContext(ctx, "batch deinterlace failed", "count", len(codes), "error", err)
		return nil, err
	}

	o.logger.DebugContext(ctx, "batch deinterlace completed", "count", len(codes))
	return points, nil
}

// InRange tests every code against one range, preserving input order in
// the returned verdicts.
func InRange(ctx context.Context, codes []*big.Int, rmin, rmax *big.Int, dims int, optFns ...Option) ([]bool, error) {
	o := applyOptions(optFns)

	inside := make([]bool, len(codes))
	err := run(ctx, o, len(codes), func(i int) error {
		ok, err := zcurvego.InRange(codes[i], rmin, rmax, dims, o.curveOpts...)
		if err != nil {
			return fmt.Errorf("code %d: %w", i, err)
		}
		inside[i] = ok
		return nil
	})
	if err != nil {
		o.logger.ErrorContext(ctx, "batch range test failed", "count", len(codes), "error", err)
		return nil, err
	}

	o.logger.DebugContext(ctx, "batch range test completed", "count", len(codes))
	return inside, nil
}

// run fans fn out over n indexes with bounded parallelism. Each worker
// writes to its own slot, so no synchronization beyond the group is
// needed.
func run(ctx context.Context, o options, n int, fn func(i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}

	return g.Wait()
}
