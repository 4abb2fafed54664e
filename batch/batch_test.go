package batch

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/hupe1980/zcurvego"
	"github.com/stretchr/testify/require"
)

func testPoints(n, dims int) [][]*big.Int {
	points := make([][]*big.Int, n)
	for i := range points {
		point := make([]*big.Int, dims)
		for j := range point {
			v := (uint64(i)*2654435761 + uint64(j)*40503) % (1 << 16)
			point[j] = new(big.Int).SetUint64(v)
		}
		points[i] = point
	}
	return points
}

func TestInterlace_MatchesSequential(t *testing.T) {
	ctx := context.Background()
	points := testPoints(200, 3)

	codes, err := Interlace(ctx, points, WithParallelism(4))
	require.NoError(t, err)
	require.Len(t, codes, len(points))

	for i, point := range points {
		want, err := zcurvego.Interlace(point)
		require.NoError(t, err)
		require.Zero(t, codes[i].Cmp(want), "point %d", i)
	}
}

func TestInterlace_SharedSpace(t *testing.T) {
	ctx := context.Background()
	points := testPoints(50, 2)

	codes, err := Interlace(ctx, points, WithCurveOptions(zcurvego.WithBitsPerDim(16)))
	require.NoError(t, err)

	// Every code round-trips through the shared 32-bit space.
	decoded, err := Deinterlace(ctx, codes, 2, WithCurveOptions(zcurvego.WithTotalBits(32)))
	require.NoError(t, err)
	for i, point := range points {
		for j := range point {
			require.Zero(t, decoded[i][j].Cmp(point[j]), "point %d dim %d", i, j)
		}
	}
}

func TestInterlace_ErrorCarriesIndex(t *testing.T) {
	ctx := context.Background()
	points := testPoints(10, 2)
	points[7] = []*big.Int{big.NewInt(1), big.NewInt(-1)}

	_, err := Interlace(ctx, points)
	require.ErrorIs(t, err, zcurvego.ErrNegative)
	require.ErrorContains(t, err, "point 7")
}

func TestInterlace_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Interlace(ctx, testPoints(100, 2))
	require.ErrorIs(t, err, context.Canceled)
}

func TestInRange_MatchesSequential(t *testing.T) {
	ctx := context.Background()
	rmin := big.NewInt(12)
	rmax := big.NewInt(60)

	codes := make([]*big.Int, 71)
	for i := range codes {
		codes[i] = big.NewInt(int64(i))
	}

	got, err := InRange(ctx, codes, rmin, rmax, 2,
		WithParallelism(8),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)
	require.Len(t, got, len(codes))

	for i, code := range codes {
		want, err := zcurvego.InRange(code, rmin, rmax, 2)
		require.NoError(t, err)
		require.Equal(t, want, got[i], "code %d", i)
	}
}

func TestDeinterlace_Empty(t *testing.T) {
	points, err := Deinterlace(context.Background(), nil, 2)
	require.NoError(t, err)
	require.Empty(t, points)
}
