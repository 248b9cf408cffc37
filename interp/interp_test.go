package interp_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/interptab/interp"
	"github.com/katalvlaran/interptab/table"
)

const tol = 1e-9

// interp1 runs Interp1 on column inputs and returns the values.
func interp1[T table.Element](t *testing.T, x, y, xi []T, opts ...interp.Option) []T {
	t.Helper()
	out, err := interp.Interp1(table.Column(x...), table.Column(y...), table.Column(xi...), opts...)
	require.NoError(t, err)

	return out.Values()
}

func TestInterp1Midpoint(t *testing.T) {
	got := interp1(t, []float64{0, 10}, []float64{0, 100}, []float64{5})
	require.Equal(t, []float64{50}, got)
}

// TestInterp1UnsortedInput shows that sample order does not matter.
func TestInterp1UnsortedInput(t *testing.T) {
	sorted := interp1(t, []float64{0, 10}, []float64{0, 100}, []float64{5})
	unsorted := interp1(t, []float64{10, 0}, []float64{100, 0}, []float64{5})
	require.Equal(t, []float64{50}, unsorted)
	require.Equal(t, sorted, unsorted)

	got := interp1(t, []float64{3, 0, 2, 1}, []float64{9, 0, 4, 1}, []float64{0.5, 1.5, 2.5})
	require.Equal(t, []float64{0.5, 2.5, 6.5}, got)
}

func TestInterp1Extrapolation(t *testing.T) {
	got := interp1(t, []float64{0, 10}, []float64{0, 100}, []float64{-5, 15})
	require.Equal(t, []float64{-50, 150}, got)

	// Edge segments only, not the overall trend.
	got = interp1(t, []float64{0, 1, 2}, []float64{0, 1, 3}, []float64{-1, 3})
	require.Equal(t, []float64{-1, 5}, got)
}

// TestInterp1RoundTrip checks that querying at the samples reproduces Y.
func TestInterp1RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	const n = 100
	x := make([]float64, n)
	y := make([]float64, n)
	acc := -50.0
	for i := range x {
		acc += 0.01 + rng.Float64()
		x[i] = acc
		y[i] = rng.NormFloat64() * 10
	}
	// Shuffle samples; the result must follow the shuffled queries.
	rng.Shuffle(n, func(i, j int) {
		x[i], x[j] = x[j], x[i]
		y[i], y[j] = y[j], y[i]
	})

	got := interp1(t, x, y, x)
	if diff := cmp.Diff(y, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestInterp1OutputShape checks that the result follows XI's shape.
func TestInterp1OutputShape(t *testing.T) {
	xi, err := table.FromRows([][]float64{{0, 5}, {10, 15}})
	require.NoError(t, err)

	out, err := interp.Interp1(table.Column(0.0, 10.0), table.Column(0.0, 100.0), xi)
	require.NoError(t, err)
	r, c := out.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, []float64{0, 50, 100, 150}, out.Values())

	row, err := interp.Interp1(table.Column(0.0, 10.0), table.Column(0.0, 100.0), table.Row(1.0, 2.0))
	require.NoError(t, err)
	r, c = row.Shape()
	require.Equal(t, 1, r)
	require.Equal(t, 2, c)
}

func TestInterp1InputsUntouched(t *testing.T) {
	x := table.Column(10.0, 0.0)
	y := table.Column(100.0, 0.0)
	xi := table.Column(5.0)

	_, err := interp.Interp1(x, y, xi)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 0}, x.Values())
	require.Equal(t, []float64{100, 0}, y.Values())
	require.Equal(t, []float64{5}, xi.Values())
}

func TestInterp1Float32(t *testing.T) {
	got := interp1(t, []float32{10, 0}, []float32{100, 0}, []float32{5, -5, 15})
	require.Equal(t, []float32{50, -50, 150}, got)
}

// TestInterp1IntegerTruncation checks truncating integer arithmetic.
func TestInterp1IntegerTruncation(t *testing.T) {
	assert.Equal(t, []int16{3, 6}, interp1(t, []int16{0, 3}, []int16{0, 10}, []int16{1, 2}))
	assert.Equal(t, []int8{-3}, interp1(t, []int8{0, 3}, []int8{0, -10}, []int8{1}))
	assert.Equal(t, []int32{-3, 3}, interp1(t, []int32{3, 0}, []int32{10, 0}, []int32{-1, 1}))

	// Unsigned kinds still see negative slopes and extrapolate below the table.
	assert.Equal(t, []uint8{150}, interp1(t, []uint8{0, 10}, []uint8{200, 100}, []uint8{5}))
	assert.Equal(t, []uint8{0}, interp1(t, []uint8{20, 10}, []uint8{20, 10}, []uint8{0}))
	assert.Equal(t, []uint16{1000, 1500}, interp1(t, []uint16{0, 100}, []uint16{0, 1000}, []uint16{100, 150}))
}

// TestInterp1ZeroSpanFloat documents that duplicate abscissas propagate
// NaN/Inf for floating kinds rather than failing.
func TestInterp1ZeroSpanFloat(t *testing.T) {
	got := interp1(t, []float64{0, 0, 10}, []float64{1, 2, 3}, []float64{0, -1, 5})
	assert.True(t, math.IsNaN(got[0]), "0/0 at duplicate abscissa")
	assert.True(t, math.IsInf(got[1], -1), "extrapolating a vertical edge segment")
	assert.Equal(t, 2.5, got[2])

	got32 := interp1(t, []float32{5, 5}, []float32{1, 2}, []float32{6})
	assert.True(t, math.IsInf(float64(got32[0]), 1))
}

func TestInterp1ZeroSpanInteger(t *testing.T) {
	out, err := interp.Interp1(table.Column[int32](0, 0, 10), table.Column[int32](1, 2, 3), table.Column[int32](5, 0))
	require.ErrorIs(t, err, table.ErrZeroSpan)
	require.NotErrorIs(t, err, table.ErrInvalidArgument)
	require.Contains(t, err.Error(), "query 1")
	require.Nil(t, out, "one zero-width query fails the whole batch")

	// At answers the remaining queries individually.
	ip, err := interp.New(table.Column[int32](0, 0, 10), table.Column[int32](1, 2, 3))
	require.NoError(t, err)
	v, err := ip.At(5)
	require.NoError(t, err)
	require.Equal(t, int32(2), v)
	_, err = ip.At(0)
	require.ErrorIs(t, err, table.ErrZeroSpan)
}

// TestInterp1Int32WideProducts checks that int32 products beyond 32 bits
// are evaluated without overflow.
func TestInterp1Int32WideProducts(t *testing.T) {
	got := interp1(t, []int32{0, 100000}, []int32{0, 100000}, []int32{50000, 150000})
	require.Equal(t, []int32{50000, 150000}, got)
}

func TestInterp1NaNQuery(t *testing.T) {
	got := interp1(t, []float64{0, 10}, []float64{0, 100}, []float64{math.NaN()})
	assert.True(t, math.IsNaN(got[0]))
}

func TestInterp1Errors(t *testing.T) {
	wide, err := table.New[float64](3, 2)
	require.NoError(t, err)

	tests := []struct {
		name     string
		x, y, xi *table.Table[float64]
		want     []error
	}{
		{"X and Y lengths differ", table.Column(0.0, 1.0), table.Column(0.0, 1.0, 2.0), table.Column(0.5),
			[]error{table.ErrDimensionMismatch}},
		{"Y is a row", table.Column(0.0, 1.0), table.Row(0.0, 1.0), table.Column(0.5),
			[]error{table.ErrDimensionMismatch}},
		{"X not a column", wide, wide, table.Column(0.5),
			[]error{table.ErrNotColumn, table.ErrInvalidArgument}},
		{"one sample", table.Column(1.0), table.Column(1.0), table.Column(0.5),
			[]error{table.ErrTooFewSamples, table.ErrInvalidArgument}},
		{"nil X", nil, table.Column(1.0), table.Column(0.5), []error{table.ErrNilTable}},
		{"nil XI", table.Column(0.0, 1.0), table.Column(0.0, 1.0), nil, []error{table.ErrNilTable}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interp.Interp1(tc.x, tc.y, tc.xi)
			for _, want := range tc.want {
				require.ErrorIs(t, err, want)
			}
		})
	}
}

func TestBracket(t *testing.T) {
	ip, err := interp.New(table.Column(4.0, 0.0, 2.0, 1.0, 3.0), table.Column(0.0, 0.0, 0.0, 0.0, 0.0))
	require.NoError(t, err)
	require.Equal(t, 5, ip.Len())
	lo, hi := ip.Domain()
	require.Equal(t, 0.0, lo)
	require.Equal(t, 4.0, hi)

	tests := []struct {
		xq     float64
		lo, hi int
	}{
		{2.5, 2, 3},
		{2, 1, 2},
		{0, 0, 1},
		{4, 3, 4},
		{-1, 0, 1},
		{9, 3, 4},
		{0.1, 0, 1},
		{3.9, 3, 4},
	}
	for _, tc := range tests {
		lo, hi := ip.Bracket(tc.xq)
		assert.Equalf(t, [2]int{tc.lo, tc.hi}, [2]int{lo, hi}, "Bracket(%g)", tc.xq)
	}
}

func TestExtrapolationModes(t *testing.T) {
	x := table.Column(10.0, 0.0)
	y := table.Column(100.0, 0.0)

	clamp, err := interp.Interp1(x, y, table.Column(-5.0, 5.0, 15.0), interp.WithExtrapolation(interp.ExtrapolateClamp))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 50, 100}, clamp.Values())

	lin, err := interp.Interp1(x, y, table.Column(-5.0, 15.0), interp.WithExtrapolation(interp.ExtrapolateLinear))
	require.NoError(t, err)
	require.Equal(t, []float64{-50, 150}, lin.Values())

	ip, err := interp.New(x, y, interp.WithExtrapolation(interp.ExtrapolateReject))
	require.NoError(t, err)
	v, err := ip.At(10)
	require.NoError(t, err)
	require.Equal(t, 100.0, v)
	_, err = ip.At(10.5)
	require.ErrorIs(t, err, table.ErrOutOfRange)
	_, err = ip.Eval(table.Column(1.0, -0.5))
	require.ErrorIs(t, err, table.ErrOutOfRange)
	require.Contains(t, err.Error(), "query 1")
}

func TestWithExtrapolationPanicsOnUnknownMode(t *testing.T) {
	require.Panics(t, func() { interp.WithExtrapolation(interp.Extrapolation(7)) })
	require.Panics(t, func() { interp.WithExtrapolation(interp.Extrapolation(-1)) })
	assert.Equal(t, "clamp", interp.ExtrapolateClamp.String())
	assert.Equal(t, "unknown", interp.Extrapolation(7).String())
}

// TestInterpolatorConcurrentEval exercises the read-only Interpolator from
// several goroutines; run with -race.
func TestInterpolatorConcurrentEval(t *testing.T) {
	ip, err := interp.New(table.Column(0.0, 1.0, 2.0), table.Column(0.0, 10.0, 40.0))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]float64, 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			out, err := ip.Eval(table.Column(0.5, 1.5, 3.0))
			if err == nil {
				results[g] = out.Values()
			}
		}(g)
	}
	wg.Wait()
	for _, r := range results {
		require.Equal(t, []float64{5, 25, 70}, r)
	}
}
