package triangular_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"distgen-go/internal/validation"
	"distgen-go/pkg/triangular"
	"distgen-go/pkg/uniform"
)

func TestRandNRange(t *testing.T) {
	gen, err := triangular.NewGenerator(triangular.NewParams(1, 7, 2), uniform.New(42))
	require.NoError(t, err)

	samples, err := gen.RandN(1000)
	require.NoError(t, err)
	require.Len(t, samples, 1000)
	assert.GreaterOrEqual(t, floats.Min(samples), 1.0)
	assert.LessOrEqual(t, floats.Max(samples), 7.0)
}

func TestInvalidParams(t *testing.T) {
	var tests = []struct {
		name    string
		a, b, c float64
	}{
		{"a greater than b", 5, 1, 3},
		{"mode outside bounds", 1, 7, 9},
		{"degenerate bounds", 2, 2, 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := triangular.NewGenerator(triangular.NewParams(test.a, test.b, test.c), uniform.New(42))
			require.Error(t, err)
			assert.True(t, errors.Is(err, validation.ErrInvalidParameters))
		})
	}
}

func TestInvalidSampleCount(t *testing.T) {
	gen, err := triangular.NewGenerator(triangular.NewParams(1, 7, 2), uniform.New(42))
	require.NoError(t, err)

	for _, n := range []int{0, -100} {
		_, err := gen.RandN(n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validation.ErrInvalidParameters))
	}
}

// A rejected call must leave the uniform stream untouched.
func TestFailedCallDrawsNoEntropy(t *testing.T) {
	src := uniform.New(42)
	gen, err := triangular.NewGenerator(triangular.NewParams(1, 7, 2), src)
	require.NoError(t, err)

	_, err = gen.RandN(-1)
	require.Error(t, err)

	fresh := uniform.New(42)
	assert.Equal(t, fresh.FloatN(10), src.FloatN(10))
}

func TestReproducibility(t *testing.T) {
	p := triangular.NewParams(1, 7, 2)

	first, err := mustGen(t, p, 42).RandN(5)
	require.NoError(t, err)
	second, err := mustGen(t, p, 42).RandN(5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for _, v := range first {
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 7.0)
	}
}

func TestMeanConvergence(t *testing.T) {
	p := triangular.NewParams(1, 7, 2)
	samples, err := mustGen(t, p, 1).RandN(100000)
	require.NoError(t, err)

	dist := p.Dist()
	assert.InDelta(t, dist.Mean(), stat.Mean(samples, nil), 0.05)
	assert.InDelta(t, dist.Variance(), stat.Variance(samples, nil), 0.05)
}

func TestPDFMatchesReference(t *testing.T) {
	p := triangular.NewParams(1, 7, 2)
	dist := p.Dist()
	for _, x := range floats.Span(make([]float64, 200), 1, 7) {
		assert.InDelta(t, dist.Prob(x), p.PDF(x), 1e-12)
	}
	assert.Zero(t, p.PDF(0.5))
	assert.Zero(t, p.PDF(7.5))
}

func TestTheoreticalPDFGrid(t *testing.T) {
	p := triangular.NewParams(1, 7, 2)
	xs, densities, err := p.TheoreticalPDF(1000)
	require.NoError(t, err)
	require.Len(t, xs, 1000)
	require.Len(t, densities, 1000)

	assert.Equal(t, 1.0, xs[0])
	assert.InDelta(t, 7.0, xs[len(xs)-1], 1e-9)
	assert.GreaterOrEqual(t, floats.Min(densities), 0.0)

	_, _, err = p.TheoreticalPDF(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrInvalidParameters))
}

func mustGen(t *testing.T, p triangular.Params, seed int64) *triangular.Generator {
	t.Helper()
	gen, err := triangular.NewGenerator(p, uniform.New(seed))
	require.NoError(t, err)
	return gen
}
