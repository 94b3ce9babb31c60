package validation_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distgen-go/internal/validation"
)

func TestSampleCount(t *testing.T) {
	assert.NoError(t, validation.SampleCount(1))
	assert.NoError(t, validation.SampleCount(100000))

	for _, n := range []int{0, -1, -5} {
		err := validation.SampleCount(n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validation.ErrInvalidParameters))
		assert.Contains(t, err.Error(), "n_samples must be greater than 0")
	}
}

func TestOrdered(t *testing.T) {
	assert.NoError(t, validation.Ordered(1, 2, 7))

	var tests = []struct {
		name    string
		a, c, b float64
	}{
		{"a greater than b", 5, 3, 1},
		{"mode below a", 1, 0, 7},
		{"mode equals a", 1, 1, 7},
		{"mode equals b", 1, 7, 7},
		{"NaN mode", 1, math.NaN(), 7},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validation.Ordered(test.a, test.c, test.b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, validation.ErrInvalidParameters))
			assert.Contains(t, err.Error(), "a < c < b")
		})
	}
}

func TestPositive(t *testing.T) {
	assert.NoError(t, validation.Positive("xm", 3))

	for _, v := range []float64{0, -1, math.NaN()} {
		err := validation.Positive("xm", v)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validation.ErrInvalidParameters))
		assert.Contains(t, err.Error(), "xm must be greater than 0")
	}
}

func TestFinite(t *testing.T) {
	assert.NoError(t, validation.Finite("a", 1.5))
	assert.NoError(t, validation.Finite("a", -1e300))

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := validation.Finite("a", v)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validation.ErrInvalidParameters))
		assert.Contains(t, err.Error(), "a must be a finite number")
	}
}
