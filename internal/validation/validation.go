// Package validation holds the parameter-contract checks shared by the
// distribution generators. Every check runs before any random draw, so a
// failed call consumes no entropy from the shared uniform stream.
package validation

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidParameters is returned when a generator is called with
// parameters violating its contract. The wrapping message names the
// violated constraint.
var ErrInvalidParameters = errors.New("invalid parameters")

// SampleCount checks that n is a positive sample count.
func SampleCount(n int) error {
	if n <= 0 {
		return errors.Wrap(ErrInvalidParameters, "n_samples must be greater than 0")
	}
	return nil
}

// Ordered checks the triangular ordering invariant a < c < b.
func Ordered(a, c, b float64) error {
	if !(a < c && c < b) {
		return errors.Wrap(ErrInvalidParameters, "a < c < b must be satisfied")
	}
	return nil
}

// Positive checks that the named parameter is strictly positive.
func Positive(name string, v float64) error {
	if !(v > 0) {
		return errors.Wrapf(ErrInvalidParameters, "%s must be greater than 0", name)
	}
	return nil
}

// Finite rejects NaN and infinite values. The ordering and positivity
// predicates already reject NaN through their comparisons, but an
// explicit check gives the caller a message naming the parameter.
func Finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrInvalidParameters, "%s must be a finite number", name)
	}
	return nil
}
