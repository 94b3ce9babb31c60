// Package triangular samples the triangular distribution on [a, b] with
// mode c using inverse-transform sampling.
package triangular

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"distgen-go/internal/validation"
	"distgen-go/pkg/uniform"
)

// Params represents the parameters of a triangular distribution.
// It contains the lower bound, upper bound and mode; the invariant
// A < C < B must hold.
type Params struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// NewParams creates a new Params instance with the given bounds and mode.
func NewParams(a, b, c float64) Params {
	return Params{A: a, B: b, C: c}
}

// Validate checks if the parameters are valid.
func (p Params) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"a", p.A}, {"b", p.B}, {"c", p.C}} {
		if err := validation.Finite(v.name, v.val); err != nil {
			return err
		}
	}
	return validation.Ordered(p.A, p.C, p.B)
}

// PDF evaluates the triangular density at x. Values outside [a, b] have
// zero density.
func (p Params) PDF(x float64) float64 {
	switch {
	case x < p.A || x > p.B:
		return 0
	case x < p.C:
		return 2 * (x - p.A) / ((p.B - p.A) * (p.C - p.A))
	default:
		return 2 * (p.B - x) / ((p.B - p.A) * (p.B - p.C))
	}
}

// TheoreticalPDF evaluates the density on nPoints equally spaced points
// spanning [a, b], for plotting against a sampled histogram.
func (p Params) TheoreticalPDF(nPoints int) (xs, densities []float64, err error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	if err := validation.SampleCount(nPoints); err != nil {
		return nil, nil, err
	}
	xs = floats.Span(make([]float64, nPoints), p.A, p.B)
	densities = make([]float64, nPoints)
	for i, x := range xs {
		densities[i] = p.PDF(x)
	}
	return xs, densities, nil
}

// Dist returns the gonum counterpart of the distribution, used for
// theoretical moments. Params must be valid or this panics.
func (p Params) Dist() distuv.Triangle {
	return distuv.NewTriangle(p.A, p.B, p.C, nil)
}

// Generator draws triangular samples from a shared uniform source.
type Generator struct {
	params Params
	src    *uniform.Source
}

// NewGenerator validates the parameters and returns a generator bound
// to src.
func NewGenerator(p Params, src *uniform.Source) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Generator{params: p, src: src}, nil
}

// RandN returns n samples, each in [a, b]. Validation runs before any
// draw, so a failed call leaves the uniform stream untouched.
func (g *Generator) RandN(n int) ([]float64, error) {
	if err := validation.SampleCount(n); err != nil {
		return nil, err
	}
	// CDF value at the mode splits the piecewise inverse.
	cdfAtC := (g.params.C - g.params.A) / (g.params.B - g.params.A)
	us := g.src.FloatN(n)
	samples := make([]float64, n)
	for i, u := range us {
		samples[i] = invCDF(u, g.params, cdfAtC)
	}
	return samples, nil
}

// invCDF maps one uniform value to a triangular sample through the
// piecewise inverse CDF.
func invCDF(u float64, p Params, cdfAtC float64) float64 {
	if u < cdfAtC {
		return p.A + math.Sqrt(u*(p.B-p.A)*(p.C-p.A))
	}
	return p.B - math.Sqrt((1-u)*(p.B-p.A)*(p.B-p.C))
}
