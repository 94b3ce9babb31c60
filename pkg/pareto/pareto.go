// Package pareto samples the Pareto (Type I) distribution using
// inverse-transform sampling.
package pareto

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"distgen-go/internal/validation"
	"distgen-go/pkg/uniform"
)

// Params represents the parameters of a Pareto distribution: the scale
// Xm (minimum possible value) and the shape Alpha (tail index). Both
// must be strictly positive; Alpha may be any positive real.
type Params struct {
	Xm    float64 `json:"xm"`
	Alpha float64 `json:"alpha"`
}

// NewParams creates a new Params instance with the given scale and shape.
func NewParams(xm, alpha float64) Params {
	return Params{Xm: xm, Alpha: alpha}
}

// Validate checks if the parameters are valid.
func (p Params) Validate() error {
	if err := validation.Finite("xm", p.Xm); err != nil {
		return err
	}
	if err := validation.Finite("alpha", p.Alpha); err != nil {
		return err
	}
	if err := validation.Positive("xm", p.Xm); err != nil {
		return err
	}
	return validation.Positive("alpha", p.Alpha)
}

// PDF evaluates the Pareto density alpha*xm^alpha / x^(alpha+1) at x.
// Values below xm have zero density.
func (p Params) PDF(x float64) float64 {
	if x < p.Xm {
		return 0
	}
	return p.Alpha * math.Pow(p.Xm, p.Alpha) / math.Pow(x, p.Alpha+1)
}

// TheoreticalPDF evaluates the density on nPoints equally spaced points
// spanning [xm, 10*xm], the range the overlay plots cover.
func (p Params) TheoreticalPDF(nPoints int) (xs, densities []float64, err error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	if err := validation.SampleCount(nPoints); err != nil {
		return nil, nil, err
	}
	xs = floats.Span(make([]float64, nPoints), p.Xm, 10*p.Xm)
	densities = make([]float64, nPoints)
	for i, x := range xs {
		densities[i] = p.PDF(x)
	}
	return xs, densities, nil
}

// Dist returns the gonum counterpart of the distribution, used for
// theoretical moments. The mean is +Inf for alpha <= 1 and the variance
// is +Inf for alpha <= 2; both are properties of the distribution, not
// errors.
func (p Params) Dist() distuv.Pareto {
	return distuv.Pareto{Xm: p.Xm, Alpha: p.Alpha}
}

// Generator draws Pareto samples from a shared uniform source.
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

// RandN returns n samples, each >= xm. The right tail is unbounded:
// samples grow without limit as the underlying uniform approaches 1,
// but stay finite because the uniform stream never yields 1 exactly.
func (g *Generator) RandN(n int) ([]float64, error) {
	if err := validation.SampleCount(n); err != nil {
		return nil, err
	}
	us := g.src.FloatN(n)
	samples := make([]float64, n)
	for i, u := range us {
		samples[i] = g.params.Xm / math.Pow(1-u, 1/g.params.Alpha)
	}
	return samples, nil
}
