// Package gammaar samples the Gamma(shape=2, rate=1.5) distribution by
// acceptance-rejection with an Exponential(rate=0.75) proposal. The
// shape and rates are fixed constants of the method, not user inputs.
package gammaar

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"distgen-go/internal/validation"
	"distgen-go/pkg/uniform"
)

const (
	// Shape and Rate define the target Gamma distribution.
	Shape = 2.0
	Rate  = 1.5
	// ProposalRate is the rate of the exponential proposal distribution.
	ProposalRate = 0.75
	// DefaultProposals is the proposal count used when the caller does
	// not specify one.
	DefaultProposals = 10000
)

// M is the tightest constant with M*ExponentialPDF(x) >= PDF(x) for all
// x >= 0. The density ratio 3x*exp(-0.75x) peaks at x = 4/3 with value
// 4/e, so the expected acceptance rate is 1/M = e/4.
var M = 4 / math.E

// PDF evaluates the Gamma(2, 1.5) density 2.25*x*exp(-1.5x) at x.
func PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 2.25 * x * math.Exp(-1.5*x)
}

// ExponentialPDF evaluates the Exponential(0.75) proposal density at x.
func ExponentialPDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 0.75 * math.Exp(-0.75*x)
}

// TheoreticalPDF evaluates the target density on nPoints equally spaced
// points spanning [0, max], for plotting over a sampled histogram.
func TheoreticalPDF(max float64, nPoints int) (xs, densities []float64, err error) {
	if err := validation.Positive("max", max); err != nil {
		return nil, nil, err
	}
	if err := validation.SampleCount(nPoints); err != nil {
		return nil, nil, err
	}
	xs = floats.Span(make([]float64, nPoints), 0, max)
	densities = make([]float64, nPoints)
	for i, x := range xs {
		densities[i] = PDF(x)
	}
	return xs, densities, nil
}

// Dist returns the gonum counterpart of the target distribution, used
// for theoretical moments.
func Dist() distuv.Gamma {
	return distuv.Gamma{Alpha: Shape, Beta: Rate}
}

// Generator draws Gamma samples from a shared uniform source.
type Generator struct {
	src *uniform.Source
}

// NewGenerator returns a generator bound to src.
func NewGenerator(src *uniform.Source) *Generator {
	return &Generator{src: src}
}

// RandN draws n exponential proposals and keeps the ones passing the
// acceptance test. Rejected proposals are discarded, not replaced, so
// the returned slice holds between 0 and n values; with the fixed
// constants the expected acceptance rate is e/4, about 0.68. Every
// accepted value is non-negative.
//
// Draw order is fixed: n proposal uniforms first, then one acceptance
// uniform per proposal. Reorderings break seed reproducibility.
func (g *Generator) RandN(n int) ([]float64, error) {
	if err := validation.SampleCount(n); err != nil {
		return nil, err
	}

	us := g.src.FloatN(n)
	proposals := make([]float64, n)
	for i, u := range us {
		// Inverse CDF of the exponential proposal.
		proposals[i] = -math.Log(1-u) / ProposalRate
	}

	accepted := make([]float64, 0, n)
	for _, y := range proposals {
		v := g.src.Float64()
		if v <= PDF(y)/(M*ExponentialPDF(y)) {
			accepted = append(accepted, y)
		}
	}
	return accepted, nil
}
