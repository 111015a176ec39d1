package ring

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Pro7ech/ringlwe/utils/sampling"
)

// GaussianSampler keeps the state of a truncated discrete Gaussian
// polynomial sampler. Coefficients are drawn from the continuous normal
// distribution of the receiver's standard deviation, rounded toward
// zero, rejected beyond the bound, and negative values are stored as
// their lift Modulus - |v|.
type GaussianSampler struct {
	*sampling.Source
	R  Ring
	Xe DiscreteGaussian
}

// NewGaussianSampler creates a new instance of [GaussianSampler] from a
// [sampling.Source], a [Ring] and a [DiscreteGaussian] distribution
// parameter.
func NewGaussianSampler(source *sampling.Source, r Ring, Xe DiscreteGaussian) (*GaussianSampler, error) {

	if Xe.Sigma <= 0 {
		return nil, fmt.Errorf("invalid DiscreteGaussian distribution: Sigma must be strictly positive but is %f", Xe.Sigma)
	}

	if Xe.Bound <= 0 {
		return nil, fmt.Errorf("invalid DiscreteGaussian distribution: Bound must be strictly positive but is %f", Xe.Bound)
	}

	return &GaussianSampler{Source: source, R: r, Xe: Xe}, nil
}

// GetSource returns the underlying [sampling.Source] used by the sampler.
func (g GaussianSampler) GetSource() *sampling.Source {
	return g.Source
}

// WithSource returns an instance of the underlying sampler with a new
// [sampling.Source]. It can be used concurrently with the original
// sampler.
func (g GaussianSampler) WithSource(source *sampling.Source) Sampler {
	return &GaussianSampler{Source: source, R: g.R, Xe: g.Xe}
}

// Read samples truncated Gaussian coefficients on pol.
func (g *GaussianSampler) Read(pol Poly) {

	r := rand.New(g.Source)
	f := g.R.Field
	sigma := g.Xe.Sigma
	bound := g.Xe.Bound

	for i := range pol {
		var norm float64
		for {
			norm = r.NormFloat64() * sigma
			if math.Abs(norm) <= bound {
				break
			}
		}
		// Truncation toward zero.
		pol[i] = f.FromInt64(int64(norm))
	}
}

// ReadNew allocates and samples a new polynomial of N coefficients.
func (g *GaussianSampler) ReadNew() (pol Poly) {
	pol = g.R.NewPoly()
	g.Read(pol)
	return
}
