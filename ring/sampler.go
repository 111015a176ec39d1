package ring

import (
	"fmt"

	"github.com/Pro7ech/ringlwe/utils/sampling"
)

// Sampler is an interface for random polynomial samplers. Read populates
// the input polynomial according to the sampler's distribution, and
// ReadNew allocates and populates a polynomial of N coefficients.
type Sampler interface {
	GetSource() *sampling.Source
	WithSource(source *sampling.Source) Sampler
	Read(pol Poly)
	ReadNew() (pol Poly)
}

// NewSampler instantiates a new [Sampler] from the provided
// [sampling.Source], [Ring] and [DistributionParameters].
func NewSampler(source *sampling.Source, r Ring, X DistributionParameters) (Sampler, error) {
	switch X := X.(type) {
	case *DiscreteGaussian:
		return NewGaussianSampler(source, r, *X)
	case *Ternary:
		return NewTernarySampler(source, r, *X)
	case *Uniform:
		return NewUniformSampler(source, r), nil
	default:
		return nil, fmt.Errorf("invalid distribution: want *ring.DiscreteGaussian, *ring.Ternary or *ring.Uniform but have %T", X)
	}
}
