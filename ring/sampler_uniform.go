package ring

import (
	"math/bits"

	"github.com/Pro7ech/ringlwe/utils/sampling"
)

// UniformSampler keeps the state of a sampler of polynomials with
// coefficients uniform in [0, Modulus).
type UniformSampler struct {
	*sampling.Source
	R Ring
}

// NewUniformSampler creates a new instance of [UniformSampler] from a
// [sampling.Source] and a [Ring].
func NewUniformSampler(source *sampling.Source, r Ring) *UniformSampler {
	return &UniformSampler{Source: source, R: r}
}

// GetSource returns the underlying [sampling.Source] used by the sampler.
func (u UniformSampler) GetSource() *sampling.Source {
	return u.Source
}

// WithSource returns an instance of the underlying sampler with a new
// [sampling.Source]. It can be used concurrently with the original
// sampler.
func (u UniformSampler) WithSource(source *sampling.Source) Sampler {
	return &UniformSampler{Source: source, R: u.R}
}

// Read samples uniform coefficients on pol by masked rejection.
func (u *UniformSampler) Read(pol Poly) {

	m := u.R.Modulus
	mask := uint64(1)<<uint64(bits.Len64(m-1)) - 1

	for i := range pol {

		c := u.Source.Uint64() & mask

		for c >= m {
			c = u.Source.Uint64() & mask
		}

		pol[i] = c
	}
}

// ReadNew allocates and samples a new polynomial of N coefficients.
func (u *UniformSampler) ReadNew() (pol Poly) {
	pol = u.R.NewPoly()
	u.Read(pol)
	return
}
