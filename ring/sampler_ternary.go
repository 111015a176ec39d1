package ring

import (
	"fmt"
	"math/rand/v2"

	"github.com/Pro7ech/ringlwe/utils/sampling"
)

// TernarySampler keeps the state of a sampler of polynomials with
// coefficients in {-1, 0, 1}, with -1 stored as its lift Modulus - 1.
type TernarySampler struct {
	*sampling.Source
	R  Ring
	Xs Ternary
}

// NewTernarySampler creates a new instance of [TernarySampler] from a
// [sampling.Source], a [Ring] and ternary distribution parameters (see
// type [Ternary]).
func NewTernarySampler(source *sampling.Source, r Ring, X Ternary) (*TernarySampler, error) {

	switch {
	case X.P != 0 && X.H == 0:
		if X.P < 0 || X.P > 1 {
			return nil, fmt.Errorf("invalid Ternary distribution: P must be in [0, 1] but is %f", X.P)
		}
	case X.P == 0 && X.H != 0:
		if X.H < 0 || X.H > r.N {
			return nil, fmt.Errorf("invalid Ternary distribution: H must be in [0, %d] but is %d", r.N, X.H)
		}
	default:
		return nil, fmt.Errorf("invalid Ternary distribution: exactly one of (P, H) must be non-zero")
	}

	return &TernarySampler{Source: source, R: r, Xs: X}, nil
}

// GetSource returns the underlying [sampling.Source] used by the sampler.
func (s TernarySampler) GetSource() *sampling.Source {
	return s.Source
}

// WithSource returns an instance of the underlying sampler with a new
// [sampling.Source]. It can be used concurrently with the original
// sampler.
func (s TernarySampler) WithSource(source *sampling.Source) Sampler {
	return &TernarySampler{Source: source, R: s.R, Xs: s.Xs}
}

// Read samples ternary coefficients on pol.
func (s *TernarySampler) Read(pol Poly) {
	if s.Xs.H != 0 {
		s.readSparse(pol)
	} else {
		s.readProba(pol)
	}
}

// ReadNew allocates and samples a new polynomial of N coefficients.
func (s *TernarySampler) ReadNew() (pol Poly) {
	pol = s.R.NewPoly()
	s.Read(pol)
	return
}

func (s *TernarySampler) readProba(pol Poly) {

	r := rand.New(s.Source)
	m := s.R.Modulus
	p := s.Xs.P

	for i := range pol {
		switch u := r.Float64(); {
		case u < 1-p:
			pol[i] = 0
		case u < 1-p/2:
			pol[i] = 1
		default:
			pol[i] = m - 1
		}
	}
}

func (s *TernarySampler) readSparse(pol Poly) {

	r := rand.New(s.Source)
	m := s.R.Modulus

	index := make([]int, len(pol))
	for i := range index {
		index[i] = i
	}
	r.Shuffle(len(index), func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})

	pol.Zero()
	for _, i := range index[:s.Xs.H] {
		if r.Uint64()&1 == 0 {
			pol[i] = 1
		} else {
			pol[i] = m - 1
		}
	}
}
