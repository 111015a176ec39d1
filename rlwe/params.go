// Package rlwe implements the generation, encryption, decryption and
// homomorphic evaluation of BFV-style RLWE ciphertexts over
// single-modulus quotient rings F_Q[X]/(X^N + 1).
//
// A plaintext is a polynomial with coefficients in the plaintext field
// F_T; a ciphertext is a pair of polynomials with coefficients in the
// ciphertext field F_Q, and the relinearization key lives in the
// extended field F_{P*Q}, where P is the relinearization lift factor.
package rlwe

import (
	"encoding/json"
	"fmt"
	"math/bits"

	"github.com/Pro7ech/ringlwe/ring"
)

// DefaultP is the default relinearization lift factor.
const DefaultP = 1 << 20

// DefaultSigma is the default standard deviation of the error
// distribution.
const DefaultSigma = 3.2

// DefaultBound is the default truncation bound of the error
// distribution (6 * DefaultSigma).
const DefaultBound = 19.2

// DefaultTernaryP is the default density of the secret distribution,
// giving coefficients uniform in {-1, 0, 1}.
const DefaultTernaryP = 2.0 / 3.0

// ParametersLiteral is a literal representation of scheme parameters. It
// has public fields and is used to express unchecked user-defined
// parameters literally into Go programs. The [NewParametersFromLiteral]
// function is used to generate the actual checked parameters from the
// literal representation.
//
// Users must set the ring degree N, the plaintext modulus T and the
// ciphertext modulus Q. Optionally, users may specify the
// relinearization lift factor P, the error distribution Xe and the
// secret distribution Xs. If left unset, standard default values are
// substituted at parameter creation.
type ParametersLiteral struct {
	N  int
	T  uint64
	Q  uint64
	P  uint64                      `json:",omitempty"`
	Xe ring.DistributionParameters `json:",omitempty"`
	Xs ring.DistributionParameters `json:",omitempty"`
}

// UnmarshalJSON reads a JSON representation of the object into the
// receiver. Distribution parameters decode from their generic map
// representation.
func (p *ParametersLiteral) UnmarshalJSON(data []byte) (err error) {

	var aux struct {
		N  int
		T  uint64
		Q  uint64
		P  uint64
		Xe map[string]interface{}
		Xs map[string]interface{}
	}

	if err = json.Unmarshal(data, &aux); err != nil {
		return
	}

	p.N = aux.N
	p.T = aux.T
	p.Q = aux.Q
	p.P = aux.P

	if aux.Xe != nil {
		if p.Xe, err = ring.DistributionParametersFromMap(aux.Xe); err != nil {
			return
		}
	}

	if aux.Xs != nil {
		if p.Xs, err = ring.DistributionParametersFromMap(aux.Xs); err != nil {
			return
		}
	}

	return
}

// ParameterProvider is an interface for types that expose scheme
// parameters.
type ParameterProvider interface {
	GetRLWEParameters() *Parameters
}

// Parameters represents a checked, immutable set of scheme parameters.
// See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	n  int
	t  uint64
	q  uint64
	p  uint64
	xe ring.DistributionParameters
	xs ring.DistributionParameters

	ringT ring.Ring
	ringQ ring.Ring
	ringR ring.Ring
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a
// [ParametersLiteral] specification. It returns the empty parameters and
// a non-nil error if the specified parameters are invalid.
//
// See [ParametersLiteral] for default values of the optional fields.
func NewParametersFromLiteral(lit ParametersLiteral) (params Parameters, err error) {

	if lit.N < 1 || lit.N&(lit.N-1) != 0 {
		return Parameters{}, fmt.Errorf("invalid parameters: N must be a positive power of two but is %d", lit.N)
	}

	if lit.T < 2 {
		return Parameters{}, fmt.Errorf("invalid parameters: T must be at least 2 but is %d", lit.T)
	}

	if lit.Q <= lit.T {
		return Parameters{}, fmt.Errorf("invalid parameters: Q=%d must be strictly greater than T=%d", lit.Q, lit.T)
	}

	p := lit.P
	if p == 0 {
		p = DefaultP
	}

	if p < lit.Q {
		return Parameters{}, fmt.Errorf("invalid parameters: P=%d must be at least Q=%d", p, lit.Q)
	}

	if hi, _ := bits.Mul64(p, lit.Q); hi != 0 || bits.Len64(p*lit.Q) > ring.MaxModulusBits {
		return Parameters{}, fmt.Errorf("invalid parameters: bit-length of P*Q must be at most %d", ring.MaxModulusBits)
	}

	xe := lit.Xe
	if xe == nil {
		xe = &ring.DiscreteGaussian{Sigma: DefaultSigma, Bound: DefaultBound}
	}

	xs := lit.Xs
	if xs == nil {
		xs = &ring.Ternary{P: DefaultTernaryP}
	}

	switch xe.(type) {
	case *ring.DiscreteGaussian, *ring.Ternary:
	default:
		return Parameters{}, fmt.Errorf("invalid parameters: Xe must be *ring.DiscreteGaussian or *ring.Ternary but is %T", xe)
	}

	switch xs.(type) {
	case *ring.DiscreteGaussian, *ring.Ternary:
	default:
		return Parameters{}, fmt.Errorf("invalid parameters: Xs must be *ring.DiscreteGaussian or *ring.Ternary but is %T", xs)
	}

	params = Parameters{
		n:  lit.N,
		t:  lit.T,
		q:  lit.Q,
		p:  p,
		xe: xe,
		xs: xs,
	}

	if params.ringT, err = ring.NewRing(lit.N, lit.T); err != nil {
		return Parameters{}, fmt.Errorf("invalid parameters: %w", err)
	}

	if params.ringQ, err = ring.NewRing(lit.N, lit.Q); err != nil {
		return Parameters{}, fmt.Errorf("invalid parameters: %w", err)
	}

	if params.ringR, err = ring.NewRing(lit.N, p*lit.Q); err != nil {
		return Parameters{}, fmt.Errorf("invalid parameters: %w", err)
	}

	if _, err = ring.NewSampler(nil, params.ringQ, xe); err != nil {
		return Parameters{}, fmt.Errorf("invalid parameters: Xe: %w", err)
	}

	if _, err = ring.NewSampler(nil, params.ringQ, xs); err != nil {
		return Parameters{}, fmt.Errorf("invalid parameters: Xs: %w", err)
	}

	return
}

// GetRLWEParameters returns a pointer to the receiver.
func (p Parameters) GetRLWEParameters() *Parameters {
	return &p
}

// N returns the ring degree.
func (p Parameters) N() int {
	return p.n
}

// LogN returns the base two logarithm of the ring degree.
func (p Parameters) LogN() int {
	return bits.Len64(uint64(p.n) - 1)
}

// T returns the plaintext modulus.
func (p Parameters) T() uint64 {
	return p.t
}

// Q returns the ciphertext modulus.
func (p Parameters) Q() uint64 {
	return p.q
}

// P returns the relinearization lift factor.
func (p Parameters) P() uint64 {
	return p.p
}

// QP returns the modulus P*Q of the relinearization field.
func (p Parameters) QP() uint64 {
	return p.p * p.q
}

// Delta returns the plaintext scaling factor Q/T.
func (p Parameters) Delta() float64 {
	return float64(p.q) / float64(p.t)
}

// Xe returns the error distribution parameters.
func (p Parameters) Xe() ring.DistributionParameters {
	return p.xe
}

// Xs returns the secret distribution parameters.
func (p Parameters) Xs() ring.DistributionParameters {
	return p.xs
}

// RingT returns the plaintext ring F_T[X]/(X^N + 1).
func (p Parameters) RingT() ring.Ring {
	return p.ringT
}

// RingQ returns the ciphertext ring F_Q[X]/(X^N + 1).
func (p Parameters) RingQ() ring.Ring {
	return p.ringQ
}

// RingR returns the relinearization ring F_{P*Q}[X]/(X^N + 1).
func (p Parameters) RingR() ring.Ring {
	return p.ringR
}

// ParametersLiteral returns the [ParametersLiteral] of the receiver.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N:  p.n,
		T:  p.t,
		Q:  p.q,
		P:  p.p,
		Xe: p.xe,
		Xs: p.xs,
	}
}

// Equal returns true if the receiver and other denote the same parameter
// set.
func (p Parameters) Equal(other *Parameters) bool {
	return p.n == other.n &&
		p.t == other.t &&
		p.q == other.q &&
		p.p == other.p &&
		p.xe.Equal(other.xe) &&
		p.xs.Equal(other.xs)
}

// MarshalJSON marshals the receiver into a JSON byte slice.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of the parameters into the
// receiver.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var lit ParametersLiteral
	if err = json.Unmarshal(data, &lit); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(lit)
	return
}

// String returns a compact string representation of the parameters.
func (p Parameters) String() string {
	return fmt.Sprintf("N=%d/T=%d/Q=%d/P=%d", p.n, p.t, p.q, p.p)
}
