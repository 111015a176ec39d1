package rlwe

import (
	"fmt"

	"github.com/Pro7ech/ringlwe/ring"
	"github.com/Pro7ech/ringlwe/utils/sampling"
)

// Encryptor is a structure that encrypts [Plaintext] into [Ciphertext]
// under a [PublicKey].
type Encryptor struct {
	params Parameters
	pk     *PublicKey

	xuSampler ring.Sampler // ephemeral secret over F_Q
	xeSampler ring.Sampler // error over F_Q
}

// NewEncryptor creates a new [Encryptor] from the provided [PublicKey].
// Its samplers are seeded with fresh random seeds.
func NewEncryptor(params ParameterProvider, pk *PublicKey) (*Encryptor, error) {

	p := *params.GetRLWEParameters()

	if pk == nil {
		return nil, fmt.Errorf("cannot NewEncryptor: public key is nil")
	}

	if pk.Value[0].N() > p.N() || pk.Value[1].N() > p.N() {
		return nil, fmt.Errorf("cannot NewEncryptor: public key degree does not match parameters ring degree")
	}

	xuSampler, err := ring.NewSampler(sampling.NewSource(sampling.NewSeed()), p.RingQ(), p.Xs())
	if err != nil {
		// Sanity check, the distribution was validated at parameter creation.
		panic(fmt.Errorf("NewEncryptor: %w", err))
	}

	xeSampler, err := ring.NewSampler(sampling.NewSource(sampling.NewSeed()), p.RingQ(), p.Xe())
	if err != nil {
		// Sanity check, the distribution was validated at parameter creation.
		panic(fmt.Errorf("NewEncryptor: %w", err))
	}

	return &Encryptor{
		params:    p,
		pk:        pk,
		xuSampler: xuSampler,
		xeSampler: xeSampler,
	}, nil
}

// GetRLWEParameters returns the underlying [Parameters] of the receiver.
func (enc Encryptor) GetRLWEParameters() *Parameters {
	return &enc.params
}

// WithSource returns an instance of the receiver whose samplers all draw
// from source, in a fixed order. The returned object cannot be used
// concurrently with the receiver.
func (enc Encryptor) WithSource(source *sampling.Source) *Encryptor {
	return &Encryptor{
		params:    enc.params,
		pk:        enc.pk,
		xuSampler: enc.xuSampler.WithSource(source),
		xeSampler: enc.xeSampler.WithSource(source),
	}
}

// EncryptNew encrypts the input [Plaintext] and returns the result as a
// new [Ciphertext]:
//
//	ct = (pk0*u + e0 + Delta*m, pk1*u + e1) mod (X^N + 1, Q)
//
// for an ephemeral ternary u and small errors e0, e1. The plaintext may
// have fewer than N coefficients; it cannot have more.
func (enc *Encryptor) EncryptNew(pt *Plaintext) (ct *Ciphertext, err error) {

	if pt.N() > enc.params.N() {
		return nil, fmt.Errorf("cannot EncryptNew: plaintext degree %d exceeds ring degree %d", pt.N(), enc.params.N())
	}

	rT := enc.params.RingT()
	rQ := enc.params.RingQ()

	mhat := rQ.ScaleNew(pt.Value, rT.Field, enc.params.Delta())

	u := enc.xuSampler.ReadNew()
	e0 := enc.xeSampler.ReadNew()
	e1 := enc.xeSampler.ReadNew()

	c0 := rQ.ReduceNew(rQ.AddNew(rQ.AddNew(rQ.MulNew(enc.pk.Value[0], u), e0), mhat))
	c1 := rQ.ReduceNew(rQ.AddNew(rQ.MulNew(enc.pk.Value[1], u), e1))

	ct = &Ciphertext{Value: [2]ring.Poly{c0, c1}}
	ct.Value[0].Resize(enc.params.N())
	ct.Value[1].Resize(enc.params.N())

	return
}

// EncryptZeroNew returns a fresh encryption of the zero plaintext.
func (enc *Encryptor) EncryptZeroNew() (ct *Ciphertext) {
	ct, err := enc.EncryptNew(NewPlaintext(enc.params))
	if err != nil {
		// Sanity check, the zero plaintext always has N coefficients.
		panic(fmt.Errorf("EncryptZeroNew: %w", err))
	}
	return
}
