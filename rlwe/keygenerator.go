package rlwe

import (
	"fmt"

	"github.com/Pro7ech/ringlwe/ring"
	"github.com/Pro7ech/ringlwe/utils/sampling"
)

// KeyGenerator is a structure that stores the elements required to
// create new keys.
type KeyGenerator struct {
	params Parameters

	xsSampler  ring.Sampler // secret over F_Q
	xeSampler  ring.Sampler // error over F_Q
	xaSampler  ring.Sampler // uniform over F_Q
	xeRSampler ring.Sampler // error over F_{P*Q}
	xaRSampler ring.Sampler // uniform over F_{P*Q}
}

// NewKeyGenerator creates a new [KeyGenerator], whose samplers are
// seeded with fresh random seeds.
func NewKeyGenerator(params ParameterProvider) *KeyGenerator {

	p := *params.GetRLWEParameters()

	xsSampler, err := ring.NewSampler(sampling.NewSource(sampling.NewSeed()), p.RingQ(), p.Xs())
	if err != nil {
		// Sanity check, the distribution was validated at parameter creation.
		panic(fmt.Errorf("NewKeyGenerator: %w", err))
	}

	xeSampler, err := ring.NewSampler(sampling.NewSource(sampling.NewSeed()), p.RingQ(), p.Xe())
	if err != nil {
		// Sanity check, the distribution was validated at parameter creation.
		panic(fmt.Errorf("NewKeyGenerator: %w", err))
	}

	xeRSampler, err := ring.NewSampler(sampling.NewSource(sampling.NewSeed()), p.RingR(), p.Xe())
	if err != nil {
		// Sanity check, the distribution was validated at parameter creation.
		panic(fmt.Errorf("NewKeyGenerator: %w", err))
	}

	return &KeyGenerator{
		params:     p,
		xsSampler:  xsSampler,
		xeSampler:  xeSampler,
		xaSampler:  ring.NewUniformSampler(sampling.NewSource(sampling.NewSeed()), p.RingQ()),
		xeRSampler: xeRSampler,
		xaRSampler: ring.NewUniformSampler(sampling.NewSource(sampling.NewSeed()), p.RingR()),
	}
}

// GetRLWEParameters returns the underlying [Parameters] of the receiver.
func (kgen KeyGenerator) GetRLWEParameters() *Parameters {
	return &kgen.params
}

// WithSource returns an instance of the receiver whose samplers all draw
// from source, in a fixed order. Two generators instantiated with
// sources holding the same seed generate the same keys. The returned
// object cannot be used concurrently with the receiver.
func (kgen KeyGenerator) WithSource(source *sampling.Source) *KeyGenerator {
	return &KeyGenerator{
		params:     kgen.params,
		xsSampler:  kgen.xsSampler.WithSource(source),
		xeSampler:  kgen.xeSampler.WithSource(source),
		xaSampler:  kgen.xaSampler.WithSource(source),
		xeRSampler: kgen.xeRSampler.WithSource(source),
		xaRSampler: kgen.xaRSampler.WithSource(source),
	}
}

// GenSecretKeyNew generates a new [SecretKey] from the secret
// distribution.
func (kgen *KeyGenerator) GenSecretKeyNew() (sk *SecretKey) {
	return &SecretKey{Value: kgen.xsSampler.ReadNew()}
}

// GenPublicKeyNew generates a new [PublicKey] from the provided
// [SecretKey]: pk = (-(a*s) + e, a) mod (X^N + 1, Q) for a uniform a and
// a small error e.
func (kgen *KeyGenerator) GenPublicKeyNew(sk *SecretKey) (pk *PublicKey) {

	rQ := kgen.params.RingQ()

	a := kgen.xaSampler.ReadNew()
	e := kgen.xeSampler.ReadNew()

	pk0 := rQ.ReduceNew(rQ.AddNew(rQ.NegNew(rQ.MulNew(a, sk.Value)), e))

	return &PublicKey{Value: [2]ring.Poly{pk0, a}}
}

// GenRelinearizationKeyNew generates a new [RelinearizationKey] from the
// provided [SecretKey]: rlk = (-(a*s' + e) + P*(s'^2 mod X^N + 1), a)
// over the relinearization ring, where s' is the secret lifted
// coefficient-wise into F_{P*Q} by its centered representative, so that
// a -1 coefficient stays -1.
func (kgen *KeyGenerator) GenRelinearizationKeyNew(sk *SecretKey) (rlk *RelinearizationKey) {

	rQ := kgen.params.RingQ()
	rR := kgen.params.RingR()

	skR := rR.ScaleCenteredNew(sk.Value, rQ.Field, 1)

	a := kgen.xaRSampler.ReadNew()
	e := kgen.xeRSampler.ReadNew()

	sk2 := rR.MulScalarNew(rR.ReduceNew(rR.MulNew(skR, skR)), kgen.params.P())

	rk0 := rR.ReduceNew(rR.AddNew(rR.NegNew(rR.AddNew(rR.MulNew(a, skR), e)), sk2))

	return &RelinearizationKey{Value: [2]ring.Poly{rk0, a}}
}

// GenKeyPairNew generates a new [SecretKey] and an associated
// [PublicKey].
func (kgen *KeyGenerator) GenKeyPairNew() (sk *SecretKey, pk *PublicKey) {
	sk = kgen.GenSecretKeyNew()
	return sk, kgen.GenPublicKeyNew(sk)
}
