package rlwe

import (
	"fmt"

	"github.com/Pro7ech/ringlwe/ring"
)

// Decryptor is a structure that decrypts [Ciphertext] with a
// [SecretKey].
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor instantiates a new [Decryptor].
func NewDecryptor(params ParameterProvider, sk *SecretKey) (*Decryptor, error) {

	p := *params.GetRLWEParameters()

	if sk == nil {
		return nil, fmt.Errorf("cannot NewDecryptor: secret key is nil")
	}

	if sk.N() != p.N() {
		return nil, fmt.Errorf("cannot NewDecryptor: secret key degree does not match parameters ring degree")
	}

	return &Decryptor{params: p, sk: sk}, nil
}

// GetRLWEParameters returns the underlying [Parameters] of the receiver.
func (d Decryptor) GetRLWEParameters() *Parameters {
	return &d.params
}

// WithKey returns an instance of the receiver with a new decryption key.
func (d Decryptor) WithKey(sk *SecretKey) (*Decryptor, error) {
	return NewDecryptor(d.params, sk)
}

// DecryptNew decrypts the input [Ciphertext] and returns the result as a
// new [Plaintext]. The phase c0 + c1*s mod (X^N + 1, Q) is rescaled by
// T/Q with each coefficient read as its centered representative, which
// strips errors of magnitude below Delta/2. Decryption does not fail: if
// the accumulated error exceeds that bound, the returned message is
// silently wrong.
func (d Decryptor) DecryptNew(ct *Ciphertext) (pt *Plaintext) {

	rT := d.params.RingT()
	rQ := d.params.RingQ()

	phase := d.DecryptPhaseNew(ct)
	phase.Resize(d.params.N())

	return &Plaintext{Value: rT.ScaleCenteredNew(phase, rQ.Field, 1/d.params.Delta())}
}

// DecryptPhaseNew returns the raw polynomial c0 + c1*s mod (X^N + 1, Q)
// before the final rescaling to the plaintext field, from which the
// error magnitude can be inspected.
func (d Decryptor) DecryptPhaseNew(ct *Ciphertext) ring.Poly {
	rQ := d.params.RingQ()
	return rQ.ReduceNew(rQ.AddNew(ct.Value[0], rQ.MulNew(ct.Value[1], d.sk.Value)))
}
