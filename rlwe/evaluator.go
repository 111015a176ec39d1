package rlwe

import (
	"fmt"

	"github.com/Pro7ech/ringlwe/ring"
)

// Evaluator is a structure that holds the necessary elements to execute
// homomorphic operations on [Ciphertext]: addition, subtraction,
// negation and multiplication with relinearization.
//
// The evaluator never mutates its operands; every operation allocates
// its result.
type Evaluator struct {
	params Parameters
	rlk    *RelinearizationKey
}

// NewEvaluator creates a new [Evaluator]. The [RelinearizationKey] may
// be nil if ciphertext multiplication is not needed.
func NewEvaluator(params ParameterProvider, rlk *RelinearizationKey) *Evaluator {
	return &Evaluator{params: *params.GetRLWEParameters(), rlk: rlk}
}

// GetRLWEParameters returns the underlying [Parameters] of the receiver.
func (eval Evaluator) GetRLWEParameters() *Parameters {
	return &eval.params
}

// WithKey returns an instance of the receiver with a new
// [RelinearizationKey].
func (eval Evaluator) WithKey(rlk *RelinearizationKey) *Evaluator {
	return &Evaluator{params: eval.params, rlk: rlk}
}

// AddNew returns ct0 + ct1, the pairwise sum of the ciphertext
// polynomials modulo (X^N + 1, Q). The error terms add up; the result
// decrypts correctly as long as their sum stays below Delta/2.
func (eval Evaluator) AddNew(ct0, ct1 *Ciphertext) *Ciphertext {
	rQ := eval.params.RingQ()
	return &Ciphertext{Value: [2]ring.Poly{
		eval.resized(rQ.ReduceNew(rQ.AddNew(ct0.Value[0], ct1.Value[0]))),
		eval.resized(rQ.ReduceNew(rQ.AddNew(ct0.Value[1], ct1.Value[1]))),
	}}
}

// SubNew returns ct0 - ct1 modulo (X^N + 1, Q).
func (eval Evaluator) SubNew(ct0, ct1 *Ciphertext) *Ciphertext {
	return eval.AddNew(ct0, eval.NegNew(ct1))
}

// NegNew returns -ct0, the coefficient-wise negation of the ciphertext
// polynomials, which encrypts the negated message.
func (eval Evaluator) NegNew(ct0 *Ciphertext) *Ciphertext {
	rQ := eval.params.RingQ()
	return &Ciphertext{Value: [2]ring.Poly{
		rQ.NegNew(ct0.Value[0]),
		rQ.NegNew(ct0.Value[1]),
	}}
}

// MulRelinNew returns the relinearized product of ct0 and ct1.
//
// The tensor product of the two ciphertexts is computed exactly in the
// relinearization ring F_{P*Q} (each operand lifted by its centered
// representative), rescaled by T/Q back into F_Q, and the resulting
// degree-two term is folded into a standard (c0, c1) pair with the
// [RelinearizationKey]. The rescaled tensor is exact as long as the
// centered products stay below P*Q/2, which holds for N*Q <= P.
func (eval Evaluator) MulRelinNew(ct0, ct1 *Ciphertext) (ct *Ciphertext, err error) {

	if eval.rlk == nil {
		return nil, fmt.Errorf("cannot MulRelinNew: no relinearization key")
	}

	rQ := eval.params.RingQ()
	rR := eval.params.RingR()

	tq := 1 / eval.params.Delta()

	// Tensor product in the relinearization ring.
	a0 := rR.ScaleCenteredNew(ct0.Value[0], rQ.Field, 1)
	a1 := rR.ScaleCenteredNew(ct0.Value[1], rQ.Field, 1)
	b0 := rR.ScaleCenteredNew(ct1.Value[0], rQ.Field, 1)
	b1 := rR.ScaleCenteredNew(ct1.Value[1], rQ.Field, 1)

	d0 := rR.ReduceNew(rR.MulNew(a0, b0))
	d1 := rR.ReduceNew(rR.AddNew(rR.MulNew(a0, b1), rR.MulNew(a1, b0)))
	d2 := rR.ReduceNew(rR.MulNew(a1, b1))

	// Rescale by T/Q down into the ciphertext ring.
	f0 := rQ.ScaleCenteredNew(d0, rR.Field, tq)
	f1 := rQ.ScaleCenteredNew(d1, rR.Field, tq)
	f2 := rQ.ScaleCenteredNew(d2, rR.Field, tq)

	// Relinearize the degree-two term: rk0 + rk1*s = P*s^2 - e, so
	// (f2*rk0, f2*rk1) scaled by 1/P is a valid encryption of f2*s^2.
	f2R := rR.ScaleCenteredNew(f2, rQ.Field, 1)

	g0 := rQ.ScaleCenteredNew(rR.ReduceNew(rR.MulNew(f2R, eval.rlk.Value[0])), rR.Field, 1/float64(eval.params.P()))
	g1 := rQ.ScaleCenteredNew(rR.ReduceNew(rR.MulNew(f2R, eval.rlk.Value[1])), rR.Field, 1/float64(eval.params.P()))

	return &Ciphertext{Value: [2]ring.Poly{
		eval.resized(rQ.ReduceNew(rQ.AddNew(f0, g0))),
		eval.resized(rQ.ReduceNew(rQ.AddNew(f1, g1))),
	}}, nil
}

func (eval Evaluator) resized(p ring.Poly) ring.Poly {
	p.Resize(eval.params.N())
	return p
}
