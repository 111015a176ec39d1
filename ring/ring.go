// Package ring implements modular arithmetic for dense polynomials over
// single-modulus coefficient fields, including addition, schoolbook
// multiplication, Euclidean division, reduction modulo the cyclotomic
// polynomial X^N + 1, cross-field rounded rescaling, and uniform, ternary
// and discrete Gaussian sampling.
package ring

import (
	"fmt"
)

// Ring stores the degree N of the cyclotomic polynomial X^N + 1 and the
// coefficient [Field], and operates on polynomials of the quotient ring
// F_m[X]/(X^N + 1). Polynomial operands are not required to be reduced
// modulo the cyclotomic polynomial: operations that do not reduce return
// results whose length is derived from the operand lengths, and [Ring.ReduceNew]
// brings a polynomial back to at most N coefficients.
//
// All operations allocate their result and leave their operands
// untouched.
type Ring struct {
	// Degree of the cyclotomic polynomial X^N + 1.
	N int
	Field
}

// NewRing creates a new [Ring] with degree N and the given coefficient
// modulus. N must be a positive power of two.
func NewRing(N int, modulus uint64) (r Ring, err error) {

	if N < 1 || N&(N-1) != 0 {
		return Ring{}, fmt.Errorf("invalid ring degree: must be a positive power of two but is %d", N)
	}

	var f Field
	if f, err = NewField(modulus); err != nil {
		return Ring{}, err
	}

	return Ring{N: N, Field: f}, nil
}

// NewPoly creates a new polynomial with N coefficients set to zero.
func (r Ring) NewPoly() Poly {
	return NewPoly(r.N)
}

// Cyclotomic returns the cyclotomic polynomial X^N + 1.
func (r Ring) Cyclotomic() Poly {
	p := NewPoly(r.N + 1)
	p[0] = 1
	p[r.N] = 1
	return p
}

// AddNew returns p1 + p2, the shorter operand implicitly zero-padded.
// The result has max(len(p1), len(p2)) coefficients.
func (r Ring) AddNew(p1, p2 Poly) Poly {
	p3 := NewPoly(max(len(p1), len(p2)))
	for i := range p3 {
		var c1, c2 uint64
		if i < len(p1) {
			c1 = p1[i]
		}
		if i < len(p2) {
			c2 = p2[i]
		}
		p3[i] = r.Field.Add(c1, c2)
	}
	return p3
}

// SubNew returns p1 - p2, the shorter operand implicitly zero-padded.
func (r Ring) SubNew(p1, p2 Poly) Poly {
	return r.AddNew(p1, r.NegNew(p2))
}

// NegNew returns -p1, coefficient-wise.
func (r Ring) NegNew(p1 Poly) Poly {
	p2 := NewPoly(len(p1))
	for i := range p1 {
		p2[i] = r.Field.Neg(p1[i])
	}
	return p2
}

// MulNew returns the product p1 * p2 by schoolbook convolution, without
// reduction modulo the cyclotomic polynomial. The result has
// len(p1) + len(p2) - 1 coefficients. If either operand is empty, the
// result is empty.
func (r Ring) MulNew(p1, p2 Poly) Poly {

	if len(p1) == 0 || len(p2) == 0 {
		return Poly{}
	}

	p3 := NewPoly(len(p1) + len(p2) - 1)
	for i := range p1 {
		if p1[i] == 0 {
			continue
		}
		for j := range p2 {
			p3[i+j] = r.Field.Add(p3[i+j], r.Field.Mul(p1[i], p2[j]))
		}
	}
	return p3
}

// MulScalarNew returns scalar * p1, coefficient-wise.
func (r Ring) MulScalarNew(p1 Poly, scalar uint64) Poly {
	scalar = r.Field.Reduce(scalar)
	p2 := NewPoly(len(p1))
	for i := range p1 {
		p2[i] = r.Field.Mul(p1[i], scalar)
	}
	return p2
}

// PowNew returns p multiplied k times by itself, without reduction modulo
// the cyclotomic polynomial. PowNew(p, 0) returns the constant
// polynomial 1.
func (r Ring) PowNew(p Poly, k uint) Poly {
	out := Poly{1}
	for i := uint(0); i < k; i++ {
		out = r.MulNew(out, p)
	}
	return out
}

// DivRem returns the quotient and remainder of the Euclidean division of
// p1 by p2, such that p1 = quo * p2 + rem with deg(rem) < deg(p2).
//
// If p1 is zero, the quotient is the constant zero polynomial and the
// remainder is empty. If p2 is zero, an error is returned. The divisor's
// leading coefficient must be invertible; division inside the library is
// only invoked with the monic cyclotomic polynomial, for which it is 1.
func (r Ring) DivRem(p1, p2 Poly) (quo, rem Poly, err error) {

	if p1.IsZero() {
		return Poly{0}, Poly{}, nil
	}

	if p2.IsZero() {
		return nil, nil, fmt.Errorf("cannot DivRem: division by the zero polynomial")
	}

	if p1.Degree() < p2.Degree() {
		return Poly{0}, p1.Clone(), nil
	}

	lead := p2[len(p2)-1]
	leadInv := r.Field.Inv(lead)
	if r.Field.Mul(lead, leadInv) != 1 {
		return nil, nil, fmt.Errorf("cannot DivRem: leading coefficient %d of the divisor is not invertible", lead)
	}

	quo = NewPoly(p1.Degree() - p2.Degree() + 1)
	rem = p1.Clone()

	for !rem.IsZero() && rem.Degree() >= p2.Degree() {

		c := r.Field.Mul(rem[len(rem)-1], leadInv)
		d := rem.Degree() - p2.Degree()
		quo[d] = c

		for i := range p2 {
			rem[d+i] = r.Field.Sub(rem[d+i], r.Field.Mul(c, p2[i]))
		}

		for len(rem) > 0 && rem[len(rem)-1] == 0 {
			rem = rem[:len(rem)-1]
		}
	}

	return
}

// ReduceNew returns p modulo the cyclotomic polynomial X^N + 1. The
// result has at most N coefficients.
func (r Ring) ReduceNew(p Poly) Poly {
	_, rem, err := r.DivRem(p, r.Cyclotomic())
	if err != nil {
		// Sanity check, the cyclotomic polynomial is monic and non-zero.
		panic(fmt.Errorf("ReduceNew: %w", err))
	}
	return rem
}

// Equal returns true if the receiver and other denote the same ring.
func (r Ring) Equal(other Ring) bool {
	return r.N == other.N && r.Field.Equal(other.Field)
}
