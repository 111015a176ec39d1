package ring

import (
	"math/big"
	"math/bits"
)

// GetBRedConstant computes the constant for the Barrett reduction.
// Returns ((2^128)/q)/(2^64) and (2^128)/q mod 2^64.
func GetBRedConstant(q uint64) [2]uint64 {
	bigR := new(big.Int).Lsh(new(big.Int).SetUint64(1), 128)
	bigR.Quo(bigR, new(big.Int).SetUint64(q))

	mhi := new(big.Int).Rsh(bigR, 64).Uint64()
	mlo := bigR.Uint64()

	return [2]uint64{mhi, mlo}
}

// CRed reduces a mod q by conditional subtraction.
// The input must be in the range [0, 2q-1].
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}

// BRedAdd computes a mod q.
func BRedAdd(a, q uint64, bredconstant [2]uint64) (r uint64) {
	s0, _ := bits.Mul64(a, bredconstant[0])
	r = a - s0*q
	if r >= q {
		r -= q
	}
	return
}

// BRed computes a*b mod q.
func BRed(a, b, q uint64, bredconstant [2]uint64) (r uint64) {

	var lhi, mhi, mlo, s0, s1, carry uint64

	ahi, alo := bits.Mul64(a, b)

	// (alo*ulo)>>64
	lhi, _ = bits.Mul64(alo, bredconstant[1])

	// ((ahi*ulo + alo*uhi) + (alo*ulo))>>64
	mhi, mlo = bits.Mul64(alo, bredconstant[0])

	s0, carry = bits.Add64(mlo, lhi, 0)

	s1 = mhi + carry

	mhi, mlo = bits.Mul64(ahi, bredconstant[1])

	_, carry = bits.Add64(mlo, s0, 0)

	lhi = mhi + carry

	// (ahi*uhi) + (((ahi*ulo + alo*uhi) + (alo*ulo))>>64)
	s0 = ahi*bredconstant[0] + s1 + lhi

	r = alo - s0*q

	if r >= q {
		r -= q
	}

	return
}
