package ring

import (
	"math"
)

// ScaleNew maps p from the field src into the field of the receiver,
// multiplying each coefficient by factor and rounding to the nearest
// integer, ties away from zero. Coefficients are read as their reduced
// representative in [0, src.Modulus).
//
// With factor = Q/T it embeds a plaintext into the ciphertext field, and
// with factor = 1 it lifts a polynomial into a larger field unchanged.
func (r Ring) ScaleNew(p Poly, src Field, factor float64) Poly {
	out := NewPoly(len(p))
	for i := range p {
		out[i] = r.fromRounded(src.Float64(p[i]) * factor)
	}
	return out
}

// ScaleCenteredNew maps p from the field src into the field of the
// receiver, reading each coefficient as its centered representative in
// (-src.Modulus/2, src.Modulus/2] before multiplying by factor and
// rounding, ties away from zero. Negative rounded values are folded back
// into [0, Modulus).
//
// This is the variant used when scaling down (factor < 1): a coefficient
// close to the source modulus denotes a small negative value, and scaling
// its raw representative instead would shift the result by factor times
// the source modulus.
func (r Ring) ScaleCenteredNew(p Poly, src Field, factor float64) Poly {
	out := NewPoly(len(p))
	for i := range p {
		out[i] = r.fromRounded(float64(src.Center(src.Reduce(p[i]))) * factor)
	}
	return out
}

// fromRounded rounds to the nearest integer, ties away from zero, and
// reduces into the receiver's field.
func (r Ring) fromRounded(v float64) uint64 {
	return r.Field.FromInt64(int64(math.Round(v)))
}
