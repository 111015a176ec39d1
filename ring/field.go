package ring

import (
	"fmt"
	"math/bits"
)

// MaxModulusBits is the largest supported bit-length for a field modulus.
// The bound leaves enough headroom for the Barrett reduction of a full
// 128-bit product.
const MaxModulusBits = 62

// Field stores the modulus of a coefficient field F_m along with the
// constant required for fast modular reduction. Elements of the field are
// plain uint64 holding their reduced representative in [0, Modulus).
type Field struct {
	Modulus      uint64
	BRedConstant [2]uint64
}

// NewField instantiates a new [Field] for the given modulus.
func NewField(modulus uint64) (f Field, err error) {
	if modulus < 2 {
		return Field{}, fmt.Errorf("invalid modulus: must be at least 2 but is %d", modulus)
	}
	if bits.Len64(modulus) > MaxModulusBits {
		return Field{}, fmt.Errorf("invalid modulus: bit-length must be at most %d but is %d", MaxModulusBits, bits.Len64(modulus))
	}
	return Field{Modulus: modulus, BRedConstant: GetBRedConstant(modulus)}, nil
}

// Add returns a + b mod m. Inputs must be reduced.
func (f Field) Add(a, b uint64) uint64 {
	return CRed(a+b, f.Modulus)
}

// Sub returns a - b mod m. Inputs must be reduced.
func (f Field) Sub(a, b uint64) uint64 {
	return CRed(a+f.Modulus-b, f.Modulus)
}

// Neg returns -a mod m. The input must be reduced.
func (f Field) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return f.Modulus - a
}

// Mul returns a * b mod m, computed over the 128-bit product.
// Inputs must be reduced.
func (f Field) Mul(a, b uint64) uint64 {
	return BRed(a, b, f.Modulus, f.BRedConstant)
}

// Reduce returns a mod m for an arbitrary uint64 input.
func (f Field) Reduce(a uint64) uint64 {
	return BRedAdd(a, f.Modulus, f.BRedConstant)
}

// IsZero returns true if a reduces to zero.
func (f Field) IsZero(a uint64) bool {
	return f.Reduce(a) == 0
}

// Inv returns the unique x in [0, m) with a*x = 1 mod m, or 0 if a is
// zero or not invertible. The inverse is found by scanning the field,
// which is only viable for the small leading coefficients polynomial
// division feeds it (the cyclotomic modulus is monic, so the scan stops
// at 1).
func (f Field) Inv(a uint64) uint64 {
	a = f.Reduce(a)
	if a == 0 {
		return 0
	}
	for x := uint64(1); x < f.Modulus; x++ {
		if f.Mul(a, x) == 1 {
			return x
		}
	}
	return 0
}

// FromInt64 maps a signed integer to its reduced representative in [0, m).
func (f Field) FromInt64(i int64) uint64 {
	r := i % int64(f.Modulus)
	if r < 0 {
		r += int64(f.Modulus)
	}
	return uint64(r)
}

// Center returns the centered representative of a in (-m/2, m/2].
// The input must be reduced.
func (f Field) Center(a uint64) int64 {
	if a<<1 > f.Modulus {
		return int64(a) - int64(f.Modulus)
	}
	return int64(a)
}

// Float64 returns the reduced representative of a as a float64.
func (f Field) Float64(a uint64) float64 {
	return float64(f.Reduce(a))
}

// Equal returns true if the receiver and other denote the same field.
func (f Field) Equal(other Field) bool {
	return f.Modulus == other.Modulus
}
