// Package bignum implements arbitrary precision arithmetic helpers on top
// of math/big.
package bignum

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x))
	}

	return
}

// NewFloat allocates a new *big.Float with the given value and precision.
func NewFloat(x float64, prec uint) (y *big.Float) {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// DivRound sets the target i to round(a/b), with the rounding
// half away from zero.
func DivRound(a, b, i *big.Int) {
	_a := new(big.Int).Set(a)
	i.Quo(_a, b)
	r := new(big.Int).Rem(_a, b)
	r2 := new(big.Int).Mul(r, NewInt(2))
	if r2.CmpAbs(b) != -1.0 {
		if _a.Sign() == b.Sign() {
			i.Add(i, NewInt(1))
		} else {
			i.Sub(i, NewInt(1))
		}
	}
}

// Log2 returns log2(x) at the precision of x.
// It panics if x is not strictly positive.
func Log2(x *big.Float) (y *big.Float) {
	if x.Sign() < 1 {
		panic(fmt.Errorf("cannot Log2: x must be strictly positive but is %s", x.String()))
	}
	prec := x.Prec()
	y = bigfloat.Log(x)
	y.Quo(y, bigfloat.Log(NewFloat(2, prec)))
	return
}

// Stats returns the base 2 logarithm of the standard deviation and the
// mean of the input values, computed at the given precision.
func Stats(values []big.Int, prec uint) [2]float64 {

	N := len(values)

	mean := NewFloat(0, prec)
	tmp := NewFloat(0, prec)

	for i := 0; i < N; i++ {
		mean.Add(mean, tmp.SetInt(&values[i]))
	}

	mean.Quo(mean, NewFloat(float64(N), prec))

	std := NewFloat(0, prec)

	for i := 0; i < N; i++ {
		tmp.SetInt(&values[i])
		tmp.Sub(tmp, mean)
		tmp.Mul(tmp, tmp)
		std.Add(std, tmp)
	}

	std.Quo(std, NewFloat(float64(N), prec))
	std.Sqrt(std)

	meanF64, _ := mean.Float64()

	if std.Sign() == 0 {
		return [2]float64{math.Inf(-1), meanF64}
	}

	stdLog2, _ := Log2(std).Float64()

	return [2]float64{stdLog2, meanF64}
}
