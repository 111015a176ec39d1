package ring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/ringlwe/utils/sampling"
)

func testString(op string, m uint64) string {
	return fmt.Sprintf("%s/modulus=%d", op, m)
}

func TestNewRingErrors(t *testing.T) {
	_, err := NewRing(0, 13)
	require.Error(t, err)
	_, err = NewRing(-4, 13)
	require.Error(t, err)
	_, err = NewRing(3, 13)
	require.Error(t, err)
	_, err = NewRing(16, 0)
	require.Error(t, err)
	_, err = NewRing(16, 13)
	require.NoError(t, err)
}

func TestRingAlgebra(t *testing.T) {

	for _, m := range []uint64{13, 4096} {

		r, err := NewRing(16, m)
		require.NoError(t, err)

		sampler := NewUniformSampler(sampling.NewSource([32]byte{'a', 'b', 'c'}), r)

		t.Run(testString("Distributivity", m), func(t *testing.T) {
			for i := 0; i < 16; i++ {
				a, b, c := sampler.ReadNew(), sampler.ReadNew(), sampler.ReadNew()
				require.True(t, r.MulNew(r.AddNew(a, b), c).Equal(r.AddNew(r.MulNew(a, c), r.MulNew(b, c))))
			}
		})

		t.Run(testString("Commutativity", m), func(t *testing.T) {
			a, b := sampler.ReadNew(), sampler.ReadNew()
			require.True(t, r.MulNew(a, b).Equal(r.MulNew(b, a)))
			require.True(t, r.AddNew(a, b).Equal(r.AddNew(b, a)))
		})

		t.Run(testString("AddZero", m), func(t *testing.T) {
			a := sampler.ReadNew()
			require.True(t, r.AddNew(a, r.NewPoly()).Equal(a))
			require.True(t, r.AddNew(a, Poly{}).Equal(a))
		})

		t.Run(testString("MulLengths", m), func(t *testing.T) {
			a, b := sampler.ReadNew(), sampler.ReadNew()
			require.Equal(t, a.N()+b.N()-1, r.MulNew(a, b).N())
			require.Equal(t, 0, r.MulNew(a, Poly{}).N())
		})

		t.Run(testString("Neg", m), func(t *testing.T) {
			a := sampler.ReadNew()
			require.True(t, r.AddNew(a, r.NegNew(a)).IsZero())
		})
	}
}

func TestDivRem(t *testing.T) {

	r, err := NewRing(16, 13)
	require.NoError(t, err)

	sampler := NewUniformSampler(sampling.NewSource([32]byte{0x02}), r)

	t.Run("Identity", func(t *testing.T) {
		for i := 0; i < 32; i++ {
			a := sampler.ReadNew()

			b := sampler.ReadNew()
			b = b[:4]
			b[3] = 1 // monic divisor

			quo, rem, err := r.DivRem(a, b)
			require.NoError(t, err)
			require.Less(t, rem.Degree(), b.Degree())
			require.True(t, r.AddNew(r.MulNew(quo, b), rem).Equal(a))
		}
	})

	t.Run("ZeroDividend", func(t *testing.T) {
		quo, rem, err := r.DivRem(Poly{}, r.Cyclotomic())
		require.NoError(t, err)
		require.True(t, quo.Equal(Poly{0}))
		require.True(t, rem.Equal(Poly{}))
	})

	t.Run("ZeroDivisor", func(t *testing.T) {
		_, _, err := r.DivRem(sampler.ReadNew(), Poly{})
		require.Error(t, err)
		_, _, err = r.DivRem(sampler.ReadNew(), Poly{0, 0})
		require.Error(t, err)
	})

	t.Run("SmallDegreeDividend", func(t *testing.T) {
		a := Poly{4, 1, 11, 10}
		quo, rem, err := r.DivRem(a, r.Cyclotomic())
		require.NoError(t, err)
		require.True(t, quo.Equal(Poly{0}))
		require.True(t, rem.Equal(a))
		require.False(t, &rem[0] == &a[0]) // remainder is a fresh copy
	})
}

func TestReduce(t *testing.T) {

	for _, N := range []int{4, 16} {

		r, err := NewRing(N, 4096)
		require.NoError(t, err)

		sampler := NewUniformSampler(sampling.NewSource([32]byte{0x03}), r)

		t.Run(fmt.Sprintf("Idempotence/N=%d", N), func(t *testing.T) {
			a := r.MulNew(sampler.ReadNew(), sampler.ReadNew())
			once := r.ReduceNew(a)
			require.LessOrEqual(t, once.N(), N)
			require.True(t, r.ReduceNew(once).Equal(once))
		})

		t.Run(fmt.Sprintf("Negacyclic/N=%d", N), func(t *testing.T) {
			// X^N reduces to -1 mod X^N + 1.
			xN := NewPoly(N + 1)
			xN[N] = 1
			require.True(t, r.ReduceNew(xN).Equal(Poly{r.Modulus - 1}))
		})
	}
}

func TestCyclotomic(t *testing.T) {
	r, err := NewRing(8, 13)
	require.NoError(t, err)
	phi := r.Cyclotomic()
	require.Equal(t, 9, phi.N())
	require.Equal(t, uint64(1), phi[0])
	require.Equal(t, uint64(1), phi[8])
	for i := 1; i < 8; i++ {
		require.Equal(t, uint64(0), phi[i])
	}
}

func TestPow(t *testing.T) {
	r, err := NewRing(8, 13)
	require.NoError(t, err)

	// (X + 1)^2 = X^2 + 2X + 1, no reduction.
	require.True(t, r.PowNew(Poly{1, 1}, 2).Equal(Poly{1, 2, 1}))
	require.True(t, r.PowNew(Poly{1, 1}, 0).Equal(Poly{1}))
}

func TestScale(t *testing.T) {

	rT, err := NewRing(16, 7)
	require.NoError(t, err)
	rQ, err := NewRing(16, 4096)
	require.NoError(t, err)

	t.Run("EncodeDecode", func(t *testing.T) {
		m := Poly{3, 0, 1, 6, 2, 5}
		delta := float64(rQ.Modulus) / float64(rT.Modulus)

		mhat := rQ.ScaleNew(m, rT.Field, delta)
		have := rT.ScaleCenteredNew(mhat, rQ.Field, 1/delta)

		require.True(t, have.Equal(m))
	})

	t.Run("Centered", func(t *testing.T) {
		// 4095 denotes -1 mod 4096; scaled down by 7/4096 it must round
		// to 0, not to 7.
		have := rT.ScaleCenteredNew(Poly{4095}, rQ.Field, 7.0/4096.0)
		require.True(t, have.Equal(Poly{0}))

		// The raw representative variant rounds 4095*7/4096 to 7 = 0 mod 7.
		have = rT.ScaleNew(Poly{4095}, rQ.Field, 7.0/4096.0)
		require.True(t, have.Equal(Poly{0}))
	})

	t.Run("Lift", func(t *testing.T) {
		rR, err := NewRing(16, 4096<<20)
		require.NoError(t, err)
		a := Poly{0, 1, 4095}
		require.True(t, rR.ScaleNew(a, rQ.Field, 1).Equal(a))
	})
}

func TestPoly(t *testing.T) {

	a := Poly{1, 2, 3}

	b := a.Clone()
	require.True(t, a.Equal(b))
	b[0] = 9
	require.False(t, a.Equal(b))

	var c Poly
	c.Copy(a)
	require.True(t, a.Equal(c))
	c.Copy(c) // aliasing copy is a no-op
	require.True(t, a.Equal(c))

	c.Resize(5)
	require.True(t, c.Equal(Poly{1, 2, 3, 0, 0}))
	c.Resize(2)
	require.True(t, c.Equal(Poly{1, 2}))

	c.Zero()
	require.True(t, c.IsZero())
	require.True(t, Poly{}.IsZero())
	require.False(t, a.IsZero())

	require.Equal(t, 2, a.Degree())
	require.Equal(t, 3, a.N())
}

func TestPolySerialization(t *testing.T) {

	r, err := NewRing(16, 4096)
	require.NoError(t, err)

	sampler := NewUniformSampler(sampling.NewSource([32]byte{0x04}), r)

	want := sampler.ReadNew()

	data, err := want.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, want.BinarySize(), len(data))

	var have Poly
	require.NoError(t, have.UnmarshalBinary(data))
	require.True(t, want.Equal(have))
}
