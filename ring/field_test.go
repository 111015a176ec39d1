package ring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/ringlwe/utils/sampling"
)

var testModuli = []uint64{7, 13, 1024, 4096, 4096 << 20}

func TestField(t *testing.T) {

	for _, m := range testModuli {

		f, err := NewField(m)
		require.NoError(t, err)

		t.Run(testString("Reduction", m), func(t *testing.T) {
			for _, i := range []int64{-17, -1, 0, 1, 6, 7, 8, 1023, 4096, 1 << 40} {
				have := f.FromInt64(i)
				want := ((i % int64(m)) + int64(m)) % int64(m)
				require.Equal(t, uint64(want), have)
				require.Less(t, have, m)
			}
		})

		t.Run(testString("Algebra", m), func(t *testing.T) {

			source := sampling.NewSource([32]byte{0x01})

			for i := 0; i < 128; i++ {

				a := f.Reduce(source.Uint64())
				b := f.Reduce(source.Uint64())
				c := f.Reduce(source.Uint64())

				require.Equal(t, f.Add(a, b), f.Add(b, a))
				require.Equal(t, f.Mul(a, b), f.Mul(b, a))
				require.Equal(t, f.Add(f.Add(a, b), c), f.Add(a, f.Add(b, c)))
				require.Equal(t, f.Mul(f.Mul(a, b), c), f.Mul(a, f.Mul(b, c)))
				require.Equal(t, f.Mul(a, f.Add(b, c)), f.Add(f.Mul(a, b), f.Mul(a, c)))
				require.Equal(t, uint64(0), f.Add(a, f.Neg(a)))
				require.Equal(t, a, f.Mul(a, 1))
				require.Equal(t, uint64(0), f.Mul(a, 0))
				require.Equal(t, f.Sub(a, b), f.Add(a, f.Neg(b)))
			}
		})

		t.Run(testString("IsZero", m), func(t *testing.T) {
			require.True(t, f.IsZero(0))
			require.True(t, f.IsZero(m))
			require.False(t, f.IsZero(1))
		})

		t.Run(testString("Center", m), func(t *testing.T) {
			require.Equal(t, int64(0), f.Center(0))
			require.Equal(t, int64(1), f.Center(1))
			require.Equal(t, int64(-1), f.Center(m-1))
			c := f.Center(m / 2)
			require.LessOrEqual(t, c, int64(m)/2)
			require.Greater(t, c, -int64(m)/2)
		})
	}
}

func TestFieldInv(t *testing.T) {

	t.Run("Prime", func(t *testing.T) {
		f, err := NewField(13)
		require.NoError(t, err)
		for a := uint64(1); a < 13; a++ {
			require.Equal(t, uint64(1), f.Mul(a, f.Inv(a)))
		}
		require.Equal(t, uint64(0), f.Inv(0))
	})

	t.Run("PowerOfTwo", func(t *testing.T) {
		f, err := NewField(1024)
		require.NoError(t, err)
		require.Equal(t, uint64(1), f.Inv(1))
		require.Equal(t, uint64(0), f.Inv(2)) // even elements are not invertible mod 2^k
		require.Equal(t, uint64(1), f.Mul(3, f.Inv(3)))
	})
}

func TestNewFieldErrors(t *testing.T) {
	_, err := NewField(0)
	require.Error(t, err)
	_, err = NewField(1)
	require.Error(t, err)
	_, err = NewField(1 << 63)
	require.Error(t, err)
}
