package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {

	seed := [SeedLength]byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07,
		0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92,
		0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("Deterministic", func(t *testing.T) {
		a := NewSource(seed)
		b := NewSource(seed)

		bufA := make([]byte, 512)
		bufB := make([]byte, 512)

		a.Read(bufA)
		b.Read(bufB)

		require.Equal(t, bufA, bufB)
		require.Equal(t, a.Uint64(), b.Uint64())
	})

	t.Run("Reset", func(t *testing.T) {
		a := NewSource(seed)

		want := make([]byte, 512)
		a.Read(want)

		for i := 0; i < 128; i++ {
			a.Read(make([]byte, 512))
		}

		a.Reset()

		have := make([]byte, 512)
		a.Read(have)

		require.Equal(t, want, have)
	})

	t.Run("Fork", func(t *testing.T) {
		a := NewSource(seed)
		b := NewSource(seed)

		require.Equal(t, a.Fork().Uint64(), b.Fork().Uint64())
		require.NotEqual(t, a.Uint64(), a.Fork().Uint64())
	})

	t.Run("Seed", func(t *testing.T) {
		require.Equal(t, seed, NewSource(seed).Seed())
		require.NotEqual(t, NewSeed(), NewSeed())
	})
}
