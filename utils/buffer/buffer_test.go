package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("Uint64", func(t *testing.T) {
		b := NewBufferSize(16)

		_, err := WriteUint64(b, 0xdeadbeef01234567)
		require.NoError(t, err)
		_, err = WriteAsUint64(b, -1)
		require.NoError(t, err)

		var have uint64
		_, err = ReadUint64(b, &have)
		require.NoError(t, err)
		require.Equal(t, uint64(0xdeadbeef01234567), have)

		var signed int64
		_, err = ReadAsUint64(b, &signed)
		require.NoError(t, err)
		require.Equal(t, int64(-1), signed)
	})

	t.Run("Uint8", func(t *testing.T) {
		b := NewBufferSize(2)

		_, err := WriteAsUint8(b, 0x42)
		require.NoError(t, err)

		var have int
		_, err = ReadAsUint8(b, &have)
		require.NoError(t, err)
		require.Equal(t, 0x42, have)
	})

	t.Run("Uint64Slice", func(t *testing.T) {
		want := []uint64{0, 1, 1 << 62, 0xffffffffffffffff}

		b := NewBufferSize(8 * len(want))

		n, err := WriteUint64Slice(b, want)
		require.NoError(t, err)
		require.Equal(t, int64(8*len(want)), n)

		have := make([]uint64, len(want))
		_, err = ReadUint64Slice(b, have)
		require.NoError(t, err)
		require.Equal(t, want, have)
	})

	t.Run("EOF", func(t *testing.T) {
		b := NewBuffer([]byte{0x01})
		var have uint64
		_, err := ReadUint64(b, &have)
		require.Error(t, err)
	})
}
