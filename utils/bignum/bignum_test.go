package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivRound(t *testing.T) {

	tests := []struct {
		a, b, want int64
	}{
		{7, 2, 4},   // 3.5 rounds away from zero
		{-7, 2, -4}, // -3.5 rounds away from zero
		{6, 3, 2},
		{5, 4, 1},
		{-5, 4, -1},
		{0, 5, 0},
	}

	i := new(big.Int)
	for _, tc := range tests {
		DivRound(NewInt(tc.a), NewInt(tc.b), i)
		require.Equal(t, tc.want, i.Int64(), "DivRound(%d, %d)", tc.a, tc.b)
	}
}

func TestLog2(t *testing.T) {
	have, _ := Log2(NewFloat(1024, 64)).Float64()
	require.InDelta(t, 10.0, have, 1e-12)
	require.Panics(t, func() { Log2(NewFloat(0, 64)) })
}

func TestStats(t *testing.T) {

	values := make([]big.Int, 4)
	for i, v := range []int64{-2, -2, 2, 2} {
		values[i].SetInt64(v)
	}

	stats := Stats(values, 128)
	require.InDelta(t, 1.0, stats[0], 1e-12) // std = 2
	require.InDelta(t, 0.0, stats[1], 1e-12)
}
