package ring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/ringlwe/utils/sampling"
)

func TestSamplers(t *testing.T) {

	for _, m := range []uint64{7, 4096, 4096 << 20} {

		r, err := NewRing(64, m)
		require.NoError(t, err)

		seed := [32]byte{0x05}

		t.Run(testString("Uniform", m), func(t *testing.T) {
			sampler, err := NewSampler(sampling.NewSource(seed), r, &Uniform{})
			require.NoError(t, err)

			pol := sampler.ReadNew()
			require.Equal(t, r.N, pol.N())
			for _, c := range pol {
				require.Less(t, c, m)
			}
		})

		t.Run(testString("Ternary", m), func(t *testing.T) {
			sampler, err := NewSampler(sampling.NewSource(seed), r, &Ternary{P: 2.0 / 3.0})
			require.NoError(t, err)

			pol := sampler.ReadNew()
			require.Equal(t, r.N, pol.N())
			for _, c := range pol {
				require.Contains(t, []uint64{0, 1, m - 1}, c)
			}
		})

		t.Run(testString("TernarySparse", m), func(t *testing.T) {
			sampler, err := NewSampler(sampling.NewSource(seed), r, &Ternary{H: 24})
			require.NoError(t, err)

			pol := sampler.ReadNew()

			var hw int
			for _, c := range pol {
				if c != 0 {
					require.Contains(t, []uint64{1, m - 1}, c)
					hw++
				}
			}
			require.Equal(t, 24, hw)
		})

		t.Run(testString("Gaussian", m), func(t *testing.T) {
			sampler, err := NewSampler(sampling.NewSource(seed), r, &DiscreteGaussian{Sigma: 3.2, Bound: 19.2})
			require.NoError(t, err)

			pol := sampler.ReadNew()
			require.Equal(t, r.N, pol.N())
			for _, c := range pol {
				require.Less(t, c, m)
				require.LessOrEqual(t, r.Field.Center(c), int64(19))
				require.GreaterOrEqual(t, r.Field.Center(c), int64(-19))
			}
		})
	}
}

func TestSamplerDeterminism(t *testing.T) {

	r, err := NewRing(64, 4096)
	require.NoError(t, err)

	seed := [32]byte{0x06}

	for _, X := range []DistributionParameters{
		&Uniform{},
		&Ternary{P: 2.0 / 3.0},
		&DiscreteGaussian{Sigma: 3.2, Bound: 19.2},
	} {
		a, err := NewSampler(sampling.NewSource(seed), r, X)
		require.NoError(t, err)
		b, err := NewSampler(sampling.NewSource(seed), r, X)
		require.NoError(t, err)

		require.True(t, a.ReadNew().Equal(b.ReadNew()))

		c := a.WithSource(sampling.NewSource(seed))
		d := b.WithSource(sampling.NewSource(seed))
		require.True(t, c.ReadNew().Equal(d.ReadNew()))
	}
}

func TestSamplerErrors(t *testing.T) {

	r, err := NewRing(16, 4096)
	require.NoError(t, err)

	source := sampling.NewSource([32]byte{0x07})

	_, err = NewSampler(source, r, &Ternary{})
	require.Error(t, err)
	_, err = NewSampler(source, r, &Ternary{P: 0.5, H: 8})
	require.Error(t, err)
	_, err = NewSampler(source, r, &Ternary{H: 17})
	require.Error(t, err)
	_, err = NewSampler(source, r, &DiscreteGaussian{Sigma: 3.2})
	require.Error(t, err)
	_, err = NewSampler(source, r, &DiscreteGaussian{Bound: 19.2})
	require.Error(t, err)
	_, err = NewSampler(source, r, nil)
	require.Error(t, err)
}
