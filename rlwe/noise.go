package rlwe

import (
	"math/big"

	"github.com/Pro7ech/ringlwe/ring"
	"github.com/Pro7ech/ringlwe/utils/bignum"
)

// NoiseCiphertext returns the log2 of the standard deviation of the
// error of the input ciphertext with respect to the given plaintext and
// secret key. A nil plaintext measures the noise against the zero
// message.
func NoiseCiphertext(ct *Ciphertext, pt *Plaintext, sk *SecretKey, params Parameters) (noise float64) {

	rT := params.RingT()
	rQ := params.RingQ()

	phase := rQ.ReduceNew(rQ.AddNew(ct.Value[0], rQ.MulNew(ct.Value[1], sk.Value)))

	if pt != nil {
		mhat := rQ.ScaleNew(pt.Value, rT.Field, params.Delta())
		phase = rQ.SubNew(phase, mhat)
	}

	phase.Resize(params.N())

	return noiseStats(phase, rQ)
}

// NoisePublicKey returns the log2 of the standard deviation of the error
// of the input public key with respect to the given secret key.
func NoisePublicKey(pk *PublicKey, sk *SecretKey, params Parameters) (noise float64) {
	return NoiseCiphertext(&Ciphertext{Value: pk.Value}, nil, sk, params)
}

// NoiseRelinearizationKey returns the log2 of the standard deviation of
// the error of the input relinearization key with respect to the given
// secret key.
func NoiseRelinearizationKey(rlk *RelinearizationKey, sk *SecretKey, params Parameters) (noise float64) {

	rQ := params.RingQ()
	rR := params.RingR()

	skR := rR.ScaleCenteredNew(sk.Value, rQ.Field, 1)

	// rk0 + rk1*s - P*(s^2 mod X^N + 1) = -e
	phase := rR.ReduceNew(rR.AddNew(rlk.Value[0], rR.MulNew(rlk.Value[1], skR)))
	sk2 := rR.MulScalarNew(rR.ReduceNew(rR.MulNew(skR, skR)), params.P())
	phase = rR.ReduceNew(rR.SubNew(phase, sk2))
	phase.Resize(params.N())

	return noiseStats(phase, rR)
}

func noiseStats(phase ring.Poly, r ring.Ring) float64 {
	values := make([]big.Int, len(phase))
	for i := range phase {
		values[i].SetInt64(r.Field.Center(phase[i]))
	}
	return bignum.Stats(values, 128)[0]
}
