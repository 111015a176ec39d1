// Package sampling implements a deterministic, cryptographically secure
// source of random bytes based on the blake2b XOF.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// SeedLength is the byte length of a [Source] seed.
const SeedLength = 32

// NewSeed returns a new random seed sampled from crypto/rand.
func NewSeed() (seed [SeedLength]byte) {
	if _, err := rand.Read(seed[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("crypto/rand: %w", err))
	}
	return
}

// Source is a deterministic random byte generator seeded with a 256-bit
// key. Two sources instantiated with the same seed produce the same
// stream of bytes. Source implements the math/rand/v2 [rand.Source]
// interface as well as io.Reader, and is not safe for concurrent use.
type Source struct {
	seed [SeedLength]byte
	xof  blake2b.XOF
}

// NewSource instantiates a new [Source] from a seed.
func NewSource(seed [SeedLength]byte) *Source {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed[:])
	if err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("blake2b.NewXOF: %w", err))
	}
	return &Source{seed: seed, xof: xof}
}

// Seed returns the seed the receiver was instantiated with.
func (s *Source) Seed() [SeedLength]byte {
	return s.seed
}

// Read fills p with random bytes. It never fails.
func (s *Source) Read(p []byte) (n int, err error) {
	if n, err = s.xof.Read(p); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("blake2b XOF: %w", err))
	}
	return
}

// Uint64 returns a uniformly random uint64.
func (s *Source) Uint64() uint64 {
	var buf [8]byte
	s.Read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// Reset resets the receiver to the state it was in right after
// instantiation, replaying the same byte stream.
func (s *Source) Reset() {
	s.xof.Reset()
}

// Fork returns a new independent [Source] whose seed is derived from
// the receiver's stream.
func (s *Source) Fork() *Source {
	var seed [SeedLength]byte
	s.Read(seed[:])
	return NewSource(seed)
}
