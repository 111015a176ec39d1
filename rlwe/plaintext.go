package rlwe

import (
	"io"

	"github.com/Pro7ech/ringlwe/ring"
)

// Plaintext is a structure that stores a message polynomial with
// coefficients in the plaintext field F_T.
type Plaintext struct {
	Value ring.Poly
}

// NewPlaintext allocates a new zero [Plaintext] of N coefficients.
func NewPlaintext(params ParameterProvider) *Plaintext {
	return &Plaintext{Value: params.GetRLWEParameters().RingT().NewPoly()}
}

// N returns the number of coefficients of the plaintext.
func (pt Plaintext) N() int {
	return pt.Value.N()
}

// Clone returns a deep copy of the receiver.
func (pt Plaintext) Clone() *Plaintext {
	return &Plaintext{Value: pt.Value.Clone()}
}

// Equal returns true if the receiver and other hold the same message.
func (pt Plaintext) Equal(other *Plaintext) bool {
	return pt.Value.Equal(other.Value)
}

// BinarySize returns the serialized size of the object in bytes.
func (pt Plaintext) BinarySize() int {
	return pt.Value.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the
// io.WriterTo interface.
func (pt Plaintext) WriteTo(w io.Writer) (n int64, err error) {
	return pt.Value.WriteTo(w)
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (pt *Plaintext) ReadFrom(r io.Reader) (n int64, err error) {
	return pt.Value.ReadFrom(r)
}

// MarshalBinary encodes the object into a byte slice.
func (pt Plaintext) MarshalBinary() ([]byte, error) {
	return pt.Value.MarshalBinary()
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary on
// the object.
func (pt *Plaintext) UnmarshalBinary(data []byte) error {
	return pt.Value.UnmarshalBinary(data)
}
