package rlwe

import (
	"io"

	"github.com/Pro7ech/ringlwe/ring"
	"github.com/Pro7ech/ringlwe/utils/buffer"
)

// Ciphertext is a structure that stores an encryption (c0, c1) of a
// message over the ciphertext ring, satisfying
// c0 + c1*s = Delta*m + e mod (X^N + 1, Q) for the secret s.
type Ciphertext struct {
	Value [2]ring.Poly
}

// NewCiphertext allocates a new zero [Ciphertext].
func NewCiphertext(params ParameterProvider) *Ciphertext {
	rQ := params.GetRLWEParameters().RingQ()
	return &Ciphertext{Value: [2]ring.Poly{rQ.NewPoly(), rQ.NewPoly()}}
}

// Clone returns a deep copy of the receiver.
func (ct Ciphertext) Clone() *Ciphertext {
	return &Ciphertext{Value: [2]ring.Poly{ct.Value[0].Clone(), ct.Value[1].Clone()}}
}

// Equal returns true if the receiver and other hold the same
// polynomials.
func (ct Ciphertext) Equal(other *Ciphertext) bool {
	return ct.Value[0].Equal(other.Value[0]) && ct.Value[1].Equal(other.Value[1])
}

// BinarySize returns the serialized size of the object in bytes.
func (ct Ciphertext) BinarySize() int {
	return ct.Value[0].BinarySize() + ct.Value[1].BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the
// io.WriterTo interface.
func (ct Ciphertext) WriteTo(w io.Writer) (n int64, err error) {
	return writePolyPair(w, ct.Value)
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (ct *Ciphertext) ReadFrom(r io.Reader) (n int64, err error) {
	return readPolyPair(r, &ct.Value)
}

// MarshalBinary encodes the object into a byte slice.
func (ct Ciphertext) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(ct.BinarySize())
	_, err = ct.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary on
// the object.
func (ct *Ciphertext) UnmarshalBinary(data []byte) (err error) {
	_, err = ct.ReadFrom(buffer.NewBuffer(data))
	return
}
