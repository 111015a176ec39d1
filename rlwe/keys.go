package rlwe

import (
	"bufio"
	"io"

	"github.com/Pro7ech/ringlwe/ring"
	"github.com/Pro7ech/ringlwe/utils/buffer"
)

// SecretKey is a structure that stores a ternary secret key over the
// ciphertext ring.
type SecretKey struct {
	Value ring.Poly
}

// NewSecretKey allocates a new zero [SecretKey].
func NewSecretKey(params ParameterProvider) *SecretKey {
	return &SecretKey{Value: params.GetRLWEParameters().RingQ().NewPoly()}
}

// N returns the number of coefficients of the key.
func (sk SecretKey) N() int {
	return sk.Value.N()
}

// Clone returns a deep copy of the receiver.
func (sk SecretKey) Clone() *SecretKey {
	return &SecretKey{Value: sk.Value.Clone()}
}

// Equal returns true if the receiver and other hold the same key.
func (sk SecretKey) Equal(other *SecretKey) bool {
	return sk.Value.Equal(other.Value)
}

// BinarySize returns the serialized size of the object in bytes.
func (sk SecretKey) BinarySize() int {
	return sk.Value.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the
// io.WriterTo interface.
func (sk SecretKey) WriteTo(w io.Writer) (n int64, err error) {
	return sk.Value.WriteTo(w)
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (sk *SecretKey) ReadFrom(r io.Reader) (n int64, err error) {
	return sk.Value.ReadFrom(r)
}

// MarshalBinary encodes the object into a byte slice.
func (sk SecretKey) MarshalBinary() ([]byte, error) {
	return sk.Value.MarshalBinary()
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary on
// the object.
func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	return sk.Value.UnmarshalBinary(data)
}

// PublicKey is a structure that stores an encryption key
// (pk0, pk1) = (-(a*s) + e, a) over the ciphertext ring.
type PublicKey struct {
	Value [2]ring.Poly
}

// NewPublicKey allocates a new zero [PublicKey].
func NewPublicKey(params ParameterProvider) *PublicKey {
	rQ := params.GetRLWEParameters().RingQ()
	return &PublicKey{Value: [2]ring.Poly{rQ.NewPoly(), rQ.NewPoly()}}
}

// Clone returns a deep copy of the receiver.
func (pk PublicKey) Clone() *PublicKey {
	return &PublicKey{Value: [2]ring.Poly{pk.Value[0].Clone(), pk.Value[1].Clone()}}
}

// Equal returns true if the receiver and other hold the same key.
func (pk PublicKey) Equal(other *PublicKey) bool {
	return pk.Value[0].Equal(other.Value[0]) && pk.Value[1].Equal(other.Value[1])
}

// BinarySize returns the serialized size of the object in bytes.
func (pk PublicKey) BinarySize() int {
	return pk.Value[0].BinarySize() + pk.Value[1].BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the
// io.WriterTo interface.
func (pk PublicKey) WriteTo(w io.Writer) (n int64, err error) {
	return writePolyPair(w, pk.Value)
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (pk *PublicKey) ReadFrom(r io.Reader) (n int64, err error) {
	return readPolyPair(r, &pk.Value)
}

// MarshalBinary encodes the object into a byte slice.
func (pk PublicKey) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(pk.BinarySize())
	_, err = pk.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary on
// the object.
func (pk *PublicKey) UnmarshalBinary(data []byte) (err error) {
	_, err = pk.ReadFrom(buffer.NewBuffer(data))
	return
}

// RelinearizationKey is a structure that stores an evaluation key
// (rk0, rk1) = (-(a*s + e) + P*s^2, a) over the relinearization ring,
// used to bring the degree-two term arising from ciphertext
// multiplication back to a standard two-polynomial ciphertext.
type RelinearizationKey struct {
	Value [2]ring.Poly
}

// NewRelinearizationKey allocates a new zero [RelinearizationKey].
func NewRelinearizationKey(params ParameterProvider) *RelinearizationKey {
	rR := params.GetRLWEParameters().RingR()
	return &RelinearizationKey{Value: [2]ring.Poly{rR.NewPoly(), rR.NewPoly()}}
}

// Clone returns a deep copy of the receiver.
func (rlk RelinearizationKey) Clone() *RelinearizationKey {
	return &RelinearizationKey{Value: [2]ring.Poly{rlk.Value[0].Clone(), rlk.Value[1].Clone()}}
}

// Equal returns true if the receiver and other hold the same key.
func (rlk RelinearizationKey) Equal(other *RelinearizationKey) bool {
	return rlk.Value[0].Equal(other.Value[0]) && rlk.Value[1].Equal(other.Value[1])
}

// BinarySize returns the serialized size of the object in bytes.
func (rlk RelinearizationKey) BinarySize() int {
	return rlk.Value[0].BinarySize() + rlk.Value[1].BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the
// io.WriterTo interface.
func (rlk RelinearizationKey) WriteTo(w io.Writer) (n int64, err error) {
	return writePolyPair(w, rlk.Value)
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (rlk *RelinearizationKey) ReadFrom(r io.Reader) (n int64, err error) {
	return readPolyPair(r, &rlk.Value)
}

// MarshalBinary encodes the object into a byte slice.
func (rlk RelinearizationKey) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(rlk.BinarySize())
	_, err = rlk.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary on
// the object.
func (rlk *RelinearizationKey) UnmarshalBinary(data []byte) (err error) {
	_, err = rlk.ReadFrom(buffer.NewBuffer(data))
	return
}

func writePolyPair(w io.Writer, pair [2]ring.Poly) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = pair[0].WriteTo(w); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = pair[1].WriteTo(w); err != nil {
			return n + inc, err
		}

		n += inc

		return n, w.Flush()
	default:
		return writePolyPair(bufio.NewWriter(w), pair)
	}
}

func readPolyPair(r io.Reader, pair *[2]ring.Poly) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		if inc, err = pair[0].ReadFrom(r); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = pair[1].ReadFrom(r); err != nil {
			return n + inc, err
		}

		n += inc

		return
	default:
		return readPolyPair(bufio.NewReader(r), pair)
	}
}
