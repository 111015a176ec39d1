package ring

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/Pro7ech/ringlwe/utils"
	"github.com/Pro7ech/ringlwe/utils/buffer"
)

// Poly is the structure that contains the coefficients of a dense
// polynomial, stored in little-endian order: the coefficient of X^i is at
// index i. Coefficients are reduced representatives of the field the
// polynomial lives in. The zero polynomial is either empty or has all
// coefficients equal to zero.
type Poly []uint64

// NewPoly creates a new polynomial with n coefficients set to zero.
func NewPoly(n int) Poly {
	return make(Poly, n)
}

// N returns the number of coefficients of the polynomial.
func (p Poly) N() int {
	return len(p)
}

// Degree returns the degree of the polynomial, defined as the number of
// coefficients minus one.
func (p Poly) Degree() int {
	return len(p) - 1
}

// IsZero returns true if the polynomial is empty or if all its
// coefficients are zero.
func (p Poly) IsZero() bool {
	for i := range p {
		if p[i] != 0 {
			return false
		}
	}
	return true
}

// Zero sets all coefficients of the receiver to zero.
func (p Poly) Zero() {
	for i := range p {
		p[i] = 0
	}
}

// Clone returns a deep copy of the receiver.
func (p Poly) Clone() Poly {
	return slices.Clone(p)
}

// Copy copies the coefficients of p1 on the receiver, resizing it if
// needed. This method does nothing if the underlying arrays are the same.
func (p *Poly) Copy(p1 Poly) {
	if utils.Alias1D(*p, p1) {
		return
	}
	p.Resize(len(p1))
	copy(*p, p1)
}

// Resize resizes the receiver to n coefficients, zero-extending or
// truncating as needed.
func (p *Poly) Resize(n int) {
	if len(*p) > n {
		*p = (*p)[:n]
	}
	for len(*p) < n {
		*p = append(*p, 0)
	}
}

// Equal returns true if the receiver and other have the same length and
// identical coefficients.
func (p Poly) Equal(other Poly) bool {
	return slices.Equal(p, other)
}

// BinarySize returns the serialized size of the object in bytes.
func (p Poly) BinarySize() int {
	return 8 + 8*len(p)
}

// WriteTo writes the object on an io.Writer as a little-endian
// coefficient list prefixed with its length. It implements the
// io.WriterTo interface.
//
// Unless w implements the buffer.Writer interface, it will be wrapped
// into a bufio.Writer.
func (p Poly) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteAsUint64(w, len(p)); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = buffer.WriteUint64Slice(w, p); err != nil {
			return n + inc, err
		}

		n += inc

		return n, w.Flush()
	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface, it will be wrapped
// into a bufio.Reader.
func (p *Poly) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int64
		var size int

		if inc, err = buffer.ReadAsUint64(r, &size); err != nil {
			return n + inc, err
		}

		n += inc

		if size < 0 {
			return n, fmt.Errorf("invalid encoding: negative length")
		}

		if len(*p) != size {
			*p = make(Poly, size)
		}

		if inc, err = buffer.ReadUint64Slice(r, *p); err != nil {
			return n + inc, err
		}

		n += inc

		return
	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a byte slice.
func (p Poly) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary on
// the object.
func (p *Poly) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}
