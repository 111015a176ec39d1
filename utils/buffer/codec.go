package buffer

import (
	"encoding/binary"
	"io"

	"golang.org/x/exp/constraints"
)

// WriteUint8 writes a single byte on w.
func WriteUint8(w Writer, c uint8) (n int64, err error) {
	nint, err := w.Write([]byte{c})
	return int64(nint), err
}

// WriteUint64 writes a uint64 on w in little-endian.
func WriteUint64(w Writer, c uint64) (n int64, err error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], c)
	nint, err := w.Write(buf[:])
	return int64(nint), err
}

// WriteAsUint8 casts the input to uint8 and writes it on w.
func WriteAsUint8[T constraints.Integer](w Writer, c T) (n int64, err error) {
	return WriteUint8(w, uint8(c))
}

// WriteAsUint64 casts the input to uint64 and writes it on w in little-endian.
func WriteAsUint64[T constraints.Integer](w Writer, c T) (n int64, err error) {
	return WriteUint64(w, uint64(c))
}

// WriteUint64Slice writes the input slice on w in little-endian, without
// a length prefix.
func WriteUint64Slice(w Writer, c []uint64) (n int64, err error) {
	var buf [8]byte
	var inc int64
	for i := range c {
		binary.LittleEndian.PutUint64(buf[:], c[i])
		nint, err := w.Write(buf[:])
		inc = int64(nint)
		if err != nil {
			return n + inc, err
		}
		n += inc
	}
	return
}

// ReadUint8 reads a single byte from r.
func ReadUint8(r Reader, c *uint8) (n int64, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	*c = b
	return 1, nil
}

// ReadUint64 reads a little-endian uint64 from r.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {
	var buf [8]byte
	nint, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(nint), err
	}
	*c = binary.LittleEndian.Uint64(buf[:])
	return int64(nint), nil
}

// ReadAsUint8 reads a single byte from r and casts it to T.
func ReadAsUint8[T constraints.Integer](r Reader, c *T) (n int64, err error) {
	var v uint8
	if n, err = ReadUint8(r, &v); err != nil {
		return
	}
	*c = T(v)
	return
}

// ReadAsUint64 reads a little-endian uint64 from r and casts it to T.
func ReadAsUint64[T constraints.Integer](r Reader, c *T) (n int64, err error) {
	var v uint64
	if n, err = ReadUint64(r, &v); err != nil {
		return
	}
	*c = T(v)
	return
}

// ReadUint64Slice reads len(c) little-endian uint64 from r into c.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {
	var inc int64
	for i := range c {
		if inc, err = ReadUint64(r, &c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}
	return
}
