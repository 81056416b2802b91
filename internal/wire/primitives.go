package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Fixed-width reads. All multi-byte integers on the wire are big-endian.

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.ReadFixed(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

func (c *Cursor) ReadI16() (int16, error) {
	b, err := c.ReadFixed(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

func (c *Cursor) ReadI32() (int32, error) {
	b, err := c.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (c *Cursor) ReadI64() (int64, error) {
	b, err := c.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (c *Cursor) ReadF32() (float32, error) {
	b, err := c.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

func (c *Cursor) ReadF64() (float64, error) {
	b, err := c.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// ReadVarBytes reads a 4-byte signed length prefix followed by that many
// bytes. A zero or negative prefix yields an empty slice and consumes only
// the prefix; the format's encoders emit negative lengths in the wild, so
// the permissive path is load-bearing, not a guess.
func (c *Cursor) ReadVarBytes() ([]byte, error) {
	n, err := c.ReadI32()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []byte{}, nil
	}
	b, err := c.ReadFixed(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadVarString reads a length-prefixed byte run and returns it as a string.
// valid reports whether the bytes are well-formed UTF-8; invalid text is
// returned verbatim rather than replaced so the raw bytes stay available.
func (c *Cursor) ReadVarString() (s string, valid bool, err error) {
	b, err := c.ReadVarBytes()
	if err != nil {
		return "", false, err
	}
	return string(b), utf8.Valid(b), nil
}
