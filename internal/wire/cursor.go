package wire

// Cursor is a sequential big-endian reader over an immutable byte window.
// Every read is bounds-checked; the offset always stays in [0, len(buf)].
type Cursor struct {
	buf []byte
	off int
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset reports how many bytes have been consumed so far.
func (c *Cursor) Offset() int { return c.off }

// Remaining reports how many bytes are left to read.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// ReadFixed returns the next n bytes and advances past them. The returned
// slice aliases the underlying window; callers that retain it must copy.
func (c *Cursor) ReadFixed(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrOutOfBounds
	}
	if c.Remaining() < n {
		return nil, &TruncatedError{Need: n, Remaining: c.Remaining()}
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// SeekTo moves the offset to an absolute position within the window. Used by
// the header decoder, which trusts the declared section length over the bytes
// its per-entry reads actually consumed.
func (c *Cursor) SeekTo(off int) error {
	if off < 0 || off > len(c.buf) {
		if off > len(c.buf) {
			return &TruncatedError{Need: off - c.off, Remaining: c.Remaining()}
		}
		return ErrOutOfBounds
	}
	c.off = off
	return nil
}
