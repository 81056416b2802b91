// Package stream walks a fully delivered capture buffer frame by frame,
// tracking the read cursor the way a live packet-analysis caller would. It
// never reassembles TCP itself; the caller hands it bytes it already has.
package stream

import (
	"errors"
	"io"

	"github.com/danmuck/vertxdump/internal/observability"
	"github.com/danmuck/vertxdump/internal/wire"
)

// Walker decodes successive frames out of one buffer, advancing by the
// bytes-consumed count each decode reports.
type Walker struct {
	buf []byte
	off int
}

func NewWalker(buf []byte) *Walker {
	return &Walker{buf: buf}
}

// Offset reports the current read cursor position.
func (w *Walker) Offset() int { return w.off }

// Remaining reports how many undecoded bytes are left.
func (w *Walker) Remaining() int { return len(w.buf) - w.off }

// Next decodes the next frame and advances the cursor. It returns io.EOF
// once the buffer is exhausted. A wire.ErrTruncated error means the buffer
// ends mid-frame; the cursor stays put so the caller can retry after
// appending more bytes.
func (w *Walker) Next() (*wire.Message, error) {
	if w.Remaining() == 0 {
		return nil, io.EOF
	}
	msg, n, err := wire.Decode(w.buf, w.off)
	if err != nil {
		observability.ObserveFailure(err)
		return nil, err
	}
	w.off += n
	observability.ObserveMessage(msg)
	return msg, nil
}

// Result summarizes a full walk over a capture.
type Result struct {
	Messages []*wire.Message
	Consumed int
	Trailing int // undecoded bytes left at the end of the buffer
}

// WalkAll decodes frames until the buffer runs out. A trailing partial frame
// is not an error: it is reported through Result.Trailing.
func WalkAll(buf []byte) (Result, error) {
	w := NewWalker(buf)
	var res Result
	for {
		msg, err := w.Next()
		if err != nil {
			res.Consumed = w.Offset()
			res.Trailing = w.Remaining()
			if errors.Is(err, io.EOF) || errors.Is(err, wire.ErrTruncated) {
				return res, nil
			}
			return res, err
		}
		res.Messages = append(res.Messages, msg)
	}
}
