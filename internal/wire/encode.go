package wire

import (
	"encoding/binary"
	"errors"
	"math"
)

var ErrNilMessage = errors.New("wire: nil message")

// ErrMissingFailure reports a reply-exception message with no failure body.
var ErrMissingFailure = errors.New("wire: reply exception without failure body")

// EncodePong returns the 1-byte keep-alive frame.
func EncodePong() []byte { return []byte{pongFrame} }

// Encode writes msg using the wire format and returns the complete frame,
// length prefix included. It is the exact inverse of Decode for every known
// codec and is what the round-trip tests and capture tooling build frames
// with.
func Encode(msg *Message) ([]byte, error) {
	if msg == nil {
		return nil, ErrNilMessage
	}
	if msg.Pong {
		return EncodePong(), nil
	}

	var w frameWriter
	w.u8(msg.Version)
	w.i8(int8(msg.Codec))
	if msg.Codec == CodecUser {
		w.varString(msg.CodecName)
	}
	w.u8(uint8(msg.Kind))
	w.varString(msg.Address)
	w.varString(msg.ReplyAddress)
	w.i32(msg.SenderPort)
	w.varString(msg.SenderHost)
	w.headerSection(msg.Headers)
	if err := w.body(&msg.Body); err != nil {
		return nil, err
	}

	out := make([]byte, 4+len(w.b))
	binary.BigEndian.PutUint32(out[:4], uint32(len(w.b)))
	copy(out[4:], w.b)
	return out, nil
}

type frameWriter struct {
	b []byte
}

func (w *frameWriter) u8(v uint8)  { w.b = append(w.b, v) }
func (w *frameWriter) i8(v int8)   { w.b = append(w.b, byte(v)) }
func (w *frameWriter) i16(v int16) { w.b = binary.BigEndian.AppendUint16(w.b, uint16(v)) }
func (w *frameWriter) i32(v int32) { w.b = binary.BigEndian.AppendUint32(w.b, uint32(v)) }
func (w *frameWriter) i64(v int64) { w.b = binary.BigEndian.AppendUint64(w.b, uint64(v)) }

func (w *frameWriter) varBytes(v []byte) {
	w.i32(int32(len(v)))
	w.b = append(w.b, v...)
}

func (w *frameWriter) varString(v string) {
	w.i32(int32(len(v)))
	w.b = append(w.b, v...)
}

// headerSection writes the declared-length header section. An empty list is
// the 4-byte section length alone, holding the value 4.
func (w *frameWriter) headerSection(headers []Header) {
	if len(headers) == 0 {
		w.i32(4)
		return
	}
	var entries frameWriter
	entries.i32(int32(len(headers)))
	for _, h := range headers {
		entries.varString(h.Key)
		entries.varString(h.Value)
	}
	w.i32(int32(4 + len(entries.b)))
	w.b = append(w.b, entries.b...)
}

func (w *frameWriter) body(body *Body) error {
	switch body.Codec {
	case CodecNull, CodecPing:
	case CodecByte:
		w.i8(body.Byte)
	case CodecBoolean:
		if body.Bool {
			w.u8(1)
		} else {
			w.u8(0)
		}
	case CodecShort:
		w.i16(body.Short)
	case CodecInt:
		w.i32(body.Int)
	case CodecLong:
		w.i64(body.Long)
	case CodecFloat:
		w.i32(int32(math.Float32bits(body.Float)))
	case CodecDouble:
		w.i64(int64(math.Float64bits(body.Double)))
	case CodecString:
		w.varString(body.Str)
	case CodecChar:
		w.i16(body.Char)
	case CodecBuffer, CodecByteArray:
		w.varBytes(body.Bytes)
	case CodecJSONObject, CodecJSONArray:
		w.varString(body.Str)
	case CodecReplyException:
		f := body.Failure
		if f == nil {
			return ErrMissingFailure
		}
		w.u8(uint8(f.Type))
		w.i32(f.Code)
		if f.HasMessage {
			w.u8(1)
			w.varString(f.Message)
		} else {
			w.u8(0)
		}
	default:
		// unknown and user codecs carry an opaque blob through frame end
		w.b = append(w.b, body.Bytes...)
	}
	return nil
}
