package wire

import "errors"

// pongFrame is the single-byte keep-alive distinct from full message framing.
const pongFrame byte = 0x01

type decoder struct {
	c         *Cursor
	anomalies []Anomaly
}

func (d *decoder) anomaly(kind AnomalyKind, field string, value int64) {
	d.anomalies = append(d.anomalies, Anomaly{Kind: kind, Field: field, Value: value})
}

// readString reads a varstring and records an anomaly when the bytes are not
// valid UTF-8. The raw bytes are kept verbatim either way.
func (d *decoder) readString(field string) (string, error) {
	s, valid, err := d.c.ReadVarString()
	if err != nil {
		return "", err
	}
	if !valid {
		d.anomaly(AnomalyInvalidText, field, int64(len(s)))
	}
	return s, nil
}

// Decode reads one logical frame from buf starting at offset and returns the
// decoded message plus the number of bytes consumed, so the caller can move
// its read cursor. A TruncatedError means the window does not yet hold a
// complete frame; when it carries the declared frame length the caller can
// wait for more bytes instead of treating the input as corrupt.
//
// Decode holds no state across calls: independent frames may be decoded
// concurrently as long as each call gets its own buffer window.
func Decode(buf []byte, offset int) (*Message, int, error) {
	if offset < 0 || offset > len(buf) {
		return nil, 0, ErrOutOfBounds
	}
	window := buf[offset:]

	// 1-byte windows get the pong check; any other single-byte value falls
	// through to the normal path and fails on the frame-length read.
	if len(window) == 1 && window[0] == pongFrame {
		return &Message{Pong: true}, 1, nil
	}

	c := NewCursor(window)
	msgLen, err := c.ReadI32()
	if err != nil {
		return nil, 0, err
	}

	if msgLen > 0 {
		frameEnd := 4 + int(msgLen)
		if frameEnd > len(window) {
			return nil, 0, &TruncatedError{
				Need:         int(msgLen),
				Remaining:    len(window) - 4,
				DeclaredLen:  msgLen,
				HaveDeclared: true,
			}
		}
		// the decoder never reads past the declared frame end
		c.buf = window[:frameEnd]
	}

	d := &decoder{c: c}
	msg, err := decodeMessage(d, msgLen)
	if err != nil {
		var te *TruncatedError
		if errors.As(err, &te) && !te.HaveDeclared {
			te.DeclaredLen = msgLen
			te.HaveDeclared = true
		}
		return nil, 0, err
	}
	msg.Anomalies = d.anomalies
	return msg, c.Offset(), nil
}

// decodeMessage walks the strictly sequential frame layout:
// version, codec tag, optional user-codec name, routing fields, headers, body.
func decodeMessage(d *decoder, msgLen int32) (*Message, error) {
	msg := &Message{Length: msgLen}

	var err error
	msg.Version, err = d.c.ReadU8()
	if err != nil {
		return nil, err
	}

	tag, err := d.c.ReadI8()
	if err != nil {
		return nil, err
	}
	msg.Codec = CodecID(tag)

	if msg.Codec == CodecUser {
		msg.CodecName, err = d.readString("codec.name")
		if err != nil {
			return nil, err
		}
	}

	kind, err := d.c.ReadU8()
	if err != nil {
		return nil, err
	}
	switch Kind(kind) {
	case Send, Publish:
		msg.Kind = Kind(kind)
	default:
		// best-effort fallback, but the anomaly is always reported
		d.anomaly(AnomalyInvalidEnum, "kind", int64(kind))
		msg.Kind = Send
	}

	msg.Address, err = d.readString("address")
	if err != nil {
		return nil, err
	}
	msg.ReplyAddress, err = d.readString("reply_address")
	if err != nil {
		return nil, err
	}
	msg.SenderPort, err = d.c.ReadI32()
	if err != nil {
		return nil, err
	}
	msg.SenderHost, err = d.readString("sender_host")
	if err != nil {
		return nil, err
	}

	msg.Headers, err = decodeHeaders(d)
	if err != nil {
		return nil, err
	}

	// dispatch on the resolved codec tag; the user-codec name never affects
	// body dispatch (-1 lands on the unknown-codec blob path)
	msg.Body, err = decodeBody(d, msg.Codec)
	if err != nil {
		return nil, err
	}
	return msg, nil
}
