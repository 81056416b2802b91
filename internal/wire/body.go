package wire

// decodeBody reads the message payload keyed on the already-resolved codec
// tag. The tag is threaded in explicitly — body dispatch never re-derives it.
// Codecs outside 0..15 (including the user-codec tag -1) have unspecified
// internal layout from the decoder's standpoint, so everything from the
// current position through the end of the frame becomes an opaque blob.
func decodeBody(d *decoder, codec CodecID) (Body, error) {
	body := Body{Codec: codec}
	var err error

	switch codec {
	case CodecNull, CodecPing:
		// no payload
	case CodecByte:
		body.Byte, err = d.c.ReadI8()
	case CodecBoolean:
		var v uint8
		v, err = d.c.ReadU8()
		body.Bool = v != 0
	case CodecShort:
		body.Short, err = d.c.ReadI16()
	case CodecInt:
		body.Int, err = d.c.ReadI32()
	case CodecLong:
		body.Long, err = d.c.ReadI64()
	case CodecFloat:
		body.Float, err = d.c.ReadF32()
	case CodecDouble:
		body.Double, err = d.c.ReadF64()
	case CodecString:
		body.Str, err = d.readString("body.string")
	case CodecChar:
		// a character semantically, but a 2-byte signed field on the wire
		body.Char, err = d.c.ReadI16()
	case CodecBuffer, CodecByteArray:
		body.Bytes, err = d.c.ReadVarBytes()
	case CodecJSONObject, CodecJSONArray:
		// raw JSON text span; interpreting the JSON itself is an optional
		// enrichment, not a decode dependency
		body.Str, err = d.readString("body.json")
	case CodecReplyException:
		body.Failure, err = decodeReplyFailure(d)
	default:
		body.Bytes, err = d.c.ReadFixed(d.c.Remaining())
		if err == nil {
			blob := make([]byte, len(body.Bytes))
			copy(blob, body.Bytes)
			body.Bytes = blob
		}
	}
	if err != nil {
		return Body{}, err
	}
	return body, nil
}

// decodeReplyFailure reads the codec 15 body: failure type, failure code,
// and an optional message gated by a 1-byte flag.
func decodeReplyFailure(d *decoder) (*ReplyFailure, error) {
	rawType, err := d.c.ReadU8()
	if err != nil {
		return nil, err
	}
	f := &ReplyFailure{Type: FailureType(rawType)}
	if !f.Type.Known() {
		d.anomaly(AnomalyInvalidEnum, "failure.type", int64(rawType))
	}

	f.Code, err = d.c.ReadI32()
	if err != nil {
		return nil, err
	}

	flag, err := d.c.ReadU8()
	if err != nil {
		return nil, err
	}
	if flag != 0 {
		f.HasMessage = true
		f.Message, err = d.readString("failure.message")
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}
