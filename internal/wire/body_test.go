package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeReplyFailureWithMessage(t *testing.T) {
	var w frameWriter
	w.u8(uint8(FailureRecipientFailure))
	w.i32(500)
	w.u8(1)
	w.varString("boom")
	d := &decoder{c: NewCursor(w.b)}
	f, err := decodeReplyFailure(d)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Type != FailureRecipientFailure || f.Code != 500 {
		t.Fatalf("unexpected failure: %+v", f)
	}
	if !f.HasMessage || f.Message != "boom" {
		t.Fatalf("message not decoded: %+v", f)
	}
	if len(d.anomalies) != 0 {
		t.Fatalf("unexpected anomalies: %v", d.anomalies)
	}
}

func TestDecodeReplyFailureNoMessageReadsNothingFurther(t *testing.T) {
	var w frameWriter
	w.u8(uint8(FailureNoHandlers))
	w.i32(-1)
	w.u8(0)
	d := &decoder{c: NewCursor(w.b)}
	f, err := decodeReplyFailure(d)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Type != FailureNoHandlers || f.Code != -1 || f.HasMessage || f.Message != "" {
		t.Fatalf("unexpected failure: %+v", f)
	}
	if d.c.Remaining() != 0 {
		t.Fatalf("cursor overran flag-gated message: %d remaining", d.c.Remaining())
	}
}

func TestDecodeReplyFailureUnknownTypePreserved(t *testing.T) {
	var w frameWriter
	w.u8(9)
	w.i32(0)
	w.u8(0)
	d := &decoder{c: NewCursor(w.b)}
	f, err := decodeReplyFailure(d)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if uint8(f.Type) != 9 || f.Type.Known() {
		t.Fatalf("raw tag not preserved: %+v", f)
	}
	if len(d.anomalies) != 1 || d.anomalies[0].Kind != AnomalyInvalidEnum {
		t.Fatalf("expected invalid-enum anomaly, got %v", d.anomalies)
	}
}

func TestDecodeReplyFailureTruncatedMessage(t *testing.T) {
	var w frameWriter
	w.u8(uint8(FailureTimeout))
	w.i32(1)
	w.u8(1) // flag set, but no message follows
	d := &decoder{c: NewCursor(w.b)}
	_, err := decodeReplyFailure(d)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeBodyUnknownCodecConsumesRest(t *testing.T) {
	blob := []byte{9, 8, 7, 6, 5}
	d := &decoder{c: NewCursor(blob)}
	body, err := decodeBody(d, CodecID(42))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(body.Bytes, blob) {
		t.Fatalf("blob mismatch: %v", body.Bytes)
	}
	if d.c.Remaining() != 0 {
		t.Fatalf("blob did not consume frame remainder: %d", d.c.Remaining())
	}
}

func TestDecodeBodyCharIsSignedInt16(t *testing.T) {
	var w frameWriter
	w.i16(-200)
	d := &decoder{c: NewCursor(w.b)}
	body, err := decodeBody(d, CodecChar)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Char != -200 {
		t.Fatalf("char: got %d", body.Char)
	}
}
