package wire

import "testing"

func TestDecodeHeadersEmptySection(t *testing.T) {
	var w frameWriter
	w.i32(4)
	w.u8(0xCC) // body bytes following the section
	d := &decoder{c: NewCursor(w.b)}
	headers, err := decodeHeaders(d)
	if err != nil {
		t.Fatalf("decode headers: %v", err)
	}
	if len(headers) != 0 {
		t.Fatalf("expected no headers, got %v", headers)
	}
	if d.c.Offset() != 4 {
		t.Fatalf("cursor at %d, want 4", d.c.Offset())
	}
}

func TestDecodeHeadersOrderAndDuplicatesPreserved(t *testing.T) {
	in := []Header{
		{Key: "trace", Value: "a"},
		{Key: "trace", Value: "b"},
		{Key: "origin", Value: "node-1"},
	}
	var w frameWriter
	w.headerSection(in)
	d := &decoder{c: NewCursor(w.b)}
	out, err := decodeHeaders(d)
	if err != nil {
		t.Fatalf("decode headers: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 headers, got %d", len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("header %d mismatch: got %+v want %+v", i, out[i], in[i])
		}
	}
	if d.c.Remaining() != 0 {
		t.Fatalf("cursor not at section end: %d remaining", d.c.Remaining())
	}
}

func TestDecodeHeadersDeclaredLengthIsAuthoritative(t *testing.T) {
	// one entry plus 3 bytes of trailing padding inside the declared length
	var entries frameWriter
	entries.i32(1)
	entries.varString("k")
	entries.varString("v")

	var w frameWriter
	w.i32(int32(4 + len(entries.b) + 3))
	w.b = append(w.b, entries.b...)
	w.b = append(w.b, 0, 0, 0) // padding
	w.u8(0xEE)                 // first body byte

	d := &decoder{c: NewCursor(w.b)}
	headers, err := decodeHeaders(d)
	if err != nil {
		t.Fatalf("decode headers: %v", err)
	}
	if len(headers) != 1 || headers[0].Key != "k" || headers[0].Value != "v" {
		t.Fatalf("unexpected headers: %v", headers)
	}
	if d.c.Offset() != len(w.b)-1 {
		t.Fatalf("cursor at %d, want %d", d.c.Offset(), len(w.b)-1)
	}
}
