package inspect

import (
	"errors"
	"testing"

	"github.com/danmuck/vertxdump/internal/wire"
)

func TestBodyJSONCompacts(t *testing.T) {
	msg := &wire.Message{Body: wire.Body{Codec: wire.CodecJSONObject, Str: `{ "a": 1 }`}}
	out, err := BodyJSON(msg, StdChecker{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if string(out) != `{"a":1}` {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestBodyJSONRejectsInvalidText(t *testing.T) {
	msg := &wire.Message{Body: wire.Body{Codec: wire.CodecJSONArray, Str: `[1,`}}
	if _, err := BodyJSON(msg, StdChecker{}); err == nil {
		t.Fatalf("expected invalid JSON error")
	}
}

func TestBodyJSONNonJSONCodec(t *testing.T) {
	msg := &wire.Message{Body: wire.Body{Codec: wire.CodecInt, Int: 1}}
	if _, err := BodyJSON(msg, StdChecker{}); !errors.Is(err, ErrNotJSONBody) {
		t.Fatalf("expected ErrNotJSONBody, got %v", err)
	}
	if _, err := BodyJSON(nil, StdChecker{}); !errors.Is(err, ErrNotJSONBody) {
		t.Fatalf("expected ErrNotJSONBody for nil message, got %v", err)
	}
}
