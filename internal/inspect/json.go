// Package inspect holds display-only enrichment for decoded frames. Nothing
// here affects framing: the decoder stays usable when no JSON checker is
// wired in.
package inspect

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/danmuck/vertxdump/internal/wire"
)

var ErrNotJSONBody = errors.New("inspect: body carries no JSON text span")

// JSONChecker interprets the raw text span of a jsonobject/jsonarray body.
type JSONChecker interface {
	Check(raw []byte) ([]byte, error)
}

// StdChecker validates and reformats JSON with the standard library.
type StdChecker struct {
	Indent bool
}

func (c StdChecker) Check(raw []byte) ([]byte, error) {
	if !json.Valid(raw) {
		return nil, errors.New("inspect: invalid JSON text")
	}
	var out bytes.Buffer
	var err error
	if c.Indent {
		err = json.Indent(&out, raw, "", "  ")
	} else {
		err = json.Compact(&out, raw)
	}
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// BodyJSON runs checker over a message whose body is a JSON text span.
func BodyJSON(msg *wire.Message, checker JSONChecker) ([]byte, error) {
	if msg == nil {
		return nil, ErrNotJSONBody
	}
	switch msg.Body.Codec {
	case wire.CodecJSONObject, wire.CodecJSONArray:
		return checker.Check([]byte(msg.Body.Str))
	default:
		return nil, ErrNotJSONBody
	}
}
