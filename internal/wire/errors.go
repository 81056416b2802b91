package wire

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated   = errors.New("wire: truncated input")
	ErrOutOfBounds = errors.New("wire: cursor out of bounds")
)

// TruncatedError reports a read that ran past the available bytes. It carries
// the frame's declared length when the decoder got far enough to read it, so
// a caller feeding the decoder from a TCP stream can tell "wait for more
// bytes" apart from "corrupt frame".
type TruncatedError struct {
	Need      int
	Remaining int

	// DeclaredLen is the frame's messageLength field; valid only when
	// HaveDeclared is true.
	DeclaredLen  int32
	HaveDeclared bool
}

func (e *TruncatedError) Error() string {
	if e.HaveDeclared {
		return fmt.Sprintf("wire: truncated input: need %d bytes, %d remaining (declared frame length %d)",
			e.Need, e.Remaining, e.DeclaredLen)
	}
	return fmt.Sprintf("wire: truncated input: need %d bytes, %d remaining", e.Need, e.Remaining)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncated }

// AnomalyKind classifies a non-fatal decode irregularity.
type AnomalyKind uint8

const (
	AnomalyInvalidEnum AnomalyKind = iota
	AnomalyInvalidText
)

func (k AnomalyKind) String() string {
	switch k {
	case AnomalyInvalidEnum:
		return "invalid-enum"
	case AnomalyInvalidText:
		return "invalid-text"
	default:
		return fmt.Sprintf("anomaly(%d)", uint8(k))
	}
}

// Anomaly records a field whose value fell outside its defined domain. The
// decoder keeps going with a documented fallback and surfaces the report on
// the decoded message instead of failing the decode.
type Anomaly struct {
	Kind  AnomalyKind
	Field string
	Value int64
}

func (a Anomaly) String() string {
	return fmt.Sprintf("%s field=%s value=%d", a.Kind, a.Field, a.Value)
}
