package wire

import "fmt"

// Kind is the message routing mode.
type Kind uint8

const (
	Send    Kind = 0
	Publish Kind = 1
)

func (k Kind) String() string {
	switch k {
	case Send:
		return "send"
	case Publish:
		return "publish"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Header is one key/value header entry. Entries are ordered and not
// deduplicated; encounter order on the wire is significant.
type Header struct {
	Key   string
	Value string
}

// FailureType tags a reply exception body.
type FailureType uint8

const (
	FailureTimeout          FailureType = 0
	FailureNoHandlers       FailureType = 1
	FailureRecipientFailure FailureType = 2
)

// Known reports whether t is one of the defined failure types. Out-of-domain
// tags are preserved as their raw numeric value rather than rejected.
func (t FailureType) Known() bool { return t <= FailureRecipientFailure }

func (t FailureType) String() string {
	switch t {
	case FailureTimeout:
		return "timeout"
	case FailureNoHandlers:
		return "no-handlers"
	case FailureRecipientFailure:
		return "recipient-failure"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ReplyFailure is the codec 15 body: a request failed instead of carrying a
// normal reply payload.
type ReplyFailure struct {
	Type       FailureType
	Code       int32
	HasMessage bool
	Message    string
}

// Body is the decoded message payload, tagged by Codec. Exactly one value
// slot is populated per codec; null and ping carry nothing.
type Body struct {
	Codec CodecID

	Byte    int8
	Bool    bool
	Short   int16
	Int     int32
	Long    int64
	Float   float32
	Double  float64
	Str     string // string, jsonobject, jsonarray (raw JSON text span)
	Char    int16  // wire encoding is a 2-byte signed field
	Bytes   []byte // buffer, bytearray, unknown-codec blob
	Failure *ReplyFailure
}

// Message is one decoded logical frame. When Pong is set the frame was the
// 1-byte keep-alive and every other field is zero.
type Message struct {
	Pong bool

	Length       int32 // declared messageLength from the frame header
	Version      uint8
	Codec        CodecID
	CodecName    string // present only when Codec == CodecUser
	Kind         Kind
	Address      string
	ReplyAddress string
	SenderPort   int32
	SenderHost   string
	Headers      []Header
	Body         Body

	// Anomalies lists non-fatal irregularities seen during the decode:
	// out-of-domain enum tags and non-UTF-8 text fields.
	Anomalies []Anomaly
}
