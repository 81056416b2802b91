package wire

// CodecID is the wire protocol's signed type tag selecting the body encoding.
// -1 means a user codec (a name string follows on the wire); 0..15 are the
// built-in system codecs; anything else is unknown and decoded as a blob.
type CodecID int8

const (
	CodecUser           CodecID = -1
	CodecNull           CodecID = 0
	CodecPing           CodecID = 1
	CodecByte           CodecID = 2
	CodecBoolean        CodecID = 3
	CodecShort          CodecID = 4
	CodecInt            CodecID = 5
	CodecLong           CodecID = 6
	CodecFloat          CodecID = 7
	CodecDouble         CodecID = 8
	CodecString         CodecID = 9
	CodecChar           CodecID = 10
	CodecBuffer         CodecID = 11
	CodecByteArray      CodecID = 12
	CodecJSONObject     CodecID = 13
	CodecJSONArray      CodecID = 14
	CodecReplyException CodecID = 15
)

var codecNames = [16]string{
	"null", "ping", "byte", "boolean", "short", "int", "long", "float",
	"double", "string", "char", "buffer", "bytearray", "jsonobject",
	"jsonarray", "replyexception",
}

// Known reports whether id selects one of the built-in system codecs.
func (id CodecID) Known() bool { return id >= 0 && id <= 15 }

func (id CodecID) String() string {
	if id == CodecUser {
		return "usercodec"
	}
	if id.Known() {
		return codecNames[id]
	}
	return "unknown"
}
