package encoding

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
)

// KindInt is the type tag used by NewTaggedInt.
const KindInt = "int"

var (
	_ Encodable    = TaggedInt{}
	_ FileWritable = TaggedInt{}
)

var (
	taggedPrefix = []byte(`{"type":"`)
	taggedMiddle = []byte(`", "value":`)
	taggedSuffix = []byte(`}`)
)

// TaggedInt is an unsigned integer carrying a fixed type tag.
// Kind is written verbatim, so it must not contain characters that need JSON escaping.
type TaggedInt struct {
	Kind  string
	Value uint64
}

func NewTaggedInt(value uint64) TaggedInt {
	return TaggedInt{Kind: KindInt, Value: value}
}

// Encode returns {"type":"<kind>", "value":<value>} with the value in base 10.
func (t TaggedInt) Encode() []byte {
	buf := make([]byte, 0, len(taggedPrefix)+len(t.Kind)+len(taggedMiddle)+20+len(taggedSuffix))
	buf = append(buf, taggedPrefix...)
	buf = append(buf, t.Kind...)
	buf = append(buf, taggedMiddle...)
	buf = strconv.AppendUint(buf, t.Value, 10)
	buf = append(buf, taggedSuffix...)
	return buf
}

func (t TaggedInt) WriteToFile(f *os.File) error {
	return WriteEncoded(t, f)
}

func (t TaggedInt) String() string {
	return string(t.Encode())
}

// ParseTaggedInt reads back the form produced by TaggedInt.Encode.
// It is strict: no whitespace, leading zeros or trailing bytes are accepted.
func ParseTaggedInt(data []byte) (TaggedInt, error) {
	rest, ok := bytes.CutPrefix(data, taggedPrefix)
	if !ok {
		return TaggedInt{}, fmt.Errorf("%w: missing type prefix", ErrMalformedEncoding)
	}

	kind, rest, ok := bytes.Cut(rest, taggedMiddle)
	if !ok || len(kind) == 0 {
		return TaggedInt{}, fmt.Errorf("%w: missing type tag", ErrMalformedEncoding)
	}

	digits, ok := bytes.CutSuffix(rest, taggedSuffix)
	if !ok {
		return TaggedInt{}, fmt.Errorf("%w: missing closing brace", ErrMalformedEncoding)
	}
	if len(digits) == 0 || (len(digits) > 1 && digits[0] == '0') {
		return TaggedInt{}, fmt.Errorf("%w: invalid value %q", ErrMalformedEncoding, digits)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return TaggedInt{}, fmt.Errorf("%w: invalid value %q", ErrMalformedEncoding, digits)
		}
	}

	value, err := strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		return TaggedInt{}, fmt.Errorf("%w: %w", ErrMalformedEncoding, err)
	}

	return TaggedInt{Kind: string(kind), Value: value}, nil
}
