package encoding

import "os"

// Encodable is implemented by values that can produce a self-describing byte encoding
// of themselves. Encode must be deterministic and must not fail for a well-formed value.
type Encodable interface {
	Encode() []byte
}

// FileWritable is an Encodable that knows how to persist its encoding to an open file.
//
// WriteToFile takes ownership of f: the file is closed before WriteToFile returns,
// on success and on failure alike.
type FileWritable interface {
	Encodable
	WriteToFile(f *os.File) error
}
