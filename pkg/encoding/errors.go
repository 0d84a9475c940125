package encoding

import "errors"

// File I/O errors
var (
	ErrCreateFile = errors.New("failed to create file")
	ErrWriteFile  = errors.New("failed to write file")
	ErrFlushFile  = errors.New("failed to flush file")
	ErrCloseFile  = errors.New("failed to close file")
)

// Decoding errors
var (
	ErrMalformedEncoding = errors.New("malformed encoding")
)
