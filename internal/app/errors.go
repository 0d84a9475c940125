package app

import "errors"

// Runner errors
var (
	ErrReadBack       = errors.New("failed to read back written file")
	ErrDigestMismatch = errors.New("written file does not match encoding")
)
