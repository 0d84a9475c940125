package encoding

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/zeusync/nestcodec/pkg/generic"
)

const writerBufferSize = 4096

var writers = generic.NewPool(func() *bufio.Writer {
	return bufio.NewWriterSize(io.Discard, writerBufferSize)
}).WithReset(func(w *bufio.Writer) {
	w.Reset(io.Discard)
})

// WriteJSON creates (or truncates) the file at path and hands the open file to value.
// If the file cannot be created, value.WriteToFile is never called.
func WriteJSON[T FileWritable](value T, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateFile, err)
	}

	return value.WriteToFile(f)
}

// WriteEncoded writes the encoding of e to f through a buffered writer, flushes it
// and closes f. f is closed on every return path; the first error wins.
func WriteEncoded(e Encodable, f *os.File) (err error) {
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrCloseFile, closeErr)
		}
	}()

	w := writers.Get()
	w.Reset(f)
	defer writers.Put(w)

	if _, err = w.Write(e.Encode()); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}

	if err = w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrFlushFile, err)
	}

	return nil
}
