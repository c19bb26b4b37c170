package writerutils

import (
	"io"
)

// CountingWriter wraps an io.Writer, enforces full writes and accumulates
// the number of bytes written across calls.
type CountingWriter struct {
	w io.Writer
	n int64
}

func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

func (cw *CountingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// BytesWritten returns the total number of bytes written so far.
func (cw *CountingWriter) BytesWritten() int64 {
	return cw.n
}
