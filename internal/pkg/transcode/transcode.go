// Package transcode implements streaming compression and decompression of
// in-memory buffers for the container formats bootpack understands.
//
// Every codec follows the same discipline: the input buffer is fed to the
// codec in fixed-size windows and the produced output is drained through a
// fixed-size scratch buffer, so memory stays bounded regardless of the input
// size. The window and scratch sizes are per-codec constants, except for the
// LZ4 frame decoder which sizes its scratch buffer from the block size
// negotiated in the frame header.
package transcode

import (
	"errors"
	"fmt"
	"io"

	bootpackErrors "github.com/bootpack/bootpack/internal/pkg/error"
)

// Transcoder streams one compression format in both directions. Encode and
// Decode consume the whole caller-owned src buffer, write the result to w
// and report the number of bytes written. src is never modified and is not
// retained after the call returns.
type Transcoder interface {
	Encode(w io.Writer, src []byte) (int64, error)
	Decode(w io.Writer, src []byte) (int64, error)
}

// writeChunks feeds src to w in windows of at most chunk bytes.
func writeChunks(w io.Writer, src []byte, chunk int) error {
	for pos := 0; pos < len(src); {
		end := pos + chunk
		if end > len(src) {
			end = len(src)
		}
		if _, err := w.Write(src[pos:end]); err != nil {
			return err
		}
		pos = end
	}
	return nil
}

// drain copies everything src produces to dst through the fixed scratch
// buffer buf. Read errors are stream faults and are wrapped accordingly;
// write errors belong to the sink and are returned as-is.
func drain(dst io.Writer, src io.Reader, buf []byte) error {
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if errors.Is(rerr, io.EOF) {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("%w: %v", bootpackErrors.ErrCodecStream, rerr)
		}
	}
}
