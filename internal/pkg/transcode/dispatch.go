package transcode

import (
	"fmt"
	"io"

	bootpackErrors "github.com/bootpack/bootpack/internal/pkg/error"
	"github.com/bootpack/bootpack/pkg/format"
)

// xz and lzma share the auto-detecting decoder but use distinct encoders.
//
//nolint:gochecknoglobals // codec lookup table
var transcoders = map[format.Format]Transcoder{
	format.Gzip:      &gzipTranscoder{},
	format.Xz:        &xzTranscoder{},
	format.Lzma:      &xzTranscoder{alone: true},
	format.Bzip2:     &bzip2Transcoder{},
	format.Lz4:       &lz4Transcoder{},
	format.Lz4Legacy: &lz4LegacyTranscoder{},
}

// For returns the Transcoder responsible for the given format.
func For(f format.Format) (Transcoder, error) {
	t, ok := transcoders[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", bootpackErrors.ErrUnsupportedFormat, f)
	}
	return t, nil
}

// Compress encodes src into the given container format and writes the
// result to w.
func Compress(f format.Format, w io.Writer, src []byte) (int64, error) {
	t, err := For(f)
	if err != nil {
		return 0, err
	}
	return t.Encode(w, src)
}

// Decompress decodes src, which must be in the given container format, and
// writes the result to w.
func Decompress(f format.Format, w io.Writer, src []byte) (int64, error) {
	t, err := For(f)
	if err != nil {
		return 0, err
	}
	return t.Decode(w, src)
}
