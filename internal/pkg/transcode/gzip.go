package transcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	bootpackErrors "github.com/bootpack/bootpack/internal/pkg/error"
	"github.com/bootpack/bootpack/internal/pkg/utils/funcutils"
	"github.com/bootpack/bootpack/internal/pkg/utils/writerutils"
)

// gzipChunk is the window size for feeding and draining the deflate stream.
const gzipChunk = 256 << 10

type gzipTranscoder struct{}

func (gzipTranscoder) Encode(w io.Writer, src []byte) (int64, error) {
	cw := writerutils.NewCountingWriter(w)
	zw, err := gzip.NewWriterLevel(cw, gzip.BestCompression)
	if err != nil {
		return cw.BytesWritten(), fmt.Errorf("%w: gzip: %v", bootpackErrors.ErrCodecInit, err)
	}
	if err := writeChunks(zw, src, gzipChunk); err != nil {
		return cw.BytesWritten(), fmt.Errorf("gzip encode: %w", err)
	}
	if err := zw.Close(); err != nil {
		return cw.BytesWritten(), fmt.Errorf("gzip encode: %w", err)
	}
	return cw.BytesWritten(), nil
}

func (gzipTranscoder) Decode(w io.Writer, src []byte) (int64, error) {
	cw := writerutils.NewCountingWriter(w)
	zr, err := gzip.NewReader(bytes.NewReader(src))
	if err != nil {
		return cw.BytesWritten(), fmt.Errorf("%w: gzip: %v", bootpackErrors.ErrCodecStream, err)
	}
	defer funcutils.PanicOrLogOnErr(zr.Close, false, "failed to close gzip reader")
	if err := drain(cw, zr, make([]byte, gzipChunk)); err != nil {
		return cw.BytesWritten(), fmt.Errorf("gzip decode: %w", err)
	}
	return cw.BytesWritten(), nil
}
