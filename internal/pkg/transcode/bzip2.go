package transcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"

	bootpackErrors "github.com/bootpack/bootpack/internal/pkg/error"
	"github.com/bootpack/bootpack/internal/pkg/utils/funcutils"
	"github.com/bootpack/bootpack/internal/pkg/utils/writerutils"
)

// bzip2Chunk is the window size for feeding and draining the bzip2 stream.
const bzip2Chunk = 256 << 10

type bzip2Transcoder struct{}

func (bzip2Transcoder) Encode(w io.Writer, src []byte) (int64, error) {
	cw := writerutils.NewCountingWriter(w)
	zw, err := bzip2.NewWriter(cw, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		return cw.BytesWritten(), fmt.Errorf("%w: bzip2: %v", bootpackErrors.ErrCodecInit, err)
	}
	if err := writeChunks(zw, src, bzip2Chunk); err != nil {
		return cw.BytesWritten(), fmt.Errorf("bzip2 encode: %w", err)
	}
	if err := zw.Close(); err != nil {
		return cw.BytesWritten(), fmt.Errorf("bzip2 encode: %w", err)
	}
	return cw.BytesWritten(), nil
}

func (bzip2Transcoder) Decode(w io.Writer, src []byte) (int64, error) {
	cw := writerutils.NewCountingWriter(w)
	zr, err := bzip2.NewReader(bytes.NewReader(src), nil)
	if err != nil {
		return cw.BytesWritten(), fmt.Errorf("%w: bzip2: %v", bootpackErrors.ErrCodecStream, err)
	}
	defer funcutils.PanicOrLogOnErr(zr.Close, false, "failed to close bzip2 reader")
	if err := drain(cw, zr, make([]byte, bzip2Chunk)); err != nil {
		return cw.BytesWritten(), fmt.Errorf("bzip2 decode: %w", err)
	}
	return cw.BytesWritten(), nil
}
