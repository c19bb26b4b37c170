package transcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	bootpackErrors "github.com/bootpack/bootpack/internal/pkg/error"
	"github.com/bootpack/bootpack/internal/pkg/magic"
	"github.com/bootpack/bootpack/internal/pkg/utils/writerutils"
	"github.com/bootpack/bootpack/pkg/format"
)

const (
	// lzmaChunk is the window size for feeding and draining LZMA streams.
	lzmaChunk = 64 << 10
	// lzmaDictCap is the dictionary capacity of the xz -9 preset.
	lzmaDictCap = 64 << 20
)

// xzTranscoder handles both the xz container and the legacy LZMA-alone
// container. Decoding detects the framing from the input; encoding picks
// the encoder from the alone flag.
type xzTranscoder struct {
	alone bool
}

func (t *xzTranscoder) Encode(w io.Writer, src []byte) (int64, error) {
	cw := writerutils.NewCountingWriter(w)
	var (
		zw  io.WriteCloser
		err error
	)
	if t.alone {
		zw, err = lzma.WriterConfig{DictCap: lzmaDictCap}.NewWriter(cw)
	} else {
		zw, err = xz.WriterConfig{DictCap: lzmaDictCap, CheckSum: xz.CRC32}.NewWriter(cw)
	}
	if err != nil {
		return cw.BytesWritten(), fmt.Errorf("%w: %s: %v", bootpackErrors.ErrCodecInit, t, err)
	}
	if err := writeChunks(zw, src, lzmaChunk); err != nil {
		return cw.BytesWritten(), fmt.Errorf("%s encode: %w", t, err)
	}
	if err := zw.Close(); err != nil {
		return cw.BytesWritten(), fmt.Errorf("%s encode: %w", t, err)
	}
	return cw.BytesWritten(), nil
}

func (t *xzTranscoder) Decode(w io.Writer, src []byte) (int64, error) {
	cw := writerutils.NewCountingWriter(w)
	var (
		zr  io.Reader
		err error
	)
	if magic.Detect(src) == format.Xz {
		zr, err = xz.ReaderConfig{DictCap: lzmaDictCap}.NewReader(bytes.NewReader(src))
	} else {
		zr, err = lzma.ReaderConfig{DictCap: lzmaDictCap}.NewReader(bytes.NewReader(src))
	}
	if err != nil {
		return cw.BytesWritten(), fmt.Errorf("%w: %s: %v", bootpackErrors.ErrCodecStream, t, err)
	}
	if err := drain(cw, zr, make([]byte, lzmaChunk)); err != nil {
		return cw.BytesWritten(), fmt.Errorf("%s decode: %w", t, err)
	}
	return cw.BytesWritten(), nil
}

func (t *xzTranscoder) String() string {
	if t.alone {
		return "lzma"
	}
	return "xz"
}
