package transcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	bootpackErrors "github.com/bootpack/bootpack/internal/pkg/error"
	"github.com/bootpack/bootpack/internal/pkg/utils/writerutils"
)

// lz4FrameBlock is the encode window size, matching the 4 MiB block size
// declared in the frame header.
const lz4FrameBlock = 4 << 20

type lz4Transcoder struct{}

func (lz4Transcoder) Encode(w io.Writer, src []byte) (int64, error) {
	cw := writerutils.NewCountingWriter(w)
	zw := lz4.NewWriter(cw)
	err := zw.Apply(
		lz4.BlockSizeOption(lz4.Block4Mb),
		lz4.ChecksumOption(true),
		lz4.CompressionLevelOption(lz4.Level9),
	)
	if err != nil {
		return cw.BytesWritten(), fmt.Errorf("%w: lz4: %v", bootpackErrors.ErrCodecInit, err)
	}
	if err := writeChunks(zw, src, lz4FrameBlock); err != nil {
		return cw.BytesWritten(), fmt.Errorf("lz4 encode: %w", err)
	}
	// Close writes the end mark and the content checksum.
	if err := zw.Close(); err != nil {
		return cw.BytesWritten(), fmt.Errorf("lz4 encode: %w", err)
	}
	return cw.BytesWritten(), nil
}

func (lz4Transcoder) Decode(w io.Writer, src []byte) (int64, error) {
	cw := writerutils.NewCountingWriter(w)
	capacity, err := frameBlockCap(src)
	if err != nil {
		return cw.BytesWritten(), err
	}
	zr := lz4.NewReader(bytes.NewReader(src))
	if err := drain(cw, zr, make([]byte, capacity)); err != nil {
		return cw.BytesWritten(), fmt.Errorf("lz4 decode: %w", err)
	}
	return cw.BytesWritten(), nil
}

// frameBlockCap reads the BD byte of the frame descriptor and returns the
// maximum block size negotiated for the stream, which bounds how much a
// single decode step can produce.
func frameBlockCap(src []byte) (int, error) {
	// Magic (4), FLG and BD; the descriptor may continue but the block
	// size lives in the upper bits of BD.
	if len(src) < 6 {
		return 0, fmt.Errorf("%w: lz4: truncated frame header", bootpackErrors.ErrCodecStream)
	}
	switch bd := src[5]; (bd >> 4) & 0x7 {
	case 4:
		return 64 << 10, nil
	case 5:
		return 256 << 10, nil
	case 6:
		return 1 << 20, nil
	case 7:
		return 4 << 20, nil
	default:
		return 0, fmt.Errorf("%w: lz4: invalid block size descriptor", bootpackErrors.ErrCodecStream)
	}
}
