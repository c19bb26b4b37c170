package transcode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	bootpackErrors "github.com/bootpack/bootpack/internal/pkg/error"
	"github.com/bootpack/bootpack/internal/pkg/utils/writerutils"
)

// The legacy LZ4 block format has no library support. The layout is a
// 4-byte magic, then per block a little-endian compressed length followed
// by the HC-compressed bytes, and after the last block a little-endian
// field holding the total uncompressed size.
const lz4LegacyBlockSize = 8 << 20

//nolint:gochecknoglobals // framing constants
var (
	lz4LegacyMagic      = []byte{0x02, 0x21, 0x4c, 0x18}
	lz4LegacyBlockBound = lz4.CompressBlockBound(lz4LegacyBlockSize)
)

type lz4LegacyTranscoder struct{}

func (lz4LegacyTranscoder) Encode(w io.Writer, src []byte) (int64, error) {
	cw := writerutils.NewCountingWriter(w)
	if _, err := cw.Write(lz4LegacyMagic); err != nil {
		return cw.BytesWritten(), fmt.Errorf("lz4_legacy encode: %w", err)
	}
	out := make([]byte, lz4LegacyBlockBound)
	var head [4]byte
	for pos := 0; pos < len(src); {
		end := pos + lz4LegacyBlockSize
		if end > len(src) {
			end = len(src)
		}
		n, err := lz4.CompressBlockHC(src[pos:end], out, lz4.Level9, nil, nil)
		if err != nil || n == 0 {
			return cw.BytesWritten(), fmt.Errorf("%w: lz4_legacy: block compression failed: %v", bootpackErrors.ErrCodecStream, err)
		}
		binary.LittleEndian.PutUint32(head[:], uint32(n))
		if _, err := cw.Write(head[:]); err != nil {
			return cw.BytesWritten(), fmt.Errorf("lz4_legacy encode: %w", err)
		}
		if _, err := cw.Write(out[:n]); err != nil {
			return cw.BytesWritten(), fmt.Errorf("lz4_legacy encode: %w", err)
		}
		pos = end
	}
	binary.LittleEndian.PutUint32(head[:], uint32(len(src)))
	if _, err := cw.Write(head[:]); err != nil {
		return cw.BytesWritten(), fmt.Errorf("lz4_legacy encode: %w", err)
	}
	return cw.BytesWritten(), nil
}

func (lz4LegacyTranscoder) Decode(w io.Writer, src []byte) (int64, error) {
	cw := writerutils.NewCountingWriter(w)
	if len(src) < len(lz4LegacyMagic) {
		return cw.BytesWritten(), fmt.Errorf("%w: lz4_legacy: input shorter than magic", bootpackErrors.ErrCodecStream)
	}
	out := make([]byte, lz4LegacyBlockSize)
	pos := len(lz4LegacyMagic)
	// The loop is bounded by the remaining input, never by a length field
	// alone: when at most 4 bytes remain they are the trailing
	// uncompressed-size field, not another block.
	for len(src)-pos > 4 {
		blockLen := int(binary.LittleEndian.Uint32(src[pos:]))
		if blockLen == 0 || blockLen > lz4LegacyBlockBound {
			break
		}
		pos += 4
		if pos+blockLen > len(src) {
			return cw.BytesWritten(), fmt.Errorf("%w: lz4_legacy: truncated block", bootpackErrors.ErrCodecStream)
		}
		n, err := lz4.UncompressBlock(src[pos:pos+blockLen], out)
		if err != nil {
			return cw.BytesWritten(), fmt.Errorf("%w: lz4_legacy: %v", bootpackErrors.ErrCodecStream, err)
		}
		if _, err := cw.Write(out[:n]); err != nil {
			return cw.BytesWritten(), fmt.Errorf("lz4_legacy decode: %w", err)
		}
		pos += blockLen
	}
	return cw.BytesWritten(), nil
}
