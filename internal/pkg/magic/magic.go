// Package magic classifies a buffer's compression container format from its
// leading signature bytes.
package magic

import (
	"bytes"

	"github.com/bootpack/bootpack/pkg/format"
)

//nolint:gochecknoglobals // signature tables
var (
	gzipMagic      = []byte{0x1f, 0x8b}
	xzMagic        = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	lzmaMagic      = []byte{0x5d, 0x00, 0x00}
	bzip2Magic     = []byte{'B', 'Z', 'h'}
	lz4FrameMagic  = []byte{0x04, 0x22, 0x4d, 0x18}
	lz4LegacyMagic = []byte{0x02, 0x21, 0x4c, 0x18}
)

// Detect returns the container format of buf, or format.Unknown if the
// leading bytes match no known signature.
func Detect(buf []byte) format.Format {
	switch {
	case bytes.HasPrefix(buf, gzipMagic):
		return format.Gzip
	case bytes.HasPrefix(buf, xzMagic):
		return format.Xz
	case bytes.HasPrefix(buf, lzmaMagic):
		return format.Lzma
	case bytes.HasPrefix(buf, bzip2Magic):
		return format.Bzip2
	case bytes.HasPrefix(buf, lz4FrameMagic):
		return format.Lz4
	case bytes.HasPrefix(buf, lz4LegacyMagic):
		return format.Lz4Legacy
	default:
		return format.Unknown
	}
}
