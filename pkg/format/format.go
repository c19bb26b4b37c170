// Package format enumerates the compression container formats that bootpack
// can read and write, and maps user-facing method names to them.
package format

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	bootpackErrors "github.com/bootpack/bootpack/internal/pkg/error"
)

// Format identifies one compression container family.
type Format int

const (
	// Unknown is the zero value and never maps to a codec.
	Unknown Format = iota
	// Gzip is the gzip wrapper around deflate.
	Gzip
	// Xz is the xz container around LZMA2.
	Xz
	// Lzma is the legacy LZMA-alone container.
	Lzma
	// Bzip2 is the bzip2 block-sort format.
	Bzip2
	// Lz4 is the standard LZ4 frame format.
	Lz4
	// Lz4Legacy is the legacy LZ4 block format with length-prefixed blocks.
	Lz4Legacy
)

func (f Format) String() string {
	switch f {
	case Gzip:
		return "gzip"
	case Xz:
		return "xz"
	case Lzma:
		return "lzma"
	case Bzip2:
		return "bzip2"
	case Lz4:
		return "lz4"
	case Lz4Legacy:
		return "lz4_legacy"
	default:
		return "unknown"
	}
}

// Suffix returns the file name suffix for the format, including the leading
// dot. Both LZ4 variants share ".lz4".
func (f Format) Suffix() string {
	switch f {
	case Gzip:
		return ".gz"
	case Xz:
		return ".xz"
	case Lzma:
		return ".lzma"
	case Bzip2:
		return ".bz2"
	case Lz4, Lz4Legacy:
		return ".lz4"
	default:
		return ""
	}
}

//nolint:gochecknoglobals // lookup table
var methods = map[string]Format{
	"gzip":       Gzip,
	"xz":         Xz,
	"lzma":       Lzma,
	"bzip2":      Bzip2,
	"lz4":        Lz4,
	"lz4_legacy": Lz4Legacy,
}

// FromMethod maps a method name from the command line to a Format.
func FromMethod(name string) (Format, error) {
	f, ok := methods[name]
	if !ok {
		return Unknown, fmt.Errorf("%w: %q", bootpackErrors.ErrUnknownMethod, name)
	}
	return f, nil
}

// Methods returns the supported method names in sorted order.
func Methods() []string {
	names := lo.Keys(methods)
	sort.Strings(names)
	return names
}
