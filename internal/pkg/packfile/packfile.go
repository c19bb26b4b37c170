// Package packfile compresses and decompresses files on disk, matching file
// suffixes against detected container formats and handling implicit
// destination paths.
package packfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	bootpackErrors "github.com/bootpack/bootpack/internal/pkg/error"
	"github.com/bootpack/bootpack/internal/pkg/magic"
	"github.com/bootpack/bootpack/internal/pkg/transcode"
	"github.com/bootpack/bootpack/internal/pkg/utils/fileutils"
	"github.com/bootpack/bootpack/internal/pkg/utils/writerutils"
	"github.com/bootpack/bootpack/pkg/format"
)

// Decompress decodes the file at src into dest. The suffix of src must
// match its detected container format. When dest is empty the destination
// is src with the suffix stripped, and src is removed after a successful
// decode.
func Decompress(src, dest string) error {
	buf, err := fileutils.SafeReadFile(src, 0o644)
	if err != nil {
		return err
	}
	detected := magic.Detect(buf)
	if detected == format.Unknown {
		return fmt.Errorf("%w: %q", bootpackErrors.ErrUnsupportedFormat, src)
	}
	if ext := filepath.Ext(src); ext != detected.Suffix() {
		return fmt.Errorf("%w: %q contains %s data", bootpackErrors.ErrExtensionMismatch, src, detected)
	}
	implicitDest := dest == ""
	if implicitDest {
		dest = strings.TrimSuffix(src, detected.Suffix())
	}
	log.Infof("Decompressing to [%s]", dest)
	err = writeTranscoded(dest, func(w io.Writer) (int64, error) {
		return transcode.Decompress(detected, w, buf)
	})
	if err != nil {
		return fmt.Errorf("failed to decompress %q: %w", src, err)
	}
	if implicitDest {
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("failed to remove source %q: %w", src, err)
		}
	}
	return nil
}

// Compress encodes the file at src into dest using the named method. When
// dest is empty the destination is src plus the method's suffix, and src is
// removed after a successful encode.
func Compress(method, src, dest string) error {
	f, err := format.FromMethod(method)
	if err != nil {
		return err
	}
	buf, err := fileutils.SafeReadFile(src, 0o644)
	if err != nil {
		return err
	}
	implicitDest := dest == ""
	if implicitDest {
		dest = src + f.Suffix()
	}
	log.Infof("Compressing to [%s]", dest)
	err = writeTranscoded(dest, func(w io.Writer) (int64, error) {
		return transcode.Compress(f, w, buf)
	})
	if err != nil {
		return fmt.Errorf("failed to compress %q: %w", src, err)
	}
	if implicitDest {
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("failed to remove source %q: %w", src, err)
		}
	}
	return nil
}

// writeTranscoded runs the transcode step against a freshly created dest
// file. A failed transcode never leaves a partially written destination
// behind; the source file is untouched on failure.
func writeTranscoded(dest string, step func(w io.Writer) (int64, error)) error {
	fp, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	w := writerutils.NewSafeFileWriter(fp)
	n, err := step(w)
	if err = errors.Join(err, w.Close()); err != nil {
		_ = os.Remove(dest)
		return err
	}
	log.Debugf("wrote %d bytes to [%s]", n, dest)
	return nil
}
