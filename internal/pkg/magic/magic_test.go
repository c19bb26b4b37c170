package magic_test

import (
	"bytes"
	"testing"

	"github.com/bootpack/bootpack/internal/pkg/magic"
	"github.com/bootpack/bootpack/internal/pkg/transcode"
	"github.com/bootpack/bootpack/pkg/format"
)

func TestDetectEncodedStreams(t *testing.T) {
	input := []byte("detection test payload")
	for _, f := range []format.Format{
		format.Gzip,
		format.Xz,
		format.Lzma,
		format.Bzip2,
		format.Lz4,
		format.Lz4Legacy,
	} {
		t.Run(f.String(), func(t *testing.T) {
			var enc bytes.Buffer
			if _, err := transcode.Compress(f, &enc, input); err != nil {
				t.Fatal(err)
			}
			if got := magic.Detect(enc.Bytes()); got != f {
				t.Errorf("got %s, want %s", got, f)
			}
		})
	}
}

func TestDetectUnknown(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{name: "Empty", buf: nil},
		{name: "Single byte", buf: []byte{0x1f}},
		{name: "Plain text", buf: []byte("not compressed at all")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := magic.Detect(tt.buf); got != format.Unknown {
				t.Errorf("got %s, want unknown", got)
			}
		})
	}
}
