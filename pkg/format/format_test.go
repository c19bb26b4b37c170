package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	bootpackErrors "github.com/bootpack/bootpack/internal/pkg/error"
)

func TestFromMethod(t *testing.T) {
	tests := []struct {
		method     string
		want       Format
		wantSuffix string
		wantErr    error
	}{
		{method: "gzip", want: Gzip, wantSuffix: ".gz"},
		{method: "xz", want: Xz, wantSuffix: ".xz"},
		{method: "lzma", want: Lzma, wantSuffix: ".lzma"},
		{method: "bzip2", want: Bzip2, wantSuffix: ".bz2"},
		{method: "lz4", want: Lz4, wantSuffix: ".lz4"},
		{method: "lz4_legacy", want: Lz4Legacy, wantSuffix: ".lz4"},
		{method: "zstd", wantErr: bootpackErrors.ErrUnknownMethod},
		{method: "", wantErr: bootpackErrors.ErrUnknownMethod},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			got, err := FromMethod(tt.method)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSuffix, got.Suffix())
		})
	}
}

func TestLz4VariantsShareSuffixButNotTag(t *testing.T) {
	frame, err := FromMethod("lz4")
	if err != nil {
		t.Fatal(err)
	}
	legacy, err := FromMethod("lz4_legacy")
	if err != nil {
		t.Fatal(err)
	}
	assert.NotEqual(t, frame, legacy)
	assert.Equal(t, frame.Suffix(), legacy.Suffix())
}

func TestMethods(t *testing.T) {
	assert.Equal(t, []string{"bzip2", "gzip", "lz4", "lz4_legacy", "lzma", "xz"}, Methods())
}
