package transcode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	bootpackErrors "github.com/bootpack/bootpack/internal/pkg/error"
)

// walkLegacyBlocks parses the hand-rolled framing the same way the decoder
// does and returns the number of blocks and the trailing size field.
func walkLegacyBlocks(t *testing.T, enc []byte) (blocks int, trailer uint32) {
	t.Helper()
	if !bytes.HasPrefix(enc, lz4LegacyMagic) {
		t.Fatalf("stream does not start with the legacy magic: % x", enc[:4])
	}
	pos := len(lz4LegacyMagic)
	for len(enc)-pos > 4 {
		blockLen := int(binary.LittleEndian.Uint32(enc[pos:]))
		if blockLen == 0 || blockLen > lz4LegacyBlockBound {
			t.Fatalf("invalid block length %d at offset %d", blockLen, pos)
		}
		pos += 4 + blockLen
		if pos > len(enc) {
			t.Fatalf("block at offset %d runs past the end of the stream", pos-4-blockLen)
		}
		blocks++
	}
	if len(enc)-pos != 4 {
		t.Fatalf("expected exactly 4 trailing bytes after the last block, got %d", len(enc)-pos)
	}
	return blocks, binary.LittleEndian.Uint32(enc[pos:])
}

func TestLz4LegacyBlockLayout(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		wantBlocks int
	}{
		{name: "Empty", size: 0, wantBlocks: 0},
		{name: "Single partial block", size: 10, wantBlocks: 1},
		{name: "Exactly one block", size: lz4LegacyBlockSize, wantBlocks: 1},
		{name: "Exceeds one block", size: 9_000_000, wantBlocks: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := randomBytes(t, tt.size)
			var enc bytes.Buffer
			tr := lz4LegacyTranscoder{}
			if _, err := tr.Encode(&enc, input); err != nil {
				t.Fatal(err)
			}
			blocks, trailer := walkLegacyBlocks(t, enc.Bytes())
			if blocks != tt.wantBlocks {
				t.Errorf("got %d blocks, want %d", blocks, tt.wantBlocks)
			}
			if trailer != uint32(tt.size) {
				t.Errorf("trailing size field is %d, want %d", trailer, tt.size)
			}
			var dec bytes.Buffer
			if _, err := tr.Decode(&dec, enc.Bytes()); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(dec.Bytes(), input) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", dec.Len(), len(input))
			}
		})
	}
}

func TestLz4LegacyDecodeIgnoresTrailer(t *testing.T) {
	// The trailing size field must never be parsed as a block, even when it
	// holds a value that would be a plausible block length.
	input := randomBytes(t, 64)
	var enc bytes.Buffer
	tr := lz4LegacyTranscoder{}
	if _, err := tr.Encode(&enc, input); err != nil {
		t.Fatal(err)
	}
	trailer := binary.LittleEndian.Uint32(enc.Bytes()[enc.Len()-4:])
	if trailer == 0 || int(trailer) > lz4LegacyBlockBound {
		t.Fatalf("test setup: trailer %d does not look like a block length", trailer)
	}
	var dec bytes.Buffer
	if _, err := tr.Decode(&dec, enc.Bytes()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec.Bytes(), input) {
		t.Error("round trip mismatch")
	}
}

func TestLz4LegacyDecodeTruncatedBlock(t *testing.T) {
	input := randomBytes(t, 1000)
	var enc bytes.Buffer
	tr := lz4LegacyTranscoder{}
	if _, err := tr.Encode(&enc, input); err != nil {
		t.Fatal(err)
	}
	// Cut into the middle of the single block.
	truncated := enc.Bytes()[:enc.Len()/2]
	var dec bytes.Buffer
	_, err := tr.Decode(&dec, truncated)
	if !errors.Is(err, bootpackErrors.ErrCodecStream) {
		t.Errorf("expected stream error, got: %v", err)
	}
}

func TestLz4LegacyDecodeShortInput(t *testing.T) {
	var dec bytes.Buffer
	_, err := lz4LegacyTranscoder{}.Decode(&dec, []byte{0x02, 0x21})
	if !errors.Is(err, bootpackErrors.ErrCodecStream) {
		t.Errorf("expected stream error, got: %v", err)
	}
}
