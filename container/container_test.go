package container

import (
	"bytes"
	"testing"

	"github.com/kodestego/lsbstego/bitops"
	"github.com/kodestego/lsbstego/framecodec"
	"github.com/kodestego/lsbstego/stegopts"
)

func TestParseWAVHeader_CanonicalHeader(t *testing.T) {
	pcm := bytes.Repeat([]byte{0x7F}, 2048)
	header := BuildWAVHeader(44100, 2, 16, len(pcm))
	wav := append(append([]byte{}, header...), pcm...)

	chunk, err := ParseWAVHeader(wav)
	if err != nil {
		t.Fatalf("ParseWAVHeader: %v", err)
	}
	if chunk.Offset != 44 {
		t.Fatalf("data offset = %d, want 44", chunk.Offset)
	}
	if int(chunk.Size) != len(pcm) {
		t.Fatalf("data size = %d, want %d", chunk.Size, len(pcm))
	}
}

func TestParseWAVHeader_RejectsTooShort(t *testing.T) {
	if _, err := ParseWAVHeader(make([]byte, 10)); err == nil {
		t.Fatal("expected error for too-short WAV data")
	}
}

func TestParseWAVHeader_SkipsExtraChunks(t *testing.T) {
	pcm := bytes.Repeat([]byte{0x01}, 512)
	header := BuildWAVHeader(8000, 1, 8, len(pcm))

	// Insert a LIST chunk (even-length) between fmt and data.
	listChunk := append([]byte("LIST"), 0x04, 0x00, 0x00, 0x00)
	listChunk = append(listChunk, []byte("INFO")...)

	wav := append(append([]byte{}, header[:36]...), listChunk...)
	wav = append(wav, header[36:]...)
	wav = append(wav, pcm...)

	chunk, err := ParseWAVHeader(wav)
	if err != nil {
		t.Fatalf("ParseWAVHeader: %v", err)
	}
	if int(chunk.Size) != len(pcm) {
		t.Fatalf("data size = %d, want %d", chunk.Size, len(pcm))
	}
}

func TestWithWAVHeader_EncodeDecodeRoundTrip(t *testing.T) {
	pcm := bytes.Repeat([]byte{0x55}, 4096)
	header := BuildWAVHeader(44100, 2, 16, len(pcm))
	wav := append(append([]byte{}, header...), pcm...)

	base, err := stegopts.New(0, 0, 1, 0, bitops.BIG, 0, nil)
	if err != nil {
		t.Fatalf("stegopts.New: %v", err)
	}
	opts, err := WithWAVHeader(wav, base)
	if err != nil {
		t.Fatalf("WithWAVHeader: %v", err)
	}
	if opts.InitialOffset != 44 {
		t.Fatalf("InitialOffset = %d, want 44", opts.InitialOffset)
	}

	payload := []byte("hidden in the data chunk only")
	stego, result, err := framecodec.EncodeBytes(wav, payload, opts)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if result != framecodec.EncodingSuccessful {
		t.Fatalf("encode result = %v", result)
	}
	if !bytes.Equal(stego[:44], header) {
		t.Fatalf("WAV header region was modified")
	}

	recovered, result, err := framecodec.DecodeBytes(stego, opts)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result != framecodec.DecodingSuccessful {
		t.Fatalf("decode result = %v", result)
	}
	if !bytes.Equal(recovered, payload) {
		t.Fatalf("recovered = %q, want %q", recovered, payload)
	}
}

func TestID3v2TagSize_NoTag(t *testing.T) {
	if got := ID3v2TagSize([]byte{0xFF, 0xFB, 0x90, 0x00}); got != 0 {
		t.Fatalf("ID3v2TagSize = %d, want 0 for untagged data", got)
	}
}

func TestID3v2TagSize_SynchsafeHeader(t *testing.T) {
	tag := []byte{'I', 'D', '3', 3, 0, 0, 0x00, 0x00, 0x02, 0x01} // synchsafe size = 2<<7 | 1 = 257
	got := ID3v2TagSize(tag)
	if got != 10+257 {
		t.Fatalf("ID3v2TagSize = %d, want %d", got, 10+257)
	}
}
