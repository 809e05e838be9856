package fragment

import (
	"bytes"
	"testing"

	"github.com/kodestego/lsbstego/bitops"
	"github.com/kodestego/lsbstego/framecodec"
	"github.com/kodestego/lsbstego/stegopts"
)

func mustOpts(t *testing.T) stegopts.Options {
	t.Helper()
	o, err := stegopts.New(0, 0, 1, 0, bitops.BIG, 0, nil)
	if err != nil {
		t.Fatalf("stegopts.New: %v", err)
	}
	return o
}

func TestEncodeDecode_MultiCoverSplit(t *testing.T) {
	payload := []byte("twenty-seven byte payload!!")
	if len(payload) != 27 {
		t.Fatalf("fixture payload length = %d, want 27", len(payload))
	}
	opts := mustOpts(t)

	// Each cover holds n*8 payload bytes plus the 1-byte flag and the
	// 64-byte payloadLen field, with 16 spare bytes.
	cover1 := bytes.Repeat([]byte{0x01}, 5*8+65+16)
	cover2 := bytes.Repeat([]byte{0x02}, 12*8+65+16)
	cover3 := bytes.Repeat([]byte{0x03}, 10*8+65+16)

	var dst1, dst2, dst3 bytes.Buffer
	entries := []EncodeEntry{
		{Cover: bytes.NewReader(cover1), CoverLen: int64(len(cover1)), Destination: &dst1, DataAmountToEncode: 5, Options: opts},
		{Cover: bytes.NewReader(cover2), CoverLen: int64(len(cover2)), Destination: &dst2, DataAmountToEncode: 12, Options: opts},
		{Cover: bytes.NewReader(cover3), CoverLen: int64(len(cover3)), Destination: &dst3, DataAmountToEncode: 10, Options: opts},
	}

	result, err := Encode(entries, bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if result != framecodec.EncodingSuccessful {
		t.Fatalf("Encode result = %v", result)
	}

	var dest bytes.Buffer
	decodeEntries := []DecodeEntry{
		{Stego: bytes.NewReader(dst1.Bytes()), Options: opts},
		{Stego: bytes.NewReader(dst2.Bytes()), Options: opts},
		{Stego: bytes.NewReader(dst3.Bytes()), Options: opts},
	}
	result, err = Decode(decodeEntries, &dest)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result != framecodec.DecodingSuccessful {
		t.Fatalf("Decode result = %v", result)
	}
	if !bytes.Equal(dest.Bytes(), payload) {
		t.Fatalf("recovered = %q, want %q", dest.Bytes(), payload)
	}
}

func TestEncode_SumExceedsPayload(t *testing.T) {
	opts := mustOpts(t)
	cover := bytes.Repeat([]byte{0x00}, 1024)
	var dst bytes.Buffer
	entries := []EncodeEntry{
		{Cover: bytes.NewReader(cover), CoverLen: int64(len(cover)), Destination: &dst, DataAmountToEncode: 100, Options: opts},
	}
	_, err := Encode(entries, bytes.NewReader([]byte("short")), 5)
	if err == nil {
		t.Fatal("expected InvalidArgument error when sum exceeds payload length")
	}
}

func TestDecode_ShortCircuitsOnInvalidPassword(t *testing.T) {
	payload := []byte("abcdefgh")
	rightOpts, _ := stegopts.New(0, 0, 1, 0, bitops.BIG, 0, []byte("pw"))
	wrongOpts, _ := stegopts.New(0, 0, 1, 0, bitops.BIG, 0, []byte("nope"))

	cover := bytes.Repeat([]byte{0x00}, 512)
	var dst bytes.Buffer
	entries := []EncodeEntry{
		{Cover: bytes.NewReader(cover), CoverLen: int64(len(cover)), Destination: &dst, DataAmountToEncode: int64(len(payload)), Options: rightOpts},
	}
	if _, err := Encode(entries, bytes.NewReader(payload), int64(len(payload))); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var dest bytes.Buffer
	decodeEntries := []DecodeEntry{
		{Stego: bytes.NewReader(dst.Bytes()), Options: wrongOpts},
	}
	result, err := Decode(decodeEntries, &dest)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result != framecodec.InvalidPassword {
		t.Fatalf("Decode result = %v, want InvalidPassword", result)
	}
}
