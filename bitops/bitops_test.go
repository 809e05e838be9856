package bitops

import (
	"bytes"
	"testing"
)

func TestSetBitGetBit_RoundTrip(t *testing.T) {
	for pos := 0; pos <= 7; pos++ {
		for _, v := range []byte{0, 1} {
			b, err := SetBit(0xA5, v, pos)
			if err != nil {
				t.Fatalf("SetBit(pos=%d, v=%d): %v", pos, v, err)
			}
			got, err := GetBit(b, pos)
			if err != nil {
				t.Fatalf("GetBit(pos=%d): %v", pos, err)
			}
			if got != v {
				t.Fatalf("pos=%d v=%d: got %d", pos, v, got)
			}
		}
	}
}

func TestSetBit_RejectsOutOfRange(t *testing.T) {
	if _, err := SetBit(0, 0, 8); err == nil {
		t.Fatal("expected error for pos=8")
	}
	if _, err := SetBit(0, 2, 0); err == nil {
		t.Fatal("expected error for value=2")
	}
}

func TestInterleaveDeinterleave_RoundTrip_AllPositionsAndEndians(t *testing.T) {
	source := []byte{0x00, 0xFF, 0x5A, 0xA5, 0x81, 0x7E}
	for pos := 0; pos <= 7; pos++ {
		for _, endian := range []Endian{BIG, LITTLE} {
			target := make([]byte, len(source)*8)
			if err := InterleaveInto(target, 0, source, 0, len(source)-1, pos, endian); err != nil {
				t.Fatalf("InterleaveInto(pos=%d,endian=%v): %v", pos, endian, err)
			}
			out, err := DeinterleaveFrom(target, 0, len(source), pos, endian)
			if err != nil {
				t.Fatalf("DeinterleaveFrom(pos=%d,endian=%v): %v", pos, endian, err)
			}
			if !bytes.Equal(out, source) {
				t.Fatalf("pos=%d endian=%v: got %v, want %v", pos, endian, out, source)
			}
		}
	}
}

func TestInterleaveInto_PreservesOtherBits(t *testing.T) {
	target := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	source := []byte{0x00}
	if err := InterleaveInto(target, 0, source, 0, 0, 3, BIG); err != nil {
		t.Fatalf("InterleaveInto: %v", err)
	}
	for i, b := range target {
		if b != 0xF7 {
			t.Fatalf("target[%d] = %#x, want %#x (only bit 3 cleared)", i, b, 0xF7)
		}
	}
}

func TestInterleaveInto_BigVsLittleBitOrder(t *testing.T) {
	source := []byte{0x80} // bit 7 set, all others clear
	bigTarget := make([]byte, 8)
	if err := InterleaveInto(bigTarget, 0, source, 0, 0, 0, BIG); err != nil {
		t.Fatalf("InterleaveInto BIG: %v", err)
	}
	if bigTarget[0]&1 != 1 {
		t.Fatal("BIG must place source bit 7 (MSB) into the first target byte")
	}

	littleTarget := make([]byte, 8)
	if err := InterleaveInto(littleTarget, 0, source, 0, 0, 0, LITTLE); err != nil {
		t.Fatalf("InterleaveInto LITTLE: %v", err)
	}
	if littleTarget[0]&1 != 0 {
		t.Fatal("LITTLE must place source bit 0 (LSB) into the first target byte")
	}
	if littleTarget[7]&1 != 1 {
		t.Fatal("LITTLE must place source bit 7 (MSB) into the last target byte")
	}
}

func TestInterleaveInto_InsufficientTargetBytes(t *testing.T) {
	target := make([]byte, 4)
	source := []byte{0x00, 0x00}
	if err := InterleaveInto(target, 0, source, 0, 1, 0, BIG); err == nil {
		t.Fatal("expected insufficient-bytes error")
	}
}

func TestDeinterleaveFrom_InsufficientSourceBytes(t *testing.T) {
	source := make([]byte, 4)
	if _, err := DeinterleaveFrom(source, 0, 1, 0, BIG); err == nil {
		t.Fatal("expected insufficient-bytes error")
	}
}

func TestEndianFlip(t *testing.T) {
	if BIG.Flip() != LITTLE {
		t.Fatal("BIG.Flip() must be LITTLE")
	}
	if LITTLE.Flip() != BIG {
		t.Fatal("LITTLE.Flip() must be BIG")
	}
}
