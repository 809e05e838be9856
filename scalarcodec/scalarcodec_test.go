package scalarcodec

import (
	"math"
	"testing"
)

func TestUint32RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 0xDEADBEEF, math.MaxUint32} {
		b := EncodeUint32(v)
		if len(b) != 4 {
			t.Fatalf("EncodeUint32 length = %d, want 4", len(b))
		}
		got, err := DecodeUint32(b, 0)
		if err != nil {
			t.Fatalf("DecodeUint32: %v", err)
		}
		if got != v {
			t.Fatalf("got %d, want %d", got, v)
		}
	}
}

func TestUint64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 0xDEADBEEFCAFEBABE, math.MaxUint64} {
		b := EncodeUint64(v)
		if len(b) != 8 {
			t.Fatalf("EncodeUint64 length = %d, want 8", len(b))
		}
		got, err := DecodeUint64(b, 0)
		if err != nil {
			t.Fatalf("DecodeUint64: %v", err)
		}
		if got != v {
			t.Fatalf("got %d, want %d", got, v)
		}
	}
}

func TestDecodeUint32_InsufficientBytes(t *testing.T) {
	if _, err := DecodeUint32([]byte{0, 0, 0}, 0); err == nil {
		t.Fatal("expected insufficient bytes error")
	}
}

func TestDecodeUint64_InsufficientBytes(t *testing.T) {
	if _, err := DecodeUint64(make([]byte, 7), 0); err == nil {
		t.Fatal("expected insufficient bytes error")
	}
}

func TestFloat32RoundTrip_BitPreserving(t *testing.T) {
	for _, v := range []float32{0, -0, 1.5, -3.25, float32(math.NaN()), float32(math.Inf(1))} {
		b := EncodeFloat32(v)
		got, err := DecodeFloat32(b, 0)
		if err != nil {
			t.Fatalf("DecodeFloat32: %v", err)
		}
		if math.Float32bits(got) != math.Float32bits(v) {
			t.Fatalf("got bits %x, want %x", math.Float32bits(got), math.Float32bits(v))
		}
	}
}

func TestFloat64RoundTrip_BitPreserving(t *testing.T) {
	for _, v := range []float64{0, -0, 1.5, -3.25, math.NaN(), math.Inf(-1)} {
		b := EncodeFloat64(v)
		got, err := DecodeFloat64(b, 0)
		if err != nil {
			t.Fatalf("DecodeFloat64: %v", err)
		}
		if math.Float64bits(got) != math.Float64bits(v) {
			t.Fatalf("got bits %x, want %x", math.Float64bits(got), math.Float64bits(v))
		}
	}
}

func TestDecodeUint32_AtNonZeroStart(t *testing.T) {
	buf := append([]byte{0xAA, 0xBB}, EncodeUint32(42)...)
	got, err := DecodeUint32(buf, 2)
	if err != nil {
		t.Fatalf("DecodeUint32: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}
