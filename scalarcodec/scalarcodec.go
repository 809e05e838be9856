// Package scalarcodec provides fixed-width big-endian serialization of
// the integer fields that make up the hidden frame header (pwLen,
// payloadLen), plus bit-preserving float/double reinterpretation for
// callers that want to hide numeric values directly. These are the
// byte-level building blocks the frame codec hands to bitops: the
// integer is serialized to its 4/8 big-endian bytes first, and only
// those bytes are ever interleaved into cover bytes.
package scalarcodec

import (
	"encoding/binary"
	"math"

	"github.com/kodestego/lsbstego/stegerr"
)

const op = "scalarcodec"

// EncodeUint32 returns the 4-byte big-endian encoding of v.
func EncodeUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// DecodeUint32 parses a 4-byte big-endian uint32 starting at start.
func DecodeUint32(buf []byte, start int) (uint32, error) {
	if start < 0 || len(buf)-start < 4 {
		return 0, stegerr.Newf(stegerr.KindInsufficientBytes, op, "need 4 bytes from %d, have %d", start, len(buf)-start)
	}
	return binary.BigEndian.Uint32(buf[start : start+4]), nil
}

// EncodeUint64 returns the 8-byte big-endian encoding of v.
func EncodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// DecodeUint64 parses an 8-byte big-endian uint64 starting at start.
func DecodeUint64(buf []byte, start int) (uint64, error) {
	if start < 0 || len(buf)-start < 8 {
		return 0, stegerr.Newf(stegerr.KindInsufficientBytes, op, "need 8 bytes from %d, have %d", start, len(buf)-start)
	}
	return binary.BigEndian.Uint64(buf[start : start+8]), nil
}

// EncodeFloat32 reinterprets v's IEEE-754 bits as a 4-byte big-endian
// buffer, bit-preserving (no numeric rounding).
func EncodeFloat32(v float32) []byte {
	return EncodeUint32(math.Float32bits(v))
}

// DecodeFloat32 is the inverse of EncodeFloat32.
func DecodeFloat32(buf []byte, start int) (float32, error) {
	u, err := DecodeUint32(buf, start)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// EncodeFloat64 reinterprets v's IEEE-754 bits as an 8-byte big-endian
// buffer, bit-preserving.
func EncodeFloat64(v float64) []byte {
	return EncodeUint64(math.Float64bits(v))
}

// DecodeFloat64 is the inverse of EncodeFloat64.
func DecodeFloat64(buf []byte, start int) (float64, error) {
	u, err := DecodeUint64(buf, start)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}
