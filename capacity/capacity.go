// Package capacity computes, from a set of codec options and a
// payload length, the exact number of cover bytes the frame codec will
// consume — the arithmetic both the encoder and the capacity-check
// entry point must agree on (spec §4.4, §9's partial-final-block note).
package capacity

import (
	"github.com/kodestego/lsbstego/stegerr"
	"github.com/kodestego/lsbstego/stegopts"
)

const op = "capacity"

// Breakdown is the computed, ephemeral result of a capacity check. It
// is never persisted — only derived per call.
type Breakdown struct {
	NumberOfDataBlocks int64
	TotalByteSkip      int64
	PasswordSize       int64
	TotalBytesRequired int64
	CoverFileSize      int64
}

// NumberOfDataBlocks returns ceil(payloadLen/dataBlockSize), defined as
// 0 when payloadLen is 0 (spec §9, "Zero-length payload"): the naive
// (payloadLen-1)/dataBlockSize+1 formula is undefined at payloadLen=0
// and must be guarded explicitly rather than relied upon.
func NumberOfDataBlocks(payloadLen int64, dataBlockSize int) int64 {
	if payloadLen <= 0 {
		return 0
	}
	n := int64(dataBlockSize)
	return (payloadLen + n - 1) / n
}

// PasswordSize returns the cover-byte cost of the password region,
// flag byte included: 1 byte (the flag byte only) when no password is
// set, else 1 + 32 + len(password)*8 (the flag byte, the 32-byte pwLen
// field, and pwBytes). The flag byte is read unconditionally by
// Encode before the optional pwLen/pwBytes fields, so it must be
// charged in both branches, not just the no-password one.
func PasswordSize(password []byte) int64 {
	if len(password) == 0 {
		return 1
	}
	return int64(len(password))*8 + 33
}

// Validate computes the full Breakdown for opts/payloadLen against
// coverFileSize, returning stegerr.KindInsufficientCapacity if the
// cover cannot hold the hidden frame.
//
// TotalBytesRequired charges exactly what the encoder reads: the
// initial offset, the password region, the 64-byte payloadLen field,
// payloadLen*8 bytes for the payload bits themselves, and
// (numberOfDataBlocks-1)*byteSkipPerBlock for the inter-block skips —
// no skip is charged after the final block (resolved Open Question,
// SPEC_FULL §13.1: the encoder must not read a trailing skip region
// after the last block either, or the two disagree at the boundary).
func Validate(opts stegopts.Options, payloadLen int64, coverFileSize int64) (Breakdown, error) {
	if payloadLen < 0 {
		return Breakdown{}, stegerr.Newf(stegerr.KindInvalidArgument, op, "payloadLen must be >= 0, got %d", payloadLen)
	}
	if err := opts.Validate(); err != nil {
		return Breakdown{}, err
	}

	numBlocks := NumberOfDataBlocks(payloadLen, opts.DataBlockSize)
	var totalSkip int64
	if numBlocks > 0 {
		totalSkip = (numBlocks - 1) * int64(opts.ByteSkipPerBlock)
	}
	pwSize := PasswordSize(opts.Password)

	total := payloadLen*8 + totalSkip + int64(opts.InitialOffset) + pwSize + 64

	b := Breakdown{
		NumberOfDataBlocks: numBlocks,
		TotalByteSkip:      totalSkip,
		PasswordSize:       pwSize,
		TotalBytesRequired: total,
		CoverFileSize:      coverFileSize,
	}

	if total > coverFileSize {
		return b, stegerr.Newf(stegerr.KindInsufficientCapacity, op, "need %d cover bytes, have %d", total, coverFileSize)
	}
	return b, nil
}
