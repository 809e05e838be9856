// Package framecodec implements the streaming encoder and decoder:
// the block loop, the endianness-flip cadence, the skip gap, and the
// hidden-frame header layout (spec §4.5, §4.6). It is the largest
// component in the codec and the only one that owns I/O ordering.
//
// Grounded on the teacher's steganography_service.go EmbedMessage /
// ExtractMessage: build a header, turn payload bytes into a bit
// stream, walk cover byte positions setting/clearing one bit each.
// SPEC_FULL generalizes that shape from a hard-coded bit-0, single
// contiguous run to an arbitrary bit position, block/skip geometry,
// and periodic endianness flips.
package framecodec

import (
	"bytes"
	"io"

	"github.com/kodestego/lsbstego/bitops"
	"github.com/kodestego/lsbstego/capacity"
	"github.com/kodestego/lsbstego/scalarcodec"
	"github.com/kodestego/lsbstego/stegerr"
	"github.com/kodestego/lsbstego/stegopts"
)

const op = "framecodec"

// passwordFlagBit is the cover-byte bit that carries the password
// presence flag. It is always bit 0, independent of
// Options.HiddenBitPosition — the flag must be decodable before the
// rest of the frame (and its agreed hiddenBitPosition) is known.
const passwordFlagBit = 0

// Result is a stable result code, mirroring spec §6's
// EncodingSuccessful / DecodingSuccessful / InvalidPassword. Every
// non-InvalidPassword failure is instead surfaced as an error — Result
// is only ever a success marker or the "not yours" signal.
type Result int

const (
	EncodingSuccessful Result = iota
	DecodingSuccessful
	InvalidPassword
	// EncodingFailed is returned alongside a non-nil error by both
	// Encode and Decode; the error, not the Result, says what failed.
	EncodingFailed
)

func (r Result) String() string {
	switch r {
	case EncodingSuccessful:
		return "EncodingSuccessful"
	case DecodingSuccessful:
		return "DecodingSuccessful"
	case InvalidPassword:
		return "InvalidPassword"
	case EncodingFailed:
		return "EncodingFailed"
	default:
		return "Unknown"
	}
}

// Encode reads coverLen bytes from cover and payloadLen bytes from
// payload, writing a byte-length-identical stego stream to dst.
//
// coverLen must be the exact number of bytes cover will yield; it is
// required up front so capacity can be validated before any output is
// written (spec §4.5 step 1, "fail fast on insufficient capacity").
func Encode(dst io.Writer, cover io.Reader, coverLen int64, payload io.Reader, payloadLen int64, opts stegopts.Options) (Result, error) {
	if _, err := capacity.Validate(opts, payloadLen, coverLen); err != nil {
		return EncodingFailed, err
	}

	// Step 2: copy initialOffset cover bytes verbatim.
	if err := copyExact(dst, cover, opts.InitialOffset); err != nil {
		return EncodingFailed, stegerr.Wrap(err, op+".initialOffset")
	}

	// Step 3: password flag byte.
	flagBuf, err := readExact(cover, 1)
	if err != nil {
		return EncodingFailed, stegerr.Wrap(err, op+".flagByte.read")
	}
	flagVal := byte(0)
	if opts.HasPassword() {
		flagVal = 1
	}
	flagBuf[0], err = bitops.SetBit(flagBuf[0], flagVal, passwordFlagBit)
	if err != nil {
		return EncodingFailed, stegerr.Wrap(err, op+".flagByte.set")
	}
	if _, err := dst.Write(flagBuf); err != nil {
		return EncodingFailed, stegerr.New(stegerr.KindIO, op+".flagByte.write", err)
	}

	// Step 4: optional password region. Never subject to endian flip.
	if opts.HasPassword() {
		if err := encodeUint32Field(dst, cover, uint32(len(opts.Password)), opts.HiddenBitPosition, opts.StartingEndian); err != nil {
			return EncodingFailed, stegerr.Wrap(err, op+".pwLen")
		}
		if err := encodeByteField(dst, cover, opts.Password, opts.HiddenBitPosition, opts.StartingEndian); err != nil {
			return EncodingFailed, stegerr.Wrap(err, op+".pwBytes")
		}
	}

	// Step 5: payloadLen, 64-bit, never subject to endian flip.
	if err := encodeUint64Field(dst, cover, uint64(payloadLen), opts.HiddenBitPosition, opts.StartingEndian); err != nil {
		return EncodingFailed, stegerr.Wrap(err, op+".payloadLen")
	}

	// Steps 6-7: the block loop.
	endian := opts.StartingEndian
	blocksInWindow := 0
	var encoded int64
	for encoded < payloadLen {
		n := opts.DataBlockSize
		if remaining := payloadLen - encoded; int64(n) > remaining {
			n = int(remaining)
		}
		isFinal := encoded+int64(n) == payloadLen

		payloadChunk, err := readExact(payload, n)
		if err != nil {
			return EncodingFailed, stegerr.Wrap(err, op+".block.payload")
		}

		coverChunkLen := n * 8
		if !isFinal {
			coverChunkLen += opts.ByteSkipPerBlock
		}
		coverChunk, err := readExact(cover, coverChunkLen)
		if err != nil {
			return EncodingFailed, stegerr.Wrap(err, op+".block.cover")
		}

		if n > 0 {
			if err := bitops.InterleaveInto(coverChunk, 0, payloadChunk, 0, n-1, opts.HiddenBitPosition, endian); err != nil {
				return EncodingFailed, stegerr.Wrap(err, op+".block.interleave")
			}
		}
		if _, err := dst.Write(coverChunk); err != nil {
			return EncodingFailed, stegerr.New(stegerr.KindIO, op+".block.write", err)
		}

		encoded += int64(n)
		blocksInWindow++
		if opts.EndianChangeFrequency > 0 && blocksInWindow == opts.EndianChangeFrequency {
			endian = endian.Flip()
			blocksInWindow = 0
		}
	}

	// Step 8: copy every remaining cover byte verbatim.
	if _, err := io.Copy(dst, cover); err != nil {
		return EncodingFailed, stegerr.New(stegerr.KindIO, op+".tail", err)
	}

	return EncodingSuccessful, nil
}

// Decode reads the hidden frame from stego and writes the recovered
// payload to dst, cross-checking opts.Password against the embedded
// flag/value. Every per-block, per-region choice mirrors Encode
// exactly — this is the symmetry invariant spec §4.6 calls out.
func Decode(dst io.Writer, stego io.Reader, opts stegopts.Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return EncodingFailed, err
	}

	if err := skipExact(stego, opts.InitialOffset); err != nil {
		return EncodingFailed, stegerr.Wrap(err, op+".initialOffset")
	}

	flagBuf, err := readExact(stego, 1)
	if err != nil {
		return EncodingFailed, stegerr.Wrap(err, op+".flagByte.read")
	}
	pwFlag, err := bitops.GetBit(flagBuf[0], passwordFlagBit)
	if err != nil {
		return EncodingFailed, err
	}

	hasPwFlag := pwFlag == 1
	hasPwOpt := opts.HasPassword()
	if hasPwFlag != hasPwOpt {
		return InvalidPassword, nil
	}

	if hasPwFlag {
		pwLen, err := decodeUint32Field(stego, opts.HiddenBitPosition, opts.StartingEndian)
		if err != nil {
			return EncodingFailed, stegerr.Wrap(err, op+".pwLen")
		}
		pwBytes, err := decodeByteField(stego, int(pwLen), opts.HiddenBitPosition, opts.StartingEndian)
		if err != nil {
			return EncodingFailed, stegerr.Wrap(err, op+".pwBytes")
		}
		if !bytes.Equal(pwBytes, opts.Password) {
			return InvalidPassword, nil
		}
	}

	payloadLen, err := decodeUint64Field(stego, opts.HiddenBitPosition, opts.StartingEndian)
	if err != nil {
		return EncodingFailed, stegerr.Wrap(err, op+".payloadLen")
	}

	endian := opts.StartingEndian
	blocksInWindow := 0
	remaining := int64(payloadLen)
	for remaining > 0 {
		n := opts.DataBlockSize
		if int64(n) > remaining {
			n = int(remaining)
		}
		isFinal := remaining-int64(n) == 0

		wantLen := n * 8
		if !isFinal {
			wantLen += opts.ByteSkipPerBlock
		}
		chunk, exhausted, err := readPartial(stego, wantLen)
		if err != nil {
			return EncodingFailed, stegerr.Wrap(err, op+".block.read")
		}

		actualN := len(chunk) / 8
		if actualN > n {
			actualN = n
		}
		if actualN > 0 {
			decoded, err := bitops.DeinterleaveFrom(chunk, 0, actualN, opts.HiddenBitPosition, endian)
			if err != nil {
				return EncodingFailed, stegerr.Wrap(err, op+".block.deinterleave")
			}
			if _, err := dst.Write(decoded); err != nil {
				return EncodingFailed, stegerr.New(stegerr.KindIO, op+".block.write", err)
			}
			remaining -= int64(actualN)
		}

		blocksInWindow++
		if opts.EndianChangeFrequency > 0 && blocksInWindow == opts.EndianChangeFrequency {
			endian = endian.Flip()
			blocksInWindow = 0
		}

		if exhausted {
			break
		}
	}

	return DecodingSuccessful, nil
}

// --- header field helpers -------------------------------------------------

func encodeUint32Field(dst io.Writer, cover io.Reader, v uint32, pos int, endian bitops.Endian) error {
	return encodeFixed(dst, cover, scalarcodec.EncodeUint32(v), pos, endian)
}

func encodeUint64Field(dst io.Writer, cover io.Reader, v uint64, pos int, endian bitops.Endian) error {
	return encodeFixed(dst, cover, scalarcodec.EncodeUint64(v), pos, endian)
}

func encodeByteField(dst io.Writer, cover io.Reader, data []byte, pos int, endian bitops.Endian) error {
	return encodeFixed(dst, cover, data, pos, endian)
}

func encodeFixed(dst io.Writer, cover io.Reader, data []byte, pos int, endian bitops.Endian) error {
	if len(data) == 0 {
		return nil
	}
	coverChunk, err := readExact(cover, len(data)*8)
	if err != nil {
		return err
	}
	if err := bitops.InterleaveInto(coverChunk, 0, data, 0, len(data)-1, pos, endian); err != nil {
		return err
	}
	if _, err := dst.Write(coverChunk); err != nil {
		return stegerr.New(stegerr.KindIO, op+".field.write", err)
	}
	return nil
}

func decodeUint32Field(stego io.Reader, pos int, endian bitops.Endian) (uint32, error) {
	b, err := decodeFixed(stego, 4, pos, endian)
	if err != nil {
		return 0, err
	}
	return scalarcodec.DecodeUint32(b, 0)
}

func decodeUint64Field(stego io.Reader, pos int, endian bitops.Endian) (uint64, error) {
	b, err := decodeFixed(stego, 8, pos, endian)
	if err != nil {
		return 0, err
	}
	return scalarcodec.DecodeUint64(b, 0)
}

func decodeByteField(stego io.Reader, n int, pos int, endian bitops.Endian) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	return decodeFixed(stego, n, pos, endian)
}

func decodeFixed(stego io.Reader, n int, pos int, endian bitops.Endian) ([]byte, error) {
	chunk, err := readExact(stego, n*8)
	if err != nil {
		return nil, err
	}
	return bitops.DeinterleaveFrom(chunk, 0, n, pos, endian)
}

// --- raw I/O helpers -------------------------------------------------------

func copyExact(dst io.Writer, src io.Reader, n int) error {
	if n == 0 {
		return nil
	}
	buf, err := readExact(src, n)
	if err != nil {
		return err
	}
	if _, err := dst.Write(buf); err != nil {
		return stegerr.New(stegerr.KindIO, op+".copyExact.write", err)
	}
	return nil
}

func skipExact(src io.Reader, n int) error {
	if n == 0 {
		return nil
	}
	_, err := readExact(src, n)
	return err
}

// readExact reads exactly n bytes or returns a stegerr error — used
// everywhere the caller has already validated capacity and a short
// read means something is actually wrong.
func readExact(src io.Reader, n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, stegerr.New(stegerr.KindInsufficientBytes, op, err)
		}
		return nil, stegerr.New(stegerr.KindIO, op, err)
	}
	return buf, nil
}

// readPartial reads up to n bytes, tolerating EOF/ErrUnexpectedEOF as
// a legitimate short read on the decoder's final block (spec §4.6
// step 6b). exhausted reports whether the input ran out.
func readPartial(src io.Reader, n int) (data []byte, exhausted bool, err error) {
	if n == 0 {
		return []byte{}, false, nil
	}
	buf := make([]byte, n)
	got, rerr := io.ReadFull(src, buf)
	if rerr == nil {
		return buf, false, nil
	}
	if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
		return buf[:got], true, nil
	}
	return nil, false, stegerr.New(stegerr.KindIO, op, rerr)
}
