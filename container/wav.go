// Package container implements the Container Adapter (spec §4.8): a
// thin shim that adjusts Options.InitialOffset to skip past a fixed or
// parsed container header, then delegates straight to the frame
// codec. Nothing in this package touches the hidden-frame layout.
//
// WAV support is grounded on the teacher's
// service/utils.go:parseWAVHeader, generalized from "compute an
// offset and hand it to the caller" into an adapter that also returns
// the adjusted Options for the caller (WithWAVHeader) and validates the
// RIFF/WAVE/data chunk structure before trusting it as initialOffset.
package container

import (
	"encoding/binary"
	"fmt"

	"github.com/kodestego/lsbstego/stegerr"
	"github.com/kodestego/lsbstego/stegopts"
)

const wavOp = "container.wav"

// WAVDataChunk describes where the "data" chunk of a RIFF/WAVE file
// begins and how large it is, as found by ParseWAVHeader.
type WAVDataChunk struct {
	Offset int
	Size   uint32
}

// ParseWAVHeader walks a RIFF/WAVE file's chunks looking for the
// "data" chunk, returning its offset and declared size. It mirrors the
// teacher's chunk-walk exactly, including the even-byte padding rule,
// but returns a stegerr error instead of a bare fmt.Errorf so callers
// can discriminate failure kinds the way the rest of the codec does.
func ParseWAVHeader(wav []byte) (WAVDataChunk, error) {
	if len(wav) < 44 {
		return WAVDataChunk{}, stegerr.Newf(stegerr.KindInvalidArgument, wavOp, "WAV file too short: need at least 44 bytes, got %d", len(wav))
	}
	if string(wav[:4]) != "RIFF" {
		return WAVDataChunk{}, stegerr.Newf(stegerr.KindInvalidArgument, wavOp, "missing RIFF header")
	}
	if string(wav[8:12]) != "WAVE" {
		return WAVDataChunk{}, stegerr.Newf(stegerr.KindInvalidArgument, wavOp, "not WAVE format")
	}

	offset := 12
	for offset+8 <= len(wav) {
		chunkID := string(wav[offset : offset+4])
		chunkSize := binary.LittleEndian.Uint32(wav[offset+4 : offset+8])

		if chunkID == "data" {
			return WAVDataChunk{Offset: offset + 8, Size: chunkSize}, nil
		}

		nextOffset := offset + 8 + int(chunkSize)
		if chunkSize%2 == 1 {
			nextOffset++
		}
		if nextOffset <= offset {
			return WAVDataChunk{}, stegerr.Newf(stegerr.KindInvalidArgument, wavOp, "infinite loop detected in chunk parsing")
		}
		offset = nextOffset
	}

	return WAVDataChunk{}, stegerr.Newf(stegerr.KindInvalidArgument, wavOp, "no data chunk found")
}

// WithWAVHeader parses wav's RIFF chunk structure and returns a copy
// of opts with InitialOffset advanced past every chunk preceding
// "data", plus opts.InitialOffset itself (so a caller-supplied offset
// within the PCM data, if any, is preserved). This generalizes the
// spec's illustrative "WAV: 44" fixed-header example to the real
// variable-length chunk layout real WAV files carry (LIST/fmt/fact
// chunks before data are common).
func WithWAVHeader(wav []byte, opts stegopts.Options) (stegopts.Options, error) {
	chunk, err := ParseWAVHeader(wav)
	if err != nil {
		return stegopts.Options{}, err
	}
	return opts.WithInitialOffset(opts.InitialOffset + chunk.Offset)
}

// BuildWAVHeader assembles a minimal canonical 44-byte PCM WAV header
// for pcmData, adapted from the teacher's audioEncoder.EncodeToWAV.
// Callers append the PCM samples themselves; the package's tests use it
// to synthesize WAV covers.
func BuildWAVHeader(sampleRate int, numChannels, bitsPerSample int, pcmDataLen int) []byte {
	byteRate := sampleRate * numChannels * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8
	riffChunkSize := 36 + pcmDataLen

	h := make([]byte, 44)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], uint32(riffChunkSize))
	copy(h[8:12], "WAVE")
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(h[22:24], uint16(numChannels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(h[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(h[34:36], uint16(bitsPerSample))
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], uint32(pcmDataLen))
	return h
}

func (c WAVDataChunk) String() string {
	return fmt.Sprintf("data chunk at offset %d, %d bytes", c.Offset, c.Size)
}
