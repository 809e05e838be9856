package service

import (
	"bytes"
	"encoding/binary"
	"math"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kodestego/lsbstego/container"
	"github.com/kodestego/lsbstego/logging"
)

// audioService implements AudioService.
type audioService struct {
	logger *zap.SugaredLogger
}

// NewAudioService creates a new audio service instance.
func NewAudioService(logger *zap.SugaredLogger) AudioService {
	return &audioService{logger: logger}
}

// CalculatePSNR computes Peak Signal-to-Noise Ratio between the cover
// and stego byte buffers, treating them as 16-bit little-endian PCM
// samples. This is purely informational — the core codec never
// consults it and it plays no part in encode/decode correctness.
func (a *audioService) CalculatePSNR(original, modified []byte) float64 {
	if len(original) != len(modified) {
		logging.Warn(a.logger, "CalculatePSNR: length mismatch - original: %d, modified: %d", len(original), len(modified))
		return 0.0
	}

	var mse float64
	sampleCount := len(original) / 2

	for i := 0; i < len(original)-1; i += 2 {
		originalSample := int16(binary.LittleEndian.Uint16(original[i : i+2]))
		modifiedSample := int16(binary.LittleEndian.Uint16(modified[i : i+2]))
		diff := float64(originalSample - modifiedSample)
		mse += diff * diff
	}

	if sampleCount == 0 {
		return 0.0
	}
	mse /= float64(sampleCount)

	if mse == 0 {
		return math.Inf(1)
	}

	const maxValue = 32767.0
	psnr := 20 * math.Log10(maxValue/math.Sqrt(mse))
	logging.Debug(a.logger, "CalculatePSNR: MSE=%.6f, PSNR=%.2f dB (samples: %d)", mse, psnr, sampleCount)
	return psnr
}

// CalculatePSNRForCover computes PSNR the way CalculatePSNR does, but
// for MP3 covers (identified by filename extension) it first decodes
// both buffers to PCM with go-mp3, so the comparison runs on audio
// samples rather than on the compressed byte stream the codec
// actually hides data in. Non-MP3 filenames, and MP3 covers that fail
// to decode, fall back to CalculatePSNR on the raw bytes.
func (a *audioService) CalculatePSNRForCover(cover, stego []byte, filename string) float64 {
	if !strings.EqualFold(filepath.Ext(filename), ".mp3") {
		return a.CalculatePSNR(cover, stego)
	}

	coverPCM, err := container.DecodePCM(bytes.NewReader(cover))
	if err != nil {
		logging.Warn(a.logger, "CalculatePSNRForCover: cover PCM decode failed, falling back to raw bytes: %v", err)
		return a.CalculatePSNR(cover, stego)
	}
	stegoPCM, err := container.DecodePCM(bytes.NewReader(stego))
	if err != nil {
		logging.Warn(a.logger, "CalculatePSNRForCover: stego PCM decode failed, falling back to raw bytes: %v", err)
		return a.CalculatePSNR(cover, stego)
	}
	return a.CalculatePSNR(coverPCM, stegoPCM)
}
