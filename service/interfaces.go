// Package service wraps the pure core codec packages (bitops,
// scalarcodec, stegopts, capacity, framecodec, fragment, container)
// with the ambient concerns an HTTP handler actually needs: request
// validation, optional Vigenère pre/post-processing, and audio
// fidelity metrics. None of the core packages import this one.
package service

import (
	"github.com/kodestego/lsbstego/capacity"
	"github.com/kodestego/lsbstego/fragment"
	"github.com/kodestego/lsbstego/framecodec"
	"github.com/kodestego/lsbstego/stegopts"
)

// SteganographyService exposes the frame codec, capacity validator,
// and fragmentation orchestrator behind one seam the HTTP handlers
// depend on, so tests can substitute a fake implementation.
type SteganographyService interface {
	CalculateCapacity(payloadLen, coverFileSize int64, opts stegopts.Options) (capacity.Breakdown, error)
	Embed(cover, payload []byte, opts stegopts.Options) ([]byte, framecodec.Result, error)
	Extract(stego []byte, opts stegopts.Options) ([]byte, framecodec.Result, error)
	EmbedFragmented(entries []fragment.EncodeEntry, payload []byte, payloadLen int64) (framecodec.Result, error)
	ExtractFragmented(entries []fragment.DecodeEntry) ([]byte, framecodec.Result, error)
}

// CryptographyService performs the teacher's Vigenère/XOR
// pre-processing step on payload bytes, entirely outside the core
// codec's view.
type CryptographyService interface {
	VigenereCipher(data []byte, key string) []byte
}

// AudioService computes ambient, informational-only audio fidelity
// metrics. It never influences codec behavior.
type AudioService interface {
	CalculatePSNR(original, modified []byte) float64
	CalculatePSNRForCover(cover, stego []byte, filename string) float64
}
