package service

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/kodestego/lsbstego/capacity"
	"github.com/kodestego/lsbstego/fragment"
	"github.com/kodestego/lsbstego/framecodec"
	"github.com/kodestego/lsbstego/logging"
	"github.com/kodestego/lsbstego/stegopts"
)

type steganographyService struct {
	logger *zap.SugaredLogger
}

// NewSteganographyService builds a SteganographyService logging
// through the given logger, matching the teacher's
// NewHandlers(logger)-style constructor injection.
func NewSteganographyService(logger *zap.SugaredLogger) SteganographyService {
	return &steganographyService{logger: logger}
}

func (s *steganographyService) CalculateCapacity(payloadLen, coverFileSize int64, opts stegopts.Options) (capacity.Breakdown, error) {
	logging.Debug(s.logger, "CalculateCapacity: payloadLen=%d coverFileSize=%d dataBlockSize=%d", payloadLen, coverFileSize, opts.DataBlockSize)
	b, err := capacity.Validate(opts, payloadLen, coverFileSize)
	if err != nil {
		logging.Warn(s.logger, "CalculateCapacity: %v", err)
		return b, err
	}
	return b, nil
}

func (s *steganographyService) Embed(cover, payload []byte, opts stegopts.Options) ([]byte, framecodec.Result, error) {
	logging.Info(s.logger, "Embed: cover=%d bytes payload=%d bytes dataBlockSize=%d hiddenBitPosition=%d", len(cover), len(payload), opts.DataBlockSize, opts.HiddenBitPosition)
	stego, result, err := framecodec.EncodeBytes(cover, payload, opts)
	if err != nil {
		logging.Error(s.logger, "Embed: %v", err)
		return nil, result, err
	}
	logging.Info(s.logger, "Embed: result=%s stego=%d bytes", result, len(stego))
	return stego, result, nil
}

func (s *steganographyService) Extract(stego []byte, opts stegopts.Options) ([]byte, framecodec.Result, error) {
	logging.Info(s.logger, "Extract: stego=%d bytes dataBlockSize=%d hiddenBitPosition=%d", len(stego), opts.DataBlockSize, opts.HiddenBitPosition)
	payload, result, err := framecodec.DecodeBytes(stego, opts)
	if err != nil {
		logging.Error(s.logger, "Extract: %v", err)
		return nil, result, err
	}
	logging.Info(s.logger, "Extract: result=%s payload=%d bytes", result, len(payload))
	return payload, result, nil
}

func (s *steganographyService) EmbedFragmented(entries []fragment.EncodeEntry, payload []byte, payloadLen int64) (framecodec.Result, error) {
	logging.Info(s.logger, "EmbedFragmented: %d entries, payload=%d bytes", len(entries), payloadLen)
	result, err := fragment.Encode(entries, bytes.NewReader(payload), payloadLen)
	if err != nil {
		logging.Error(s.logger, "EmbedFragmented: %v", err)
		return result, err
	}
	return result, nil
}

func (s *steganographyService) ExtractFragmented(entries []fragment.DecodeEntry) ([]byte, framecodec.Result, error) {
	logging.Info(s.logger, "ExtractFragmented: %d entries", len(entries))
	var dest bytes.Buffer
	result, err := fragment.Decode(entries, &dest)
	if err != nil {
		logging.Error(s.logger, "ExtractFragmented: %v", err)
		return nil, result, err
	}
	return dest.Bytes(), result, nil
}
