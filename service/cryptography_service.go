package service

import (
	"go.uber.org/zap"

	"github.com/kodestego/lsbstego/logging"
)

// cryptographyService implements CryptographyService.
type cryptographyService struct {
	logger *zap.SugaredLogger
}

// NewCryptographyService creates a new cryptography service instance.
func NewCryptographyService(logger *zap.SugaredLogger) CryptographyService {
	return &cryptographyService{logger: logger}
}

// VigenereCipher performs XOR-based encryption/decryption using a
// repeating key. This is a modern variant of the Vigenère cipher
// optimized for binary data; XOR is symmetric, so encryption and
// decryption are the same operation. It is explicitly NOT
// cryptographically strong and is applied to payload bytes before
// they reach the frame codec — the codec itself has no notion of
// encryption.
func (c *cryptographyService) VigenereCipher(data []byte, key string) []byte {
	if len(key) == 0 {
		logging.Warn(c.logger, "VigenereCipher: empty key provided, returning data unchanged")
		return data
	}

	logging.Debug(c.logger, "VigenereCipher: processing %d bytes with key length %d", len(data), len(key))

	result := make([]byte, len(data))
	keyBytes := []byte(key)
	for i, b := range data {
		result[i] = b ^ keyBytes[i%len(keyBytes)]
	}
	return result
}
