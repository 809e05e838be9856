package models

import (
	"errors"
)

// Predefined errors for request-shape problems the HTTP layer checks
// before anything reaches the core codec.
var (
	ErrInvalidOptions         = errors.New("invalid steganography options")
	ErrInsufficientCapacity   = errors.New("cover is not large enough for the requested payload")
	ErrFileTooLarge           = errors.New("file size exceeds maximum allowed upload size")
	ErrMissingCoverFile       = errors.New("cover file is required")
	ErrMissingPayloadFile     = errors.New("payload file is required")
	ErrManifestLengthMismatch = errors.New("fragment manifest entry count does not match uploaded file count")
	ErrVigenereKeyRequired    = errors.New("vigenereKey is required when useVigenere is true")
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string                 `json:"message"`
	Kind    string                 `json:"kind,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}
