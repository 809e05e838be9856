package framecodec

import (
	"bytes"

	"github.com/kodestego/lsbstego/stegopts"
)

// EncodeBytes is the in-memory convenience wrapper around Encode, used
// by the HTTP handlers and most tests: cover/payload already live in
// memory as []byte (they arrived as multipart uploads or test
// fixtures), so there is no reason to make callers build an io.Reader
// by hand.
func EncodeBytes(cover []byte, payload []byte, opts stegopts.Options) ([]byte, Result, error) {
	var dst bytes.Buffer
	dst.Grow(len(cover))
	result, err := Encode(&dst, bytes.NewReader(cover), int64(len(cover)), bytes.NewReader(payload), int64(len(payload)), opts)
	if err != nil {
		return nil, result, err
	}
	return dst.Bytes(), result, nil
}

// DecodeBytes is the in-memory convenience wrapper around Decode.
func DecodeBytes(stego []byte, opts stegopts.Options) ([]byte, Result, error) {
	var dst bytes.Buffer
	result, err := Decode(&dst, bytes.NewReader(stego), opts)
	if err != nil {
		return nil, result, err
	}
	return dst.Bytes(), result, nil
}
