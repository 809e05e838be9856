// Package fragment implements the Fragmentation Orchestrator (spec
// §4.7): splitting one payload stream across an ordered list of
// covers on encode, and concatenating recovered slices back into one
// destination on decode.
//
// Grounded on the frame codec's own Encode/Decode entry points — the
// orchestrator adds no bit-level logic of its own, only sequencing.
// The teacher has no multi-cover feature; this package is new work
// built in the frame codec's idiom to satisfy the spec's MultiEncode/
// MultiDecode data model.
package fragment

import (
	"fmt"
	"io"

	"github.com/kodestego/lsbstego/framecodec"
	"github.com/kodestego/lsbstego/stegerr"
	"github.com/kodestego/lsbstego/stegopts"
)

const op = "fragment"

// EncodeEntry is one line of a MultiEncode manifest: a cover of known
// length, a destination to write the stego bytes to, the options to
// encode with, and the number of payload bytes this entry consumes
// from the shared payload stream.
type EncodeEntry struct {
	Cover              io.Reader
	CoverLen           int64
	Destination        io.Writer
	DataAmountToEncode int64
	Options            stegopts.Options
}

// DecodeEntry is one line of a MultiDecode manifest: a stego source
// and the options to decode it with.
type DecodeEntry struct {
	Stego   io.Reader
	Options stegopts.Options
}

// Encode drives the frame encoder once per entry, in order, reading
// each entry's DataAmountToEncode bytes from the shared payload
// stream. Before any entry is encoded, the sum of DataAmountToEncode
// across entries is checked against payloadLen; a sum larger than
// payloadLen fails with InvalidArgument.
func Encode(entries []EncodeEntry, payload io.Reader, payloadLen int64) (framecodec.Result, error) {
	var sum int64
	for _, e := range entries {
		sum += e.DataAmountToEncode
	}
	if sum > payloadLen {
		return framecodec.EncodingFailed, stegerr.Newf(stegerr.KindInvalidArgument, op,
			"sum of dataAmountToEncode (%d) exceeds payload length (%d)", sum, payloadLen)
	}

	for i, e := range entries {
		result, err := framecodec.Encode(e.Destination, e.Cover, e.CoverLen, payload, e.DataAmountToEncode, e.Options)
		if err != nil {
			return framecodec.EncodingFailed, stegerr.Wrap(err, fmt.Sprintf("%s.entry[%d]", op, i))
		}
		if result != framecodec.EncodingSuccessful {
			return result, nil
		}
	}
	return framecodec.EncodingSuccessful, nil
}

// Decode drives the frame decoder once per entry, in order, appending
// each entry's recovered payload bytes to dest. It short-circuits on
// the first InvalidPassword, returning it immediately without
// processing further entries (spec §4.7).
func Decode(entries []DecodeEntry, dest io.Writer) (framecodec.Result, error) {
	for _, e := range entries {
		result, err := framecodec.Decode(dest, e.Stego, e.Options)
		if err != nil {
			return framecodec.EncodingFailed, err
		}
		if result == framecodec.InvalidPassword {
			return framecodec.InvalidPassword, nil
		}
	}
	return framecodec.DecodingSuccessful, nil
}
