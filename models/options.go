package models

import (
	"encoding/base64"

	"github.com/kodestego/lsbstego/bitops"
	"github.com/kodestego/lsbstego/stegerr"
	"github.com/kodestego/lsbstego/stegopts"
)

// OptionsDTO is the wire representation of stegopts.Options: the HTTP
// layer never passes a bitops.Endian or a raw password byte slice
// across JSON directly, so this type exists to translate between the
// two, the way the teacher's EmbedRequest/ExtractRequest translate a
// multipart form into typed fields.
type OptionsDTO struct {
	InitialOffset         int    `json:"initialOffset"`
	ByteSkipPerBlock      int    `json:"byteSkipPerBlock"`
	DataBlockSize         int    `json:"dataBlockSize"`
	HiddenBitPosition     int    `json:"hiddenBitPosition"`
	StartingEndian        string `json:"startingEndian"` // "BIG" or "LITTLE"
	EndianChangeFrequency int    `json:"endianChangeFrequency"`
	PasswordBase64        string `json:"passwordBase64,omitempty"`
}

// ToOptions validates and converts the DTO into a stegopts.Options.
func (d OptionsDTO) ToOptions() (stegopts.Options, error) {
	endian := bitops.BIG
	switch d.StartingEndian {
	case "", "BIG":
		endian = bitops.BIG
	case "LITTLE":
		endian = bitops.LITTLE
	default:
		return stegopts.Options{}, stegerr.Newf(stegerr.KindInvalidArgument, "models", "startingEndian must be BIG or LITTLE, got %q", d.StartingEndian)
	}

	var password []byte
	if d.PasswordBase64 != "" {
		p, err := base64.StdEncoding.DecodeString(d.PasswordBase64)
		if err != nil {
			return stegopts.Options{}, stegerr.New(stegerr.KindInvalidArgument, "models", err)
		}
		password = p
	}

	return stegopts.New(d.InitialOffset, d.ByteSkipPerBlock, d.DataBlockSize, d.HiddenBitPosition, endian, d.EndianChangeFrequency, password)
}

// OptionsDTOFrom converts a stegopts.Options back into its wire form,
// used when echoing the effective options a request was processed
// with (e.g. after a container adapter has advanced InitialOffset).
func OptionsDTOFrom(o stegopts.Options) OptionsDTO {
	endianStr := "BIG"
	if o.StartingEndian == bitops.LITTLE {
		endianStr = "LITTLE"
	}
	d := OptionsDTO{
		InitialOffset:         o.InitialOffset,
		ByteSkipPerBlock:      o.ByteSkipPerBlock,
		DataBlockSize:         o.DataBlockSize,
		HiddenBitPosition:     o.HiddenBitPosition,
		StartingEndian:        endianStr,
		EndianChangeFrequency: o.EndianChangeFrequency,
	}
	if o.HasPassword() {
		d.PasswordBase64 = base64.StdEncoding.EncodeToString(o.Password)
	}
	return d
}
