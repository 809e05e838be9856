package models

import "github.com/kodestego/lsbstego/capacity"

// CapacityRequest asks whether payloadLen bytes fit into a cover of
// coverFileSize bytes under Options, without uploading either file.
type CapacityRequest struct {
	CoverFileSize int64      `json:"coverFileSize"`
	PayloadLen    int64      `json:"payloadLen"`
	Options       OptionsDTO `json:"options"`
}

// CapacityResponse is the wire form of capacity.Breakdown — the
// spec's EncodeValidation value type — returned verbatim rather than
// the teacher's fixed 1/2/3/4-LSB table, since hiddenBitPosition here
// is a single configurable value, not a four-way enum.
type CapacityResponse struct {
	NumberOfDataBlocks int64 `json:"numberOfDataBlocks"`
	TotalByteSkip      int64 `json:"totalByteSkip"`
	PasswordSize       int64 `json:"passwordSize"`
	TotalBytesRequired int64 `json:"totalBytesRequired"`
	CoverFileSize      int64 `json:"coverFileSize"`
	Fits               bool  `json:"fits"`
}

// CapacityResponseFrom converts a capacity.Breakdown, plus whether the
// validation actually succeeded, into its wire form.
func CapacityResponseFrom(b capacity.Breakdown, fits bool) CapacityResponse {
	return CapacityResponse{
		NumberOfDataBlocks: b.NumberOfDataBlocks,
		TotalByteSkip:      b.TotalByteSkip,
		PasswordSize:       b.PasswordSize,
		TotalBytesRequired: b.TotalBytesRequired,
		CoverFileSize:      b.CoverFileSize,
		Fits:               fits,
	}
}
