package models

// EmbedRequest carries one encode operation's input: the cover bytes,
// the secret payload, the codec options to use, and an optional
// Vigenère pre-processing step applied to the payload before it ever
// reaches the frame codec (see service.CryptographyService).
type EmbedRequest struct {
	Cover       []byte     `json:"-"`
	Payload     []byte     `json:"-"`
	PayloadName string     `json:"payloadName,omitempty"`
	Options     OptionsDTO `json:"options"`
	UseVigenere bool       `json:"useVigenere"`
	VigenereKey string     `json:"vigenereKey,omitempty"`
}

// EmbedResponse is the result of an encode: the byte-length-identical
// stego cover, the effective options actually used (after any
// container adapter advanced InitialOffset), and an ambient PSNR
// figure for covers that can be interpreted as 16-bit PCM samples.
type EmbedResponse struct {
	Stego            []byte     `json:"-"`
	EffectiveOptions OptionsDTO `json:"effectiveOptions"`
	PSNR             float64    `json:"psnr,omitempty"`
}
