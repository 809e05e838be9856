package models

// ExtractRequest carries one decode operation's input.
type ExtractRequest struct {
	Stego       []byte     `json:"-"`
	Options     OptionsDTO `json:"options"`
	UseVigenere bool       `json:"useVigenere"`
	VigenereKey string     `json:"vigenereKey,omitempty"`
}

// ExtractResponse is the result of a decode. Result is the
// framecodec.Result's string form ("DecodingSuccessful" or
// "InvalidPassword") — a decode with the wrong password is not an
// HTTP error, it is a successful call that reports a negative result,
// matching the core's own "returned as a value, not raised" contract.
type ExtractResponse struct {
	Payload []byte `json:"-"`
	Result  string `json:"result"`
}
