// Package stegopts carries the tunable parameters of the codec as a
// plain, deeply-copyable value type, validated on construction and on
// every mutator that can put the value out of range. It mirrors the
// shape of the teacher's models.EmbedRequest/ExtractRequest, but holds
// only the codec knobs — nothing request- or transport-specific.
package stegopts

import (
	"github.com/kodestego/lsbstego/bitops"
	"github.com/kodestego/lsbstego/stegerr"
)

const op = "stegopts"

// Options is the value type carrying every tunable parameter of the
// codec (spec §3). New, Copy and the With* mutators copy Password
// rather than alias it; a plain assignment of an Options value shares
// the Password backing array.
type Options struct {
	InitialOffset         int
	ByteSkipPerBlock      int
	DataBlockSize         int
	HiddenBitPosition     int
	StartingEndian        bitops.Endian
	EndianChangeFrequency int
	Password              []byte
}

// Default returns the zero-tunable option set: no offset, no skip,
// one byte per block, bit 0, big-endian, no flipping, no password.
func Default() Options {
	return Options{
		InitialOffset:         0,
		ByteSkipPerBlock:      0,
		DataBlockSize:         1,
		HiddenBitPosition:     0,
		StartingEndian:        bitops.BIG,
		EndianChangeFrequency: 0,
		Password:              nil,
	}
}

// New builds a fully-parameterized Options value, validating range
// invariants on dataBlockSize and hiddenBitPosition.
func New(initialOffset, byteSkipPerBlock, dataBlockSize, hiddenBitPosition int, startingEndian bitops.Endian, endianChangeFrequency int, password []byte) (Options, error) {
	o := Options{
		InitialOffset:         initialOffset,
		ByteSkipPerBlock:      byteSkipPerBlock,
		DataBlockSize:         dataBlockSize,
		HiddenBitPosition:     hiddenBitPosition,
		StartingEndian:        startingEndian,
		EndianChangeFrequency: endianChangeFrequency,
		Password:              copyPassword(password),
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// Copy returns a deep copy: the returned value shares no mutable
// substructure with the receiver.
func (o Options) Copy() Options {
	c := o
	c.Password = copyPassword(o.Password)
	return c
}

// Validate checks every invariant from spec §3: dataBlockSize >= 1,
// 0 <= hiddenBitPosition <= 7, non-negative offsets/skip/frequency.
func (o Options) Validate() error {
	if o.DataBlockSize < 1 {
		return stegerr.Newf(stegerr.KindInvalidArgument, op, "dataBlockSize must be >= 1, got %d", o.DataBlockSize)
	}
	if o.HiddenBitPosition < 0 || o.HiddenBitPosition > 7 {
		return stegerr.Newf(stegerr.KindInvalidArgument, op, "hiddenBitPosition must be 0..7, got %d", o.HiddenBitPosition)
	}
	if o.InitialOffset < 0 {
		return stegerr.Newf(stegerr.KindInvalidArgument, op, "initialOffset must be >= 0, got %d", o.InitialOffset)
	}
	if o.ByteSkipPerBlock < 0 {
		return stegerr.Newf(stegerr.KindInvalidArgument, op, "byteSkipPerBlock must be >= 0, got %d", o.ByteSkipPerBlock)
	}
	if o.EndianChangeFrequency < 0 {
		return stegerr.Newf(stegerr.KindInvalidArgument, op, "endianChangeFrequency must be >= 0, got %d", o.EndianChangeFrequency)
	}
	if len(o.Password) > (1<<31)-1 {
		return stegerr.Newf(stegerr.KindInvalidArgument, op, "password length %d exceeds 2^31-1", len(o.Password))
	}
	return nil
}

// WithDataBlockSize returns a copy with dataBlockSize replaced,
// enforcing the range invariant.
func (o Options) WithDataBlockSize(n int) (Options, error) {
	c := o.Copy()
	c.DataBlockSize = n
	if err := c.Validate(); err != nil {
		return Options{}, err
	}
	return c, nil
}

// WithHiddenBitPosition returns a copy with hiddenBitPosition
// replaced, enforcing the range invariant.
func (o Options) WithHiddenBitPosition(pos int) (Options, error) {
	c := o.Copy()
	c.HiddenBitPosition = pos
	if err := c.Validate(); err != nil {
		return Options{}, err
	}
	return c, nil
}

// WithInitialOffset returns a copy with initialOffset replaced. Used
// by container adapters to fold in a fixed header length without
// aliasing the caller's Options.
func (o Options) WithInitialOffset(offset int) (Options, error) {
	c := o.Copy()
	c.InitialOffset = offset
	if err := c.Validate(); err != nil {
		return Options{}, err
	}
	return c, nil
}

// HasPassword reports whether a password is configured.
func (o Options) HasPassword() bool { return len(o.Password) > 0 }

func copyPassword(p []byte) []byte {
	if len(p) == 0 {
		return nil
	}
	c := make([]byte, len(p))
	copy(c, p)
	return c
}
