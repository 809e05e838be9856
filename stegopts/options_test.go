package stegopts

import (
	"bytes"
	"testing"

	"github.com/kodestego/lsbstego/bitops"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() is invalid: %v", err)
	}
}

func TestNew_RejectsInvalidDataBlockSize(t *testing.T) {
	if _, err := New(0, 0, 0, 0, bitops.BIG, 0, nil); err == nil {
		t.Fatal("expected error for dataBlockSize=0")
	}
}

func TestNew_RejectsOutOfRangeHiddenBitPosition(t *testing.T) {
	if _, err := New(0, 0, 1, 8, bitops.BIG, 0, nil); err == nil {
		t.Fatal("expected error for hiddenBitPosition=8")
	}
	if _, err := New(0, 0, 1, -1, bitops.BIG, 0, nil); err == nil {
		t.Fatal("expected error for hiddenBitPosition=-1")
	}
}

func TestNew_RejectsNegativeOffsetsAndSkips(t *testing.T) {
	if _, err := New(-1, 0, 1, 0, bitops.BIG, 0, nil); err == nil {
		t.Fatal("expected error for negative initialOffset")
	}
	if _, err := New(0, -1, 1, 0, bitops.BIG, 0, nil); err == nil {
		t.Fatal("expected error for negative byteSkipPerBlock")
	}
	if _, err := New(0, 0, 1, 0, bitops.BIG, -1, nil); err == nil {
		t.Fatal("expected error for negative endianChangeFrequency")
	}
}

func TestCopy_IsDeep(t *testing.T) {
	pw := []byte("secret")
	o, err := New(0, 0, 1, 0, bitops.BIG, 0, pw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := o.Copy()
	c.Password[0] = 'X'
	if bytes.Equal(o.Password, c.Password) {
		t.Fatal("Copy must not alias Password")
	}
	if !bytes.Equal(o.Password, pw) {
		t.Fatal("mutating the copy must not affect the original")
	}
}

func TestNew_CopiesPasswordNotAliases(t *testing.T) {
	pw := []byte("secret")
	o, err := New(0, 0, 1, 0, bitops.BIG, 0, pw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pw[0] = 'X'
	if bytes.Equal(o.Password, pw) {
		t.Fatal("New must copy the password, not alias the caller's slice")
	}
}

func TestWithDataBlockSize_ValidatesAndPreservesRest(t *testing.T) {
	o := Default()
	c, err := o.WithDataBlockSize(4)
	if err != nil {
		t.Fatalf("WithDataBlockSize: %v", err)
	}
	if c.DataBlockSize != 4 {
		t.Fatalf("DataBlockSize = %d, want 4", c.DataBlockSize)
	}
	if c.HiddenBitPosition != o.HiddenBitPosition {
		t.Fatal("WithDataBlockSize must not disturb other fields")
	}
	if _, err := o.WithDataBlockSize(0); err == nil {
		t.Fatal("expected error for dataBlockSize=0")
	}
}

func TestWithHiddenBitPosition(t *testing.T) {
	o := Default()
	c, err := o.WithHiddenBitPosition(7)
	if err != nil {
		t.Fatalf("WithHiddenBitPosition: %v", err)
	}
	if c.HiddenBitPosition != 7 {
		t.Fatalf("HiddenBitPosition = %d, want 7", c.HiddenBitPosition)
	}
	if _, err := o.WithHiddenBitPosition(8); err == nil {
		t.Fatal("expected error for hiddenBitPosition=8")
	}
}

func TestWithInitialOffset(t *testing.T) {
	o := Default()
	c, err := o.WithInitialOffset(44)
	if err != nil {
		t.Fatalf("WithInitialOffset: %v", err)
	}
	if c.InitialOffset != 44 {
		t.Fatalf("InitialOffset = %d, want 44", c.InitialOffset)
	}
}

func TestHasPassword(t *testing.T) {
	if Default().HasPassword() {
		t.Fatal("Default() must not have a password")
	}
	o, err := New(0, 0, 1, 0, bitops.BIG, 0, []byte("x"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !o.HasPassword() {
		t.Fatal("expected HasPassword() true")
	}
}
