package stegerr

import (
	"errors"
	"testing"
)

func TestIs_MatchesDirectKind(t *testing.T) {
	err := New(KindInsufficientBytes, "op", nil)
	if !Is(err, KindInsufficientBytes) {
		t.Fatal("expected Is to match direct Kind")
	}
	if Is(err, KindIO) {
		t.Fatal("Is must not match a different Kind")
	}
}

func TestIs_MatchesThroughWrap(t *testing.T) {
	inner := New(KindInsufficientCapacity, "inner", nil)
	wrapped := Wrap(inner, "outer")
	if !Is(wrapped, KindInsufficientCapacity) {
		t.Fatal("expected Is to see through Wrap")
	}
}

func TestIs_FalseForUnrelatedError(t *testing.T) {
	if Is(errors.New("plain"), KindIO) {
		t.Fatal("Is must return false for a non-stegerr error")
	}
}

func TestWrap_NilIsNil(t *testing.T) {
	if Wrap(nil, "op") != nil {
		t.Fatal("Wrap(nil) must return nil")
	}
}

func TestError_MessageIncludesOpAndKind(t *testing.T) {
	err := Newf(KindInvalidArgument, "myop", "bad value %d", 42)
	msg := err.Error()
	if msg == "" {
		t.Fatal("Error() must not be empty")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := New(KindIO, "op", cause)
	if errors.Unwrap(err) != cause {
		t.Fatal("Unwrap must return the wrapped cause")
	}
}
