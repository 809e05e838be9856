// Package stegerr defines the error taxonomy shared by every codec
// package: the kinds a caller must be able to discriminate on.
// InvalidPassword is not one of them: framecodec returns it as a
// Result value instead of an error.
package stegerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which class of failure occurred. Callers switch on
// Kind rather than comparing error strings.
type Kind int

const (
	// KindInvalidArgument covers out-of-range option values, negative
	// or out-of-bounds indices, and a multi-encode manifest whose
	// declared lengths exceed the payload source.
	KindInvalidArgument Kind = iota
	// KindInsufficientBytes covers a buffer-level read or interleave
	// that ran past the end of its input.
	KindInsufficientBytes
	// KindInsufficientCapacity covers a cover file too small to hold
	// the hidden frame for the requested payload.
	KindInsufficientCapacity
	// KindFileNotFound covers a required input path that does not
	// exist.
	KindFileNotFound
	// KindIO covers any other OS-level read/write failure.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInsufficientBytes:
		return "insufficient_bytes"
	case KindInsufficientCapacity:
		return "insufficient_capacity"
	case KindFileNotFound:
		return "file_not_found"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by every core package.
// It carries the Kind so callers (HTTP handlers, CLI wrappers) can map
// it to a status code without parsing message text.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error for op/kind, wrapping cause (which may be nil).
func New(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}

// Newf builds an *Error with a formatted cause.
func Newf(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Is reports whether err (or any error it wraps) is a *Error of kind.
func Is(err error, kind Kind) bool {
	var se *Error
	for err != nil {
		if e, ok := err.(*Error); ok {
			se = e
			break
		}
		err = errors.Unwrap(err)
	}
	return se != nil && se.Kind == kind
}

// Wrap attaches op-level context to err using pkg/errors, preserving
// the underlying *Error (and its Kind) for later discrimination via Is.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, op)
}
