package resource

import (
	"errors"
	"fmt"
)

var (
	// ErrShortRead is matched by every ShortReadError.
	ErrShortRead = errors.New("short read")
	// ErrIO is matched by every IOError.
	ErrIO = errors.New("i/o failure")
)

// ShortReadError reports a source that ended before a full header could be read.
type ShortReadError struct {
	Offset int64
	Want   int
	Got    int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("dtx header at offset %d: short read: expected %d bytes, got %d", e.Offset, e.Want, e.Got)
}

func (e *ShortReadError) Unwrap() error { return ErrShortRead }

// IOError wraps a failure of the underlying source.
type IOError struct {
	Offset int64
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("dtx header at offset %d: %v", e.Offset, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
