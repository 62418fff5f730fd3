package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is the sentinel wrapped by *ErrOutOfBounds.
	ErrIndexOutOfRange = errors.New("bitvec: index out of range")
)

// ErrOutOfBounds is returned by Get when the index is not below the
// current length. Length is the vector's length at the time of the call,
// so callers can decide whether to grow and retry.
//
// errors.Is(err, ErrIndexOutOfRange) reports true for this error.
type ErrOutOfBounds struct {
	Index  uint
	Length uint
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("bitvec: index %d out of bounds (length %d)", e.Index, e.Length)
}

func (e *ErrOutOfBounds) Unwrap() error { return ErrIndexOutOfRange }
